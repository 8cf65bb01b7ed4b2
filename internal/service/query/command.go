package query

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/berlin-clock/internal/config"
	"github.com/oshokin/berlin-clock/internal/logger"
	"github.com/oshokin/berlin-clock/internal/service/common"
)

// Options controls a single query against the clock server.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// Time is the HH:MM:SS value to convert. The server time is used when empty.
	Time string
	// Output receives the rendering.
	Output io.Writer
}

// Run dials the server, performs one call and writes the result.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "query")

	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	clientOptions := []common.Option{common.WithCallTimeout(cfg.Timeout)}

	actor, err := common.DetectActor()
	if err != nil {
		logger.WarnKV(ctx, "Unable to detect actor, querying anonymously", "error", err)
	} else {
		clientOptions = append(clientOptions, common.WithActor(actor))
	}

	client, err := common.Dial(ctx, serverAddress, clientOptions...)
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Querying clock server", "server_address", serverAddress, "time", opts.Time)

	var rows string
	if opts.Time == "" {
		rows, err = client.Now(ctx)
	} else {
		rows, err = client.Convert(ctx, opts.Time)
	}

	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(opts.Output, rows); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
