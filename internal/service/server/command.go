package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jonboulle/clockwork"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	api "github.com/oshokin/berlin-clock/internal/api/grpc/clock"
	"github.com/oshokin/berlin-clock/internal/config"
	"github.com/oshokin/berlin-clock/internal/domain/berlinclock"
	"github.com/oshokin/berlin-clock/internal/logger"
	"github.com/oshokin/berlin-clock/internal/service/common"
)

// Options controls the berlin-clock-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// LogLevel overrides the configured log level when not empty.
	LogLevel string
	// Clock is the time source for the Now call. The real clock is used when nil.
	Clock clockwork.Clock
	// Converter renders requested times. berlinclock.BerlinClock is used when nil.
	Converter berlinclock.Converter
	// Ready, when set, receives the bound address once the server is listening.
	Ready chan<- string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the gRPC server and blocks until context is canceled or server stops.
// Settings fall back to defaults when the configuration file does not exist.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "berlin-clock-server")

	settings, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}

	level, ok := logger.ParseLogLevel(settings.LogLevel)
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrUnknownLogLevel, settings.LogLevel)
	}

	logger.SetLevel(level)

	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor(ctx)))
	api.RegisterClockServiceServer(grpcServer, api.NewServer(newService(clock, opts.Converter)))

	logger.InfoKV(ctx, "Clock server listening", "listen_address", lis.Addr().String())

	if opts.Ready != nil {
		opts.Ready <- lis.Addr().String()
	}

	return serve(ctx, grpcServer, lis)
}

// serve runs grpcServer on lis until ctx is canceled or serving fails.
// It returns only after the shutdown goroutine has finished.
func serve(ctx context.Context, grpcServer *grpc.Server, lis net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		// Serving failed on its own, so ctx may never be canceled by the caller.
		cancel()
		<-done

		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// loggingInterceptor hands the server logger to handlers, tagged with the
// calling actor, and logs failed calls.
func loggingInterceptor(ctx context.Context) grpc.UnaryServerInterceptor {
	return func(
		callCtx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		callCtx = logger.ToContext(callCtx, logger.FromContext(ctx))
		callCtx = logger.WithKV(callCtx, "method", info.FullMethod)

		if actor := common.ActorFromIncoming(callCtx); actor != nil {
			callCtx = logger.WithKV(callCtx, "hostname", actor.Hostname, "username", actor.Username)
		}

		resp, err := handler(callCtx, req)

		switch {
		case err == nil:
		case status.Code(err) == codes.Internal:
			logger.ErrorKV(callCtx, "Call failed", "error", err)
		default:
			logger.WarnKV(callCtx, "Call rejected", "error", err)
		}

		return resp, err
	}
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// "clock.example.com:50551" -> ":50551".
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
