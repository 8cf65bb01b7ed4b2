package clock

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/oshokin/berlin-clock/internal/domain/berlinclock"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	Convert(ctx context.Context, text string) (string, error)
	Now(ctx context.Context) (string, error)
}

// Server implements ClockServiceServer on top of a Service.
type Server struct {
	// service provides the clock conversion.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// Convert renders the requested time.
func (s *Server) Convert(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	rows, err := s.service.Convert(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}

	return wrapperspb.String(rows), nil
}

// Now renders the current time of the server.
func (s *Server) Now(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	rows, err := s.service.Now(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return wrapperspb.String(rows), nil
}

// toStatus maps conversion errors to gRPC status errors.
func toStatus(err error) error {
	switch {
	case errors.Is(err, berlinclock.ErrInvalidArgument), errors.Is(err, berlinclock.ErrInvalidFormat):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "unable to convert time")
	}
}
