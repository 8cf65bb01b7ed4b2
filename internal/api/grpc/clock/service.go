package clock

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Fully qualified names of the clock service and its methods.
const (
	ServiceName       = "berlinclock.v1.ClockService"
	ConvertFullMethod = "/" + ServiceName + "/Convert"
	NowFullMethod     = "/" + ServiceName + "/Now"
)

// ClockServiceServer is the server API of the clock service.
type ClockServiceServer interface {
	// Convert renders the time carried in the request value (HH:MM:SS).
	Convert(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	// Now renders the current time of the server.
	Now(ctx context.Context, req *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// ClockServiceClient is the client API of the clock service.
type ClockServiceClient interface {
	Convert(ctx context.Context, req *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Now(ctx context.Context, req *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

// ClockServiceDesc describes the clock service for grpc.Server.RegisterService.
//
//nolint:gochecknoglobals // Service descriptors are package-level by grpc convention.
var ClockServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ClockServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Convert",
			Handler:    convertHandler,
		},
		{
			MethodName: "Now",
			Handler:    nowHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "berlinclock/v1/clock.proto",
}

// RegisterClockServiceServer registers srv on the provided registrar.
func RegisterClockServiceServer(registrar grpc.ServiceRegistrar, srv ClockServiceServer) {
	registrar.RegisterService(&ClockServiceDesc, srv)
}

// clockServiceClient invokes the clock service over a client connection.
type clockServiceClient struct {
	// cc is the underlying connection.
	cc grpc.ClientConnInterface
}

// NewClockServiceClient returns a client stub bound to cc.
//
//nolint:ireturn // Mirrors generated gRPC client constructors.
func NewClockServiceClient(cc grpc.ClientConnInterface) ClockServiceClient {
	return &clockServiceClient{cc: cc}
}

// Convert calls the Convert method.
func (c *clockServiceClient) Convert(
	ctx context.Context,
	req *wrapperspb.StringValue,
	opts ...grpc.CallOption,
) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, ConvertFullMethod, req, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// Now calls the Now method.
func (c *clockServiceClient) Now(
	ctx context.Context,
	req *emptypb.Empty,
	opts ...grpc.CallOption,
) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, NowFullMethod, req, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// convertHandler decodes a Convert request and dispatches it through the interceptor chain.
//
//nolint:revive // Signature is fixed by grpc.MethodDesc.
func convertHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ClockServiceServer).Convert(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConvertFullMethod,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClockServiceServer).Convert(ctx, req.(*wrapperspb.StringValue))
	}

	return interceptor(ctx, in, info, handler)
}

// nowHandler decodes a Now request and dispatches it through the interceptor chain.
//
//nolint:revive // Signature is fixed by grpc.MethodDesc.
func nowHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ClockServiceServer).Now(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NowFullMethod,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClockServiceServer).Now(ctx, req.(*emptypb.Empty))
	}

	return interceptor(ctx, in, info, handler)
}
