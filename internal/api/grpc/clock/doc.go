// Package clock implements the gRPC transport for the Berlin Clock service.
//
// The service is described by a hand-written grpc.ServiceDesc whose messages
// are protobuf well-known types (StringValue, Empty), so no generated code is
// required. Server adapts a business-service interface to that description and
// maps domain errors to gRPC status codes; NewClockServiceClient returns the
// matching client stub.
package clock
