package grpcquerier

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// QuerierServer is the server API for the Querier gRPC service.
//
// We intentionally use protobuf well-known wrapper types so this package does
// not require a protoc/codegen toolchain. Request and response bytes are
// opaque canonical query encodings.
//
// Proto definition: querier.proto.
type QuerierServer interface {
	Query(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
}

// UnimplementedQuerierServer can be embedded to have forward compatible implementations.
type UnimplementedQuerierServer struct{}

func (UnimplementedQuerierServer) Query(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Query not implemented")
}

// RegisterQuerierServer registers the Querier service on a gRPC server.
func RegisterQuerierServer(s grpc.ServiceRegistrar, srv QuerierServer) {
	s.RegisterService(&Querier_ServiceDesc, srv)
}

// QuerierClient is the client API for the Querier gRPC service.
type QuerierClient interface {
	Query(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type querierClient struct{ cc grpc.ClientConnInterface }

func NewQuerierClient(cc grpc.ClientConnInterface) QuerierClient { return &querierClient{cc: cc} }

func (c *querierClient) Query(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/xdao.nftwire.querier.v1.Querier/Query", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Querier_Query_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuerierServer).Query(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.nftwire.querier.v1.Querier/Query"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuerierServer).Query(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Querier_ServiceDesc is the grpc.ServiceDesc for the Querier service.
var Querier_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xdao.nftwire.querier.v1.Querier",
	HandlerType: (*QuerierServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Query", Handler: _Querier_Query_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "querier.proto",
}
