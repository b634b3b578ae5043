package grpcquerier

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/nftwire/querier"
)

// Server exposes a querier.Querier over the Querier gRPC service.
type Server struct {
	UnimplementedQuerierServer
	Backend querier.Querier
}

func (s *Server) Query(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Backend == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing backend")
	}
	resp, err := s.Backend.RawQuery(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(resp), nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, querier.ErrNotFound):
		return status.Error(codes.NotFound, querier.ErrNotFound.Error())
	case errors.Is(err, querier.ErrMalformed):
		return status.Error(codes.InvalidArgument, querier.ErrMalformed.Error())
	case errors.Is(err, querier.ErrRejected):
		return status.Error(codes.FailedPrecondition, querier.ErrRejected.Error())
	case errors.Is(err, querier.ErrUnavailable):
		return status.Error(codes.Unavailable, querier.ErrUnavailable.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
