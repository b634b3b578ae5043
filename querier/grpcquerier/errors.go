package grpcquerier

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/nftwire/querier"
)

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return querier.ErrNotFound
	case codes.InvalidArgument:
		// Server uses InvalidArgument for undecodable query requests.
		return querier.ErrMalformed
	case codes.FailedPrecondition:
		// Server uses FailedPrecondition when the contract rejected the query.
		return querier.ErrRejected
	case codes.Unavailable, codes.DeadlineExceeded:
		return querier.ErrUnavailable
	default:
		// Best-effort: if the server sent a known querier error message, preserve it.
		switch st.Message() {
		case querier.ErrNotFound.Error():
			return querier.ErrNotFound
		case querier.ErrMalformed.Error():
			return querier.ErrMalformed
		case querier.ErrRejected.Error():
			return querier.ErrRejected
		case querier.ErrUnavailable.Error():
			return querier.ErrUnavailable
		default:
			return err
		}
	}
}
