// Package grpcquerier exposes a querier.Querier over a gRPC hop, so a
// program without direct ledger access can resolve smart queries through a
// remote query endpoint.
package grpcquerier

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/nftwire/querier"
)

// Client implements querier.Querier over the Querier gRPC service.
type Client struct {
	cc     *grpc.ClientConn
	client QuerierClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

var _ querier.Querier = (*Client)(nil)

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewQuerierClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// RawQuery forwards one encoded query request and returns the encoded
// response. Errors come back as the querier package sentinels where the
// remote cause is known.
func (c *Client) RawQuery(request []byte) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, querier.ErrUnavailable
	}
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Query(ctx, wrapperspb.Bytes(request))
	if err != nil {
		return nil, mapRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
