package grpcquerier

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"xdao.co/nftwire/querier"
	"xdao.co/nftwire/querier/memstate"
	"xdao.co/nftwire/querier/testkit"
)

func bufClient(t *testing.T, backend querier.Querier) *Client {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	RegisterQuerierServer(srv, &Server{Backend: backend})

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close() })

	return &Client{cc: cc, client: NewQuerierClient(cc), Timeout: 2 * time.Second}
}

func TestGRPCQuerier_Memstate_Conformance(t *testing.T) {
	testkit.RunQuerierConformance(t, func(t *testing.T) querier.Querier {
		s, err := memstate.FromGenesis(testkit.FixtureGenesis())
		if err != nil {
			t.Fatalf("genesis: %v", err)
		}
		return bufClient(t, s)
	})
}

func TestGRPCQuerier_SentinelsSurviveTheHop(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", querier.ErrNotFound},
		{"rejected", querier.ErrRejected},
		{"malformed", querier.ErrMalformed},
		{"unavailable", querier.ErrUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := querier.Func(func(request []byte) ([]byte, error) {
				return nil, tc.err
			})
			client := bufClient(t, backend)
			_, err := client.RawQuery([]byte(`{}`))
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v across the hop, got %v", tc.err, err)
			}
		})
	}
}

func TestGRPCQuerier_NilClientUnavailable(t *testing.T) {
	var c *Client
	_, err := c.RawQuery([]byte(`{}`))
	if !errors.Is(err, querier.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
