package grpcquerier

import (
	"flag"
	"time"

	"xdao.co/nftwire/querier"
	"xdao.co/nftwire/querier/queryregistry"
)

var (
	flagTarget  string
	flagTimeout time.Duration
)

func init() {
	queryregistry.MustRegister(queryregistry.Backend{
		Name:        "grpc",
		Description: "remote query endpoint over the Querier gRPC service",
		Usage:       queryregistry.UsageCLI | queryregistry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagTarget, "grpc-target", "127.0.0.1:7788", "querier gRPC target address")
			fs.DurationVar(&flagTimeout, "grpc-timeout", 5*time.Second, "per-RPC timeout")
		},
		Open: func() (querier.Querier, func() error, error) {
			c, err := Dial(flagTarget, DialOptions{Timeout: flagTimeout})
			if err != nil {
				return nil, nil, err
			}
			c.Timeout = flagTimeout
			return c, c.Close, nil
		},
	})
}
