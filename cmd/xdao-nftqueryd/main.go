package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"xdao.co/nftwire/querier"
	"xdao.co/nftwire/querier/grpcquerier"
	"xdao.co/nftwire/querier/queryconfig"
	"xdao.co/nftwire/querier/queryregistry"

	_ "xdao.co/nftwire/querier/memstate"
)

func main() {
	fs := flag.NewFlagSet("xdao-nftqueryd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7788", "listen address")
	backend := fs.String("backend", "memstate", "querier backend name")
	configPath := fs.String("query-config", "", "Open backends from a JSON config file instead of -backend")
	listBackends := fs.Bool("list-backends", false, "List supported backends and exit")

	queryregistry.RegisterFlags(fs, queryregistry.UsageDaemon)

	_ = fs.Parse(os.Args[1:])
	if *listBackends {
		for _, b := range queryregistry.List(queryregistry.UsageDaemon) {
			if b.Description == "" {
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", b.Name)
				continue
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\n", b.Name, b.Description)
		}
		return
	}

	q, closeFn, err := openBackend(*backend, *configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if closeFn != nil {
		defer closeFn()
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpcquerier.RegisterQuerierServer(s, &grpcquerier.Server{Backend: q})

	fmt.Fprintf(os.Stderr, "xdao-nftqueryd listening on %s (backend=%s)\n", lis.Addr().String(), *backend)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openBackend(backend, configPath string) (querier.Querier, func() error, error) {
	if configPath != "" {
		cfg, err := queryconfig.LoadFile(configPath)
		if err != nil {
			return nil, nil, err
		}
		return queryconfig.Open(cfg, queryregistry.UsageDaemon)
	}
	return queryregistry.Open(backend, queryregistry.UsageDaemon)
}
