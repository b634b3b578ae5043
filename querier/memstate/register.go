package memstate

import (
	"flag"

	"xdao.co/nftwire/querier"
	"xdao.co/nftwire/querier/queryregistry"
)

var flagGenesis string

func init() {
	queryregistry.MustRegister(queryregistry.Backend{
		Name:        "memstate",
		Description: "offline in-memory ledger state (optionally seeded from a genesis file)",
		Usage:       queryregistry.UsageCLI | queryregistry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagGenesis, "memstate-genesis", "", "path to a genesis JSON file")
		},
		Open: func() (querier.Querier, func() error, error) {
			if flagGenesis == "" {
				return New(), nil, nil
			}
			s, err := FromGenesisFile(flagGenesis)
			if err != nil {
				return nil, nil, err
			}
			return s, nil, nil
		},
	})
}
