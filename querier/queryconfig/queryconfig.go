// Package queryconfig opens querier backends from a JSON config file.
//
// This provides config-driven runtime backend selection on top of
// queryregistry. Callers still need to link desired backend packages via
// blank imports.
package queryconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"xdao.co/nftwire/querier"
	"xdao.co/nftwire/querier/queryregistry"
)

// Config describes an ordered set of querier backends.
//
// With more than one backend the result is a querier.MultiQuerier: the
// listed order is the fallback order, and only unavailable backends fall
// through.
//
// Example:
//
//	{
//	  "backends": [
//	    {"name":"grpc", "config":{"grpc-target":"10.0.0.5:7788"}},
//	    {"name":"memstate", "config":{"memstate-genesis":"genesis.json"}}
//	  ]
//	}
//
// Note: Config values are backend-specific and mirror the backend's flag names.
type Config struct {
	Backends []BackendConfig `json:"backends"`
}

type BackendConfig struct {
	// Name is the queryregistry backend name to open (e.g. "grpc", "memstate").
	Name   string            `json:"name"`
	Config map[string]string `json:"config,omitempty"`
}

func LoadFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, errors.New("queryconfig: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if len(c.Backends) == 0 {
		return errors.New("queryconfig: at least one backend is required")
	}
	seen := make(map[string]struct{}, len(c.Backends))
	for _, b := range c.Backends {
		if b.Name == "" {
			return errors.New("queryconfig: backend name is required")
		}
		if _, ok := seen[b.Name]; ok {
			return fmt.Errorf("queryconfig: duplicate backend %q", b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return nil
}

// Open opens every configured backend in order and returns a single
// querier plus a close function releasing all of them.
func Open(cfg Config, usage queryregistry.Usage) (querier.Querier, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		qs     []querier.Querier
		closes []func() error
	)
	closeAll := func() error {
		var first error
		for _, fn := range closes {
			if err := fn(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	for _, b := range cfg.Backends {
		q, closeFn, err := queryregistry.OpenWithConfig(b.Name, usage, b.Config)
		if err != nil {
			_ = closeAll()
			return nil, nil, err
		}
		qs = append(qs, q)
		if closeFn != nil {
			closes = append(closes, closeFn)
		}
	}

	if len(qs) == 1 {
		return qs[0], closeAll, nil
	}
	return querier.MultiQuerier{Backends: qs}, closeAll, nil
}
