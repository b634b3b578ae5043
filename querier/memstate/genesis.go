package memstate

import (
	"encoding/json"
	"fmt"
	"os"
)

// Genesis seeds a State from a JSON document, e.g.:
//
//	{
//	  "contracts": [
//	    {"addr": "nft1", "minter": "alice", "tokens": [
//	      {"id": "1", "owner": "alice", "token_uri": "ipfs://bafy..."}
//	    ]}
//	  ]
//	}
type Genesis struct {
	Contracts []GenesisContract `json:"contracts"`
}

type GenesisContract struct {
	Addr   string         `json:"addr"`
	Minter string         `json:"minter,omitempty"`
	Tokens []GenesisToken `json:"tokens,omitempty"`
}

type GenesisToken struct {
	ID       string `json:"id"`
	Owner    string `json:"owner"`
	TokenURI string `json:"token_uri,omitempty"`
}

// FromGenesis builds a State holding exactly the genesis contents.
func FromGenesis(g Genesis) (*State, error) {
	s := New()
	for _, c := range g.Contracts {
		if err := s.AddContract(c.Addr, c.Minter); err != nil {
			return nil, err
		}
		cs := s.contracts[c.Addr]
		for _, t := range c.Tokens {
			if t.ID == "" || t.Owner == "" {
				return nil, fmt.Errorf("memstate: genesis token in %q needs id and owner", c.Addr)
			}
			if _, exists := cs.tokens[t.ID]; exists {
				return nil, fmt.Errorf("memstate: duplicate genesis token %q in %q", t.ID, c.Addr)
			}
			cs.tokens[t.ID] = &token{owner: t.Owner, tokenURI: t.TokenURI}
		}
	}
	return s, nil
}

// FromGenesisFile loads a genesis JSON file.
func FromGenesisFile(path string) (*State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g Genesis
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("memstate: bad genesis file: %w", err)
	}
	return FromGenesis(g)
}
