// Package testkit holds the shared conformance suite every querier backend
// must pass, so "backend" means the same thing everywhere.
package testkit

import (
	"errors"
	"testing"

	"xdao.co/nftwire/cw721"
	"xdao.co/nftwire/querier"
	"xdao.co/nftwire/querier/memstate"
)

// FixtureContract is the contract address the conformance fixture lives at.
const FixtureContract = "nft-fixture"

// FixtureGenesis is the ledger content conformance queriers must be bound
// to: three tokens, lexicographically "1" < "2" < "3", owned by alice, bob,
// alice.
func FixtureGenesis() memstate.Genesis {
	return memstate.Genesis{
		Contracts: []memstate.GenesisContract{
			{
				Addr:   FixtureContract,
				Minter: "minter",
				Tokens: []memstate.GenesisToken{
					{ID: "1", Owner: "alice", TokenURI: "ipfs://bafkreibm6jg3ux5qumhcn2b3flc3tyu6dmlb4xa7u5bf44yegnrjhc4yeq"},
					{ID: "2", Owner: "bob"},
					{ID: "3", Owner: "alice"},
				},
			},
		},
	}
}

// NewQuerier constructs a querier bound to FixtureGenesis for a test.
// The returned querier MUST be isolated from other tests.
type NewQuerier func(t *testing.T) querier.Querier

func RunQuerierConformance(t *testing.T, newQuerier NewQuerier) {
	t.Helper()
	handle := cw721.New(FixtureContract)

	t.Run("OwnerOfRoundTrip", func(t *testing.T) {
		q := newQuerier(t)
		resp, err := handle.OwnerOf(q, "2")
		if err != nil {
			t.Fatalf("OwnerOf failed: %v", err)
		}
		if resp.Owner != "bob" {
			t.Fatalf("OwnerOf owner: got %q want %q", resp.Owner, "bob")
		}
		if len(resp.Approvals) != 0 {
			t.Fatalf("OwnerOf approvals: got %d want 0", len(resp.Approvals))
		}
	})

	t.Run("AllTokensOrdered", func(t *testing.T) {
		q := newQuerier(t)
		resp, err := handle.AllTokens(q)
		if err != nil {
			t.Fatalf("AllTokens failed: %v", err)
		}
		want := []string{"1", "2", "3"}
		if len(resp.Tokens) != len(want) {
			t.Fatalf("AllTokens: got %v want %v", resp.Tokens, want)
		}
		for i := range want {
			if resp.Tokens[i] != want[i] {
				t.Fatalf("AllTokens: got %v want %v", resp.Tokens, want)
			}
		}
	})

	t.Run("TokensByOwner", func(t *testing.T) {
		q := newQuerier(t)
		resp, err := handle.Tokens(q, "alice", nil, nil)
		if err != nil {
			t.Fatalf("Tokens failed: %v", err)
		}
		if len(resp.Tokens) != 2 || resp.Tokens[0] != "1" || resp.Tokens[1] != "3" {
			t.Fatalf("Tokens(alice): got %v want [1 3]", resp.Tokens)
		}
	})

	t.Run("NumTokens", func(t *testing.T) {
		q := newQuerier(t)
		resp, err := handle.NumTokens(q)
		if err != nil {
			t.Fatalf("NumTokens failed: %v", err)
		}
		if resp.Count != 3 {
			t.Fatalf("NumTokens: got %d want 3", resp.Count)
		}
	})

	t.Run("UnknownContractNotFound", func(t *testing.T) {
		q := newQuerier(t)
		_, err := cw721.New("no-such-contract").OwnerOf(q, "1")
		if !querier.IsNotFound(err) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UnknownTokenRejected", func(t *testing.T) {
		q := newQuerier(t)
		_, err := handle.OwnerOf(q, "404")
		if !errors.Is(err, querier.ErrRejected) {
			t.Fatalf("expected ErrRejected, got %v", err)
		}
	})

	t.Run("MalformedRequest", func(t *testing.T) {
		q := newQuerier(t)
		_, err := q.RawQuery([]byte("not a query"))
		if !errors.Is(err, querier.ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
	})
}
