// Package memstate is a deterministic, offline in-memory ledger backend.
//
// It models just enough of the NFT-management contract to answer the full
// query surface and apply execute envelopes, so programs and tests can run
// without a chain. It never uses the network and never depends on
// wall-clock time; list results are served in lexicographic token order,
// matching the real contract's storage iteration.
//
// This backend is a development fixture. It is not the product and makes no
// attempt at gas metering or expiry evaluation (there is no clock here;
// approvals are returned as stored).
package memstate

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"xdao.co/nftwire/cw721"
	"xdao.co/nftwire/querier"
	"xdao.co/nftwire/wasm"
)

// Contract-side page caps for list queries, matching the deployed contract.
const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// State is an in-memory multi-contract NFT ledger implementing querier.Querier.
type State struct {
	mu        sync.RWMutex
	contracts map[string]*contractState
}

type contractState struct {
	minter    string
	tokens    map[string]*token
	operators map[string]map[string]struct{} // owner -> operator set
}

type token struct {
	owner     string
	tokenURI  string
	approvals []cw721.Approval
}

var _ querier.Querier = (*State)(nil)

func New() *State {
	return &State{contracts: make(map[string]*contractState)}
}

// AddContract instantiates an empty contract at addr. minter may be empty,
// in which case anyone can mint.
func (s *State) AddContract(addr, minter string) error {
	if addr == "" {
		return fmt.Errorf("memstate: contract address is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.contracts[addr]; exists {
		return fmt.Errorf("memstate: contract %q already exists", addr)
	}
	s.contracts[addr] = &contractState{
		minter:    minter,
		tokens:    make(map[string]*token),
		operators: make(map[string]map[string]struct{}),
	}
	return nil
}

// RawQuery resolves one encoded smart query.
//
// Error mapping mirrors a real query subsystem: an undecodable outer
// request is ErrMalformed, a missing contract is ErrNotFound, and anything
// the contract itself refuses (including an undecodable contract message)
// is ErrRejected.
func (s *State) RawQuery(request []byte) ([]byte, error) {
	var req wasm.QueryRequest
	if err := json.Unmarshal(request, &req); err != nil {
		return nil, querier.ErrMalformed
	}
	if req.Wasm == nil || req.Wasm.Smart == nil {
		return nil, querier.ErrMalformed
	}
	smart := req.Wasm.Smart

	s.mu.RLock()
	defer s.mu.RUnlock()
	cs, ok := s.contracts[smart.ContractAddr]
	if !ok {
		return nil, querier.ErrNotFound
	}

	var msg cw721.QueryMsg
	if err := json.Unmarshal(smart.Msg, &msg); err != nil {
		return nil, querier.ErrRejected
	}

	switch {
	case msg.OwnerOf != nil:
		return cs.queryOwnerOf(msg.OwnerOf)
	case msg.AllTokens != nil:
		return cs.queryAllTokens(msg.AllTokens)
	case msg.NumTokens != nil:
		return encodeResponse(cw721.NumTokensResponse{Count: uint64(len(cs.tokens))})
	case msg.NftInfo != nil:
		return cs.queryNftInfo(msg.NftInfo)
	case msg.Tokens != nil:
		return cs.queryTokens(msg.Tokens)
	default:
		return nil, querier.ErrRejected
	}
}

func (cs *contractState) queryOwnerOf(q *cw721.OwnerOfQuery) ([]byte, error) {
	tok, ok := cs.tokens[q.TokenID]
	if !ok {
		return nil, querier.ErrRejected
	}
	approvals := tok.approvals
	if approvals == nil {
		approvals = []cw721.Approval{}
	}
	return encodeResponse(cw721.OwnerOfResponse{Owner: tok.owner, Approvals: approvals})
}

func (cs *contractState) queryAllTokens(q *cw721.AllTokensQuery) ([]byte, error) {
	ids := cs.sortedTokenIDs(func(*token) bool { return true })
	return encodeResponse(cw721.TokensResponse{Tokens: paginate(ids, q.StartAfter, q.Limit)})
}

func (cs *contractState) queryTokens(q *cw721.TokensQuery) ([]byte, error) {
	owner := q.Owner
	ids := cs.sortedTokenIDs(func(t *token) bool { return t.owner == owner })
	return encodeResponse(cw721.TokensResponse{Tokens: paginate(ids, q.StartAfter, q.Limit)})
}

func (cs *contractState) queryNftInfo(q *cw721.NftInfoQuery) ([]byte, error) {
	tok, ok := cs.tokens[q.TokenID]
	if !ok {
		return nil, querier.ErrRejected
	}
	return encodeResponse(cw721.NftInfoResponse{TokenURI: tok.tokenURI})
}

func (cs *contractState) sortedTokenIDs(keep func(*token) bool) []string {
	ids := make([]string, 0, len(cs.tokens))
	for id, t := range cs.tokens {
		if keep(t) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func paginate(ids []string, startAfter *string, limit *uint32) []string {
	if startAfter != nil {
		// Exclusive cursor over the sorted sequence.
		i := sort.SearchStrings(ids, *startAfter)
		if i < len(ids) && ids[i] == *startAfter {
			i++
		}
		ids = ids[i:]
	}
	max := defaultPageLimit
	if limit != nil {
		max = int(*limit)
		if max > maxPageLimit {
			max = maxPageLimit
		}
	}
	if len(ids) > max {
		ids = ids[:max]
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func encodeResponse(v any) ([]byte, error) {
	b, err := wasm.MarshalCanonical(v)
	if err != nil {
		return nil, fmt.Errorf("memstate: %w", err)
	}
	return b, nil
}
