package cw721

import (
	"xdao.co/nftwire/querier"
	"xdao.co/nftwire/wasm"
)

// Contract is a typed handle to one deployed NFT-management contract.
//
// It holds only the contract's ledger-assigned address, copied, never
// referenced. The address is not validated here; validity is the ledger's
// responsibility at dispatch time. The handle is stateless and freely
// copyable; each method call is independent.
type Contract struct {
	addr string
}

func New(addr string) Contract {
	return Contract{addr: addr}
}

// Addr returns a copy of the held address.
func (c Contract) Addr() string {
	return c.addr
}

// Call builds an execute envelope for one operation.
//
// This is pure construction: nothing is dispatched. The caller embeds the
// returned message in its own outgoing message set. Identical inputs yield
// byte-identical payloads (wasm.MarshalCanonical), and funds is always the
// empty list.
func (c Contract) Call(msg ExecuteMsg) (wasm.CosmosMsg, error) {
	payload, err := wasm.MarshalCanonical(msg)
	if err != nil {
		return wasm.CosmosMsg{}, err
	}
	return wasm.NewExecute(c.addr, payload), nil
}

// OwnerOf resolves the current owner of tokenID in one synchronous smart
// query. Expired approvals are not requested (include_expired stays unset).
func (c Contract) OwnerOf(q querier.Querier, tokenID string) (*OwnerOfResponse, error) {
	msg := QueryMsg{OwnerOf: &OwnerOfQuery{TokenID: tokenID}}
	var resp OwnerOfResponse
	if err := wasm.NewQuerierWrapper(q).QuerySmart(c.addr, msg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AllTokens lists token identifiers in one synchronous smart query with no
// pagination cursor and no limit. The contract may cap the page; this
// handle never paginates or retries — a single round trip only.
func (c Contract) AllTokens(q querier.Querier) (*TokensResponse, error) {
	msg := QueryMsg{AllTokens: &AllTokensQuery{}}
	var resp TokensResponse
	if err := wasm.NewQuerierWrapper(q).QuerySmart(c.addr, msg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NumTokens reports how many tokens the contract tracks.
func (c Contract) NumTokens(q querier.Querier) (*NumTokensResponse, error) {
	msg := QueryMsg{NumTokens: &NumTokensQuery{}}
	var resp NumTokensResponse
	if err := wasm.NewQuerierWrapper(q).QuerySmart(c.addr, msg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NftInfo resolves the stored metadata pointer for tokenID.
func (c Contract) NftInfo(q querier.Querier, tokenID string) (*NftInfoResponse, error) {
	msg := QueryMsg{NftInfo: &NftInfoQuery{TokenID: tokenID}}
	var resp NftInfoResponse
	if err := wasm.NewQuerierWrapper(q).QuerySmart(c.addr, msg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Tokens lists token identifiers held by owner. startAfter and limit are
// optional; nil requests the contract's default page.
func (c Contract) Tokens(q querier.Querier, owner string, startAfter *string, limit *uint32) (*TokensResponse, error) {
	msg := QueryMsg{Tokens: &TokensQuery{Owner: owner, StartAfter: startAfter, Limit: limit}}
	var resp TokensResponse
	if err := wasm.NewQuerierWrapper(q).QuerySmart(c.addr, msg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
