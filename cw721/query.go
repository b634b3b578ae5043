package cw721

import "encoding/json"

// QueryMsg is the contract's tagged read-only variant. Exactly one pointer
// is set; the wire form is a single-key snake_case object.
type QueryMsg struct {
	OwnerOf   *OwnerOfQuery   `json:"owner_of,omitempty"`
	AllTokens *AllTokensQuery `json:"all_tokens,omitempty"`
	NumTokens *NumTokensQuery `json:"num_tokens,omitempty"`
	NftInfo   *NftInfoQuery   `json:"nft_info,omitempty"`
	Tokens    *TokensQuery    `json:"tokens,omitempty"`
}

// OwnerOfQuery asks who owns one token. IncludeExpired left unset means
// expired approvals are filtered out by the contract.
type OwnerOfQuery struct {
	TokenID        string `json:"token_id"`
	IncludeExpired *bool  `json:"include_expired,omitempty"`
}

// AllTokensQuery lists token identifiers across all owners. With no cursor
// and no limit the contract serves its default page.
type AllTokensQuery struct {
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type NumTokensQuery struct{}

type NftInfoQuery struct {
	TokenID string `json:"token_id"`
}

// TokensQuery lists token identifiers held by one owner.
type TokensQuery struct {
	Owner      string  `json:"owner"`
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

// Approval is a live transfer grant on a token.
type Approval struct {
	Spender string     `json:"spender"`
	Expires Expiration `json:"expires"`
}

type OwnerOfResponse struct {
	Owner     string     `json:"owner"`
	Approvals []Approval `json:"approvals"`
}

// TokensResponse carries token identifiers in the contract's storage order.
// Callers receive the sequence verbatim: no reordering, no deduplication.
type TokensResponse struct {
	Tokens []string `json:"tokens"`
}

type NumTokensResponse struct {
	Count uint64 `json:"count"`
}

type NftInfoResponse struct {
	TokenURI  string          `json:"token_uri"`
	Extension json.RawMessage `json:"extension,omitempty"`
}
