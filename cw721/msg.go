// Package cw721 holds the NFT-management contract's message schema and a
// typed handle for invoking it from another on-ledger program.
package cw721

import "xdao.co/nftwire/wasm"

// ExecuteMsg is the contract's tagged execute variant. Exactly one pointer
// is set; the wire form is a single-key snake_case object.
type ExecuteMsg struct {
	TransferNft *TransferNft `json:"transfer_nft,omitempty"`
	SendNft     *SendNft     `json:"send_nft,omitempty"`
	Approve     *Approve     `json:"approve,omitempty"`
	Revoke      *Revoke      `json:"revoke,omitempty"`
	ApproveAll  *ApproveAll  `json:"approve_all,omitempty"`
	RevokeAll   *RevokeAll   `json:"revoke_all,omitempty"`
	Mint        *Mint        `json:"mint,omitempty"`
	Burn        *Burn        `json:"burn,omitempty"`
}

// TransferNft moves ownership of a token to another account.
type TransferNft struct {
	Recipient string `json:"recipient"`
	TokenID   string `json:"token_id"`
}

// SendNft transfers a token to a contract and triggers its receive hook.
type SendNft struct {
	Contract string      `json:"contract"`
	TokenID  string      `json:"token_id"`
	Msg      wasm.Binary `json:"msg"`
}

// Approve grants a spender transfer rights over one token.
type Approve struct {
	Spender string      `json:"spender"`
	TokenID string      `json:"token_id"`
	Expires *Expiration `json:"expires,omitempty"`
}

type Revoke struct {
	Spender string `json:"spender"`
	TokenID string `json:"token_id"`
}

// ApproveAll grants an operator transfer rights over all of the sender's tokens.
type ApproveAll struct {
	Operator string      `json:"operator"`
	Expires  *Expiration `json:"expires,omitempty"`
}

type RevokeAll struct {
	Operator string `json:"operator"`
}

// Mint creates a new token. TokenURI, when set, is an ipfs:// content
// identifier for the token's metadata document (see metadata.go).
type Mint struct {
	TokenID  string `json:"token_id"`
	Owner    string `json:"owner"`
	TokenURI string `json:"token_uri,omitempty"`
}

type Burn struct {
	TokenID string `json:"token_id"`
}

// Expiration is the contract's tagged expiry variant: a block height, a
// timestamp in nanoseconds (decimal string on the wire), or never.
type Expiration struct {
	AtHeight *uint64   `json:"at_height,omitempty"`
	AtTime   *string   `json:"at_time,omitempty"`
	Never    *struct{} `json:"never,omitempty"`
}
