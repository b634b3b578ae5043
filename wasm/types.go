// Package wasm defines the ledger's generic contract-call message shapes.
//
// These types mirror the host chain's wire schema exactly (snake_case keys,
// base64 binary payloads, tagged single-key variants). They carry no
// behavior beyond encoding; dispatch is the caller's responsibility.
package wasm

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// Binary is an opaque payload that encodes as standard base64 in JSON,
// matching the ledger's binary encoding of inner operation payloads.
type Binary []byte

func (b Binary) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

func (b *Binary) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return errors.New("wasm: binary payload is not valid base64")
	}
	*b = raw
	return nil
}

// Coin is an attached-funds entry. This client always sends an empty funds
// list, but the type is complete so envelopes round-trip losslessly.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// CosmosMsg is the ledger's generic outgoing message. Exactly one variant
// pointer is set; absent variants are omitted from the wire form.
type CosmosMsg struct {
	Wasm *WasmMsg `json:"wasm,omitempty"`
}

type WasmMsg struct {
	Execute *ExecuteContract `json:"execute,omitempty"`
}

// ExecuteContract is the state-mutating "execute a contract" envelope.
type ExecuteContract struct {
	ContractAddr string `json:"contract_addr"`
	Msg          Binary `json:"msg"`
	Funds        []Coin `json:"funds"`
}

// NewExecute wraps an encoded operation payload into an execute envelope.
// Funds is always the empty list, never null.
func NewExecute(contractAddr string, msg Binary) CosmosMsg {
	return CosmosMsg{
		Wasm: &WasmMsg{
			Execute: &ExecuteContract{
				ContractAddr: contractAddr,
				Msg:          msg,
				Funds:        []Coin{},
			},
		},
	}
}

// QueryRequest is the ledger's generic read-only request.
type QueryRequest struct {
	Wasm *WasmQuery `json:"wasm,omitempty"`
}

type WasmQuery struct {
	Smart *SmartQuery `json:"smart,omitempty"`
}

// SmartQuery targets a contract's exposed query handler.
type SmartQuery struct {
	ContractAddr string `json:"contract_addr"`
	Msg          Binary `json:"msg"`
}

// NewSmartQuery wraps an encoded query payload into a query request.
func NewSmartQuery(contractAddr string, msg Binary) QueryRequest {
	return QueryRequest{
		Wasm: &WasmQuery{
			Smart: &SmartQuery{ContractAddr: contractAddr, Msg: msg},
		},
	}
}
