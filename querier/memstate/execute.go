package memstate

import (
	"encoding/json"
	"fmt"
	"sort"

	"xdao.co/nftwire/cw721"
	"xdao.co/nftwire/wasm"
)

// Apply executes one envelope against the ledger state on behalf of sender.
//
// This lets tests and tools drive state with the very envelopes the handle
// builds. Authorization follows the contract: transfers need the owner, an
// approved spender or an operator; mint is restricted to the configured
// minter when one is set. send_nft transfers like transfer_nft; no receive
// hook runs here.
func (s *State) Apply(sender string, env wasm.CosmosMsg) error {
	if env.Wasm == nil || env.Wasm.Execute == nil {
		return fmt.Errorf("memstate: not an execute envelope")
	}
	exec := env.Wasm.Execute

	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.contracts[exec.ContractAddr]
	if !ok {
		return fmt.Errorf("memstate: contract %q not found", exec.ContractAddr)
	}

	var msg cw721.ExecuteMsg
	if err := json.Unmarshal(exec.Msg, &msg); err != nil {
		return fmt.Errorf("memstate: undecodable execute payload: %w", err)
	}

	switch {
	case msg.TransferNft != nil:
		return cs.transfer(sender, msg.TransferNft.TokenID, msg.TransferNft.Recipient)
	case msg.SendNft != nil:
		return cs.transfer(sender, msg.SendNft.TokenID, msg.SendNft.Contract)
	case msg.Approve != nil:
		return cs.approve(sender, msg.Approve)
	case msg.Revoke != nil:
		return cs.revoke(sender, msg.Revoke.TokenID, msg.Revoke.Spender)
	case msg.ApproveAll != nil:
		return cs.approveAll(sender, msg.ApproveAll.Operator)
	case msg.RevokeAll != nil:
		delete(cs.operators[sender], msg.RevokeAll.Operator)
		return nil
	case msg.Mint != nil:
		return cs.mint(sender, msg.Mint)
	case msg.Burn != nil:
		return cs.burn(sender, msg.Burn.TokenID)
	default:
		return fmt.Errorf("memstate: empty execute variant")
	}
}

func (cs *contractState) authorized(sender string, tok *token) bool {
	if sender == tok.owner {
		return true
	}
	for _, a := range tok.approvals {
		if a.Spender == sender {
			return true
		}
	}
	_, ok := cs.operators[tok.owner][sender]
	return ok
}

func (cs *contractState) transfer(sender, tokenID, recipient string) error {
	tok, ok := cs.tokens[tokenID]
	if !ok {
		return fmt.Errorf("memstate: token %q not found", tokenID)
	}
	if !cs.authorized(sender, tok) {
		return fmt.Errorf("memstate: %q may not transfer token %q", sender, tokenID)
	}
	tok.owner = recipient
	tok.approvals = nil
	return nil
}

func (cs *contractState) approve(sender string, a *cw721.Approve) error {
	tok, ok := cs.tokens[a.TokenID]
	if !ok {
		return fmt.Errorf("memstate: token %q not found", a.TokenID)
	}
	if sender != tok.owner {
		if _, op := cs.operators[tok.owner][sender]; !op {
			return fmt.Errorf("memstate: %q may not approve on token %q", sender, a.TokenID)
		}
	}
	if a.Spender == tok.owner {
		return fmt.Errorf("memstate: cannot approve the owner")
	}
	expires := cw721.Expiration{Never: &struct{}{}}
	if a.Expires != nil {
		expires = *a.Expires
	}
	for i := range tok.approvals {
		if tok.approvals[i].Spender == a.Spender {
			tok.approvals[i].Expires = expires
			return nil
		}
	}
	tok.approvals = append(tok.approvals, cw721.Approval{Spender: a.Spender, Expires: expires})
	sort.Slice(tok.approvals, func(i, j int) bool {
		return tok.approvals[i].Spender < tok.approvals[j].Spender
	})
	return nil
}

func (cs *contractState) revoke(sender, tokenID, spender string) error {
	tok, ok := cs.tokens[tokenID]
	if !ok {
		return fmt.Errorf("memstate: token %q not found", tokenID)
	}
	if sender != tok.owner {
		if _, op := cs.operators[tok.owner][sender]; !op {
			return fmt.Errorf("memstate: %q may not revoke on token %q", sender, tokenID)
		}
	}
	kept := tok.approvals[:0]
	for _, a := range tok.approvals {
		if a.Spender != spender {
			kept = append(kept, a)
		}
	}
	tok.approvals = kept
	return nil
}

func (cs *contractState) approveAll(sender, operator string) error {
	if operator == sender {
		return fmt.Errorf("memstate: cannot set self as operator")
	}
	if cs.operators[sender] == nil {
		cs.operators[sender] = make(map[string]struct{})
	}
	cs.operators[sender][operator] = struct{}{}
	return nil
}

func (cs *contractState) mint(sender string, m *cw721.Mint) error {
	if cs.minter != "" && sender != cs.minter {
		return fmt.Errorf("memstate: %q is not the minter", sender)
	}
	if m.TokenID == "" {
		return fmt.Errorf("memstate: token id is required")
	}
	if _, exists := cs.tokens[m.TokenID]; exists {
		return fmt.Errorf("memstate: token %q already exists", m.TokenID)
	}
	cs.tokens[m.TokenID] = &token{owner: m.Owner, tokenURI: m.TokenURI}
	return nil
}

func (cs *contractState) burn(sender, tokenID string) error {
	tok, ok := cs.tokens[tokenID]
	if !ok {
		return fmt.Errorf("memstate: token %q not found", tokenID)
	}
	if !cs.authorized(sender, tok) {
		return fmt.Errorf("memstate: %q may not burn token %q", sender, tokenID)
	}
	delete(cs.tokens, tokenID)
	return nil
}
