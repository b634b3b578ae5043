package cw721

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"xdao.co/nftwire/querier"
	"xdao.co/nftwire/wasm"
)

type recordingQuerier struct {
	requests [][]byte
	response []byte
	err      error
}

func (r *recordingQuerier) RawQuery(request []byte) ([]byte, error) {
	r.requests = append(r.requests, request)
	if r.err != nil {
		return nil, r.err
	}
	return r.response, nil
}

func innerExecutePayload(t *testing.T, env wasm.CosmosMsg) []byte {
	t.Helper()
	if env.Wasm == nil || env.Wasm.Execute == nil {
		t.Fatalf("expected wasm.execute envelope")
	}
	return env.Wasm.Execute.Msg
}

func TestCallTransferEnvelope(t *testing.T) {
	env, err := New("contractA").Call(ExecuteMsg{
		TransferNft: &TransferNft{Recipient: "bob", TokenID: "1"},
	})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if got := env.Wasm.Execute.ContractAddr; got != "contractA" {
		t.Fatalf("expected target contractA, got %q", got)
	}
	if env.Wasm.Execute.Funds == nil || len(env.Wasm.Execute.Funds) != 0 {
		t.Fatalf("expected empty funds list, got %#v", env.Wasm.Execute.Funds)
	}
	if got := string(innerExecutePayload(t, env)); got != `{"transfer_nft":{"recipient":"bob","token_id":"1"}}` {
		t.Fatalf("unexpected inner payload: %s", got)
	}
}

func TestCallIdempotent(t *testing.T) {
	c := New("contractA")
	msg := ExecuteMsg{TransferNft: &TransferNft{Recipient: "bob", TokenID: "1"}}

	first, err := c.Call(msg)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	second, err := c.Call(msg)
	if err != nil {
		t.Fatalf("call: %v", err)
	}

	a, err := wasm.MarshalCanonical(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := wasm.MarshalCanonical(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("expected byte-identical envelopes, got %q vs %q", a, b)
	}
}

// TestWireVectors pins the exact wire bytes of the common operations.
// Regenerate testdata/wire_vectors.txt with internal/tools/envelope_vector_gen.
func TestWireVectors(t *testing.T) {
	f, err := os.Open("testdata/wire_vectors.txt")
	if err != nil {
		t.Fatalf("open vectors: %v", err)
	}
	defer f.Close()

	got := map[string]string{}

	build := func(name string) string {
		t.Helper()
		c := New("contractA")
		switch name {
		case "execute_transfer":
			env, err := c.Call(ExecuteMsg{TransferNft: &TransferNft{Recipient: "bob", TokenID: "1"}})
			if err != nil {
				t.Fatalf("call: %v", err)
			}
			return mustCanonical(t, env)
		case "execute_mint":
			env, err := c.Call(ExecuteMsg{Mint: &Mint{TokenID: "7", Owner: "alice"}})
			if err != nil {
				t.Fatalf("call: %v", err)
			}
			return mustCanonical(t, env)
		case "execute_burn":
			env, err := c.Call(ExecuteMsg{Burn: &Burn{TokenID: "7"}})
			if err != nil {
				t.Fatalf("call: %v", err)
			}
			return mustCanonical(t, env)
		case "query_owner_of":
			return capturedRequest(t, func(q querier.Querier) {
				_, _ = c.OwnerOf(q, "1")
			})
		case "query_all_tokens":
			return capturedRequest(t, func(q querier.Querier) {
				_, _ = c.AllTokens(q)
			})
		default:
			t.Fatalf("unknown vector %q", name)
			return ""
		}
	}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		name, want, ok := strings.Cut(line, "\t")
		if !ok {
			t.Fatalf("malformed vector line: %q", line)
		}
		got[name] = want
		if have := build(name); have != want {
			t.Errorf("%s:\n  want %s\n  got  %s", name, want, have)
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("read vectors: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 vectors, got %d", len(got))
	}
}

func mustCanonical(t *testing.T, v any) string {
	t.Helper()
	b, err := wasm.MarshalCanonical(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func capturedRequest(t *testing.T, do func(q querier.Querier)) string {
	t.Helper()
	q := &recordingQuerier{response: []byte(`{}`)}
	do(q)
	if len(q.requests) != 1 {
		t.Fatalf("expected exactly one round trip, got %d", len(q.requests))
	}
	return string(q.requests[0])
}

func TestOwnerOfSingleRoundTrip(t *testing.T) {
	q := &recordingQuerier{response: []byte(`{"owner":"alice","approvals":[]}`)}

	resp, err := New("contractA").OwnerOf(q, "1")
	if err != nil {
		t.Fatalf("owner-of: %v", err)
	}
	if resp.Owner != "alice" {
		t.Fatalf("expected owner alice, got %q", resp.Owner)
	}
	if len(resp.Approvals) != 0 {
		t.Fatalf("expected no approvals, got %d", len(resp.Approvals))
	}
	if len(q.requests) != 1 {
		t.Fatalf("expected exactly one round trip, got %d", len(q.requests))
	}

	var req wasm.QueryRequest
	if err := json.Unmarshal(q.requests[0], &req); err != nil {
		t.Fatalf("request not decodable: %v", err)
	}
	if got := string(req.Wasm.Smart.Msg); got != `{"owner_of":{"token_id":"1"}}` {
		t.Fatalf("unexpected inner query: %s", got)
	}
}

func TestOwnerOfQueryErrorPropagates(t *testing.T) {
	q := &recordingQuerier{err: querier.ErrRejected}

	_, err := New("contractA").OwnerOf(q, "404")
	if !wasm.IsKind(err, wasm.KindQuery) {
		t.Fatalf("expected query-kind error, got %v", err)
	}
	if !errors.Is(err, querier.ErrRejected) {
		t.Fatalf("expected wrapped rejection, got %v", err)
	}
	if len(q.requests) != 1 {
		t.Fatalf("expected no retry after failure, got %d requests", len(q.requests))
	}
}

func TestOwnerOfDeserializeError(t *testing.T) {
	q := &recordingQuerier{response: []byte(`{"owner":12345}`)}

	_, err := New("contractA").OwnerOf(q, "1")
	if !wasm.IsKind(err, wasm.KindDeserialize) {
		t.Fatalf("expected deserialize-kind error, got %v", err)
	}
}

func TestAllTokensPreservesOrder(t *testing.T) {
	q := &recordingQuerier{response: []byte(`{"tokens":["3","1","2","1"]}`)}

	resp, err := New("contractA").AllTokens(q)
	if err != nil {
		t.Fatalf("all-tokens: %v", err)
	}
	if want := []string{"3", "1", "2", "1"}; !reflect.DeepEqual(resp.Tokens, want) {
		t.Fatalf("expected verbatim sequence %v, got %v", want, resp.Tokens)
	}
	if len(q.requests) != 1 {
		t.Fatalf("expected exactly one round trip, got %d", len(q.requests))
	}
}

func TestAllTokensEmptyCollection(t *testing.T) {
	q := &recordingQuerier{response: []byte(`{"tokens":[]}`)}

	resp, err := New("contractA").AllTokens(q)
	if err != nil {
		t.Fatalf("all-tokens: %v", err)
	}
	if len(resp.Tokens) != 0 {
		t.Fatalf("expected empty list, got %v", resp.Tokens)
	}
}

func TestNumTokens(t *testing.T) {
	q := &recordingQuerier{response: []byte(`{"count":3}`)}

	resp, err := New("contractA").NumTokens(q)
	if err != nil {
		t.Fatalf("num-tokens: %v", err)
	}
	if resp.Count != 3 {
		t.Fatalf("expected count 3, got %d", resp.Count)
	}
}

func TestTokensByOwner(t *testing.T) {
	q := &recordingQuerier{response: []byte(`{"tokens":["1","3"]}`)}

	resp, err := New("contractA").Tokens(q, "alice", nil, nil)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	if want := []string{"1", "3"}; !reflect.DeepEqual(resp.Tokens, want) {
		t.Fatalf("expected %v, got %v", want, resp.Tokens)
	}

	var req wasm.QueryRequest
	if err := json.Unmarshal(q.requests[0], &req); err != nil {
		t.Fatalf("request not decodable: %v", err)
	}
	if got := string(req.Wasm.Smart.Msg); got != `{"tokens":{"owner":"alice"}}` {
		t.Fatalf("unexpected inner query: %s", got)
	}
}

func TestAddrIsCopied(t *testing.T) {
	c := New("contractA")
	if c.Addr() != "contractA" {
		t.Fatalf("expected contractA, got %q", c.Addr())
	}
}
