package wasm

import (
	"encoding/json"
	"errors"
	"testing"

	"xdao.co/nftwire/querier"
)

// recordingQuerier captures requests and replays a fixed response.
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

type ownerQuery struct {
	TokenID string `json:"token_id"`
}

type ownerResponse struct {
	Owner string `json:"owner"`
}

func TestQuerySmartHappyPath(t *testing.T) {
	q := &recordingQuerier{response: []byte(`{"owner":"alice"}`)}

	var resp ownerResponse
	err := NewQuerierWrapper(q).QuerySmart("contractA", ownerQuery{TokenID: "1"}, &resp)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if resp.Owner != "alice" {
		t.Fatalf("expected owner alice, got %q", resp.Owner)
	}
	if len(q.requests) != 1 {
		t.Fatalf("expected exactly one round trip, got %d", len(q.requests))
	}

	var req QueryRequest
	if err := json.Unmarshal(q.requests[0], &req); err != nil {
		t.Fatalf("request not decodable: %v", err)
	}
	if req.Wasm == nil || req.Wasm.Smart == nil {
		t.Fatalf("expected wasm.smart request, got %s", q.requests[0])
	}
	if req.Wasm.Smart.ContractAddr != "contractA" {
		t.Fatalf("expected contractA, got %q", req.Wasm.Smart.ContractAddr)
	}
	if string(req.Wasm.Smart.Msg) != `{"token_id":"1"}` {
		t.Fatalf("unexpected inner payload: %s", req.Wasm.Smart.Msg)
	}
}

func TestQuerySmartIgnoresUnknownResponseFields(t *testing.T) {
	q := &recordingQuerier{response: []byte(`{"owner":"alice","extra":"later schema"}`)}

	var resp ownerResponse
	if err := NewQuerierWrapper(q).QuerySmart("contractA", ownerQuery{TokenID: "1"}, &resp); err != nil {
		t.Fatalf("query: %v", err)
	}
	if resp.Owner != "alice" {
		t.Fatalf("expected owner alice, got %q", resp.Owner)
	}
}

func TestQuerySmartQueryErrorPreservesCause(t *testing.T) {
	q := &recordingQuerier{err: querier.ErrRejected}

	var resp ownerResponse
	err := NewQuerierWrapper(q).QuerySmart("contractA", ownerQuery{TokenID: "404"}, &resp)
	if !IsKind(err, KindQuery) {
		t.Fatalf("expected query-kind error, got %v", err)
	}
	if !errors.Is(err, querier.ErrRejected) {
		t.Fatalf("expected wrapped rejection, got %v", err)
	}
	if len(q.requests) != 1 {
		t.Fatalf("expected exactly one round trip, got %d", len(q.requests))
	}
}

func TestQuerySmartDeserializeError(t *testing.T) {
	q := &recordingQuerier{response: []byte(`{"owner":42}`)}

	var resp ownerResponse
	err := NewQuerierWrapper(q).QuerySmart("contractA", ownerQuery{TokenID: "1"}, &resp)
	if !IsKind(err, KindDeserialize) {
		t.Fatalf("expected deserialize-kind error, got %v", err)
	}
}

func TestQuerySmartSerializeErrorSkipsDispatch(t *testing.T) {
	q := &recordingQuerier{response: []byte(`{}`)}

	var resp ownerResponse
	err := NewQuerierWrapper(q).QuerySmart("contractA", map[string]string{"bad": "shape"}, &resp)
	if !IsKind(err, KindSerialize) {
		t.Fatalf("expected serialize-kind error, got %v", err)
	}
	if len(q.requests) != 0 {
		t.Fatalf("expected no dispatch after encode failure, got %d requests", len(q.requests))
	}
}

func TestQuerySmartNilQuerier(t *testing.T) {
	var resp ownerResponse
	err := NewQuerierWrapper(nil).QuerySmart("contractA", ownerQuery{TokenID: "1"}, &resp)
	if !IsKind(err, KindInternal) {
		t.Fatalf("expected internal-kind error, got %v", err)
	}
}
