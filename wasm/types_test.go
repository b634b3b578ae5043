package wasm

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestBinaryRoundTrip(t *testing.T) {
	in := Binary(`{"owner_of":{"token_id":"1"}}`)
	enc, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Binary
	if err := json.Unmarshal(enc, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Fatalf("expected %q, got %q", in, out)
	}
}

func TestBinaryRejectsBadBase64(t *testing.T) {
	var out Binary
	if err := json.Unmarshal([]byte(`"not base64!!"`), &out); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
}

func TestNewExecuteFundsNeverNull(t *testing.T) {
	env := NewExecute("contractA", Binary("{}"))
	out, err := MarshalCanonical(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"funds":[]`) {
		t.Fatalf("expected empty funds list, got %s", out)
	}
	if strings.Contains(string(out), "null") {
		t.Fatalf("expected no nulls on the wire, got %s", out)
	}
}

func TestNewSmartQueryShape(t *testing.T) {
	req := NewSmartQuery("contractA", Binary(`{"all_tokens":{}}`))
	out, err := MarshalCanonical(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded QueryRequest
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Wasm == nil || decoded.Wasm.Smart == nil {
		t.Fatalf("expected wasm.smart variant, got %s", out)
	}
	if decoded.Wasm.Smart.ContractAddr != "contractA" {
		t.Fatalf("expected contractA, got %q", decoded.Wasm.Smart.ContractAddr)
	}
}
