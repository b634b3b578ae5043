package cidutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/ipfs/go-cid"
)

func TestCIDv1RawSHA256Deterministic(t *testing.T) {
	a := CIDv1RawSHA256([]byte("metadata"))
	b := CIDv1RawSHA256([]byte("metadata"))
	if a == "" || a != b {
		t.Fatalf("expected stable non-empty CID, got %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "b") {
		t.Fatalf("expected base32 CIDv1, got %q", a)
	}
	if c := CIDv1RawSHA256([]byte("other")); c == a {
		t.Fatal("expected distinct CIDs for distinct bytes")
	}
}

func TestVerify(t *testing.T) {
	data := []byte("metadata")
	id, err := CIDv1RawSHA256CID(data)
	if err != nil {
		t.Fatalf("cid: %v", err)
	}
	if err := Verify(data, id); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := Verify([]byte("tampered"), id); !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	if err := Verify(data, cid.Undef); err == nil {
		t.Fatal("expected error for undefined cid")
	}
}
