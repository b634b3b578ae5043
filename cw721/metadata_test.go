package cw721

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenURIRoundTrip(t *testing.T) {
	metadata := []byte(`{"name":"Piece #7","image":"ipfs://bafy..."}`)

	uri := TokenURIFor(metadata)
	if !strings.HasPrefix(uri, "ipfs://") {
		t.Fatalf("expected ipfs:// URI, got %q", uri)
	}
	if _, err := ParseTokenURI(uri); err != nil {
		t.Fatalf("parse own URI: %v", err)
	}
	if err := VerifyMetadata(uri, metadata); err != nil {
		t.Fatalf("verify own bytes: %v", err)
	}
}

func TestVerifyMetadataMismatch(t *testing.T) {
	uri := TokenURIFor([]byte("original"))
	err := VerifyMetadata(uri, []byte("tampered"))
	if !errors.Is(err, ErrMetadataMismatch) {
		t.Fatalf("expected metadata mismatch, got %v", err)
	}
}

func TestParseTokenURIInvalid(t *testing.T) {
	cases := []string{
		"",
		"ipfs://",
		"https://example.com/meta.json",
		"ipfs://not-a-cid",
	}
	for _, uri := range cases {
		if _, err := ParseTokenURI(uri); !errors.Is(err, ErrBadTokenURI) {
			t.Errorf("%q: expected bad token URI error, got %v", uri, err)
		}
	}
}
