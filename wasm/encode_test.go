package wasm

import (
	"bytes"
	"errors"
	"testing"
)

func TestMarshalCanonicalDeterministic(t *testing.T) {
	env := NewExecute("contractA", Binary(`{"transfer_nft":{}}`))

	first, err := MarshalCanonical(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := MarshalCanonical(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected identical bytes, got %q vs %q", first, second)
	}
}

func TestMarshalCanonicalNoHTMLEscape(t *testing.T) {
	type doc struct {
		URI string `json:"uri"`
	}
	out, err := MarshalCanonical(doc{URI: "a<b>&c"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"uri":"a<b>&c"}`; string(out) != want {
		t.Fatalf("expected %s, got %s", want, out)
	}
}

func TestMarshalCanonicalNoTrailingNewline(t *testing.T) {
	out, err := MarshalCanonical(Coin{Denom: "uxd", Amount: "1"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if bytes.HasSuffix(out, []byte("\n")) {
		t.Fatalf("expected no trailing newline, got %q", out)
	}
}

func TestMarshalCanonicalRejectsMaps(t *testing.T) {
	cases := []struct {
		name string
		in   any
	}{
		{"top-level map", map[string]string{"a": "b"}},
		{"nested map", struct {
			M map[string]int `json:"m"`
		}{M: map[string]int{"a": 1}}},
		{"map behind pointer", &map[string]string{"a": "b"}},
		{"map behind interface", struct {
			V any `json:"v"`
		}{V: map[string]int{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MarshalCanonical(tc.in)
			if err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
			var werr *Error
			if !errors.As(err, &werr) || werr.Kind != KindSerialize {
				t.Fatalf("expected serialize-kind error, got %v", err)
			}
		})
	}
}

func TestMarshalCanonicalUnencodable(t *testing.T) {
	_, err := MarshalCanonical(make(chan int))
	if !IsKind(err, KindSerialize) {
		t.Fatalf("expected serialize-kind error, got %v", err)
	}
}
