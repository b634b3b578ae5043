package querier

import (
	"errors"
	"testing"
)

func TestMultiQuerierFirstBackendWins(t *testing.T) {
	m := MultiQuerier{Backends: []Querier{
		Func(func(request []byte) ([]byte, error) { return []byte("first"), nil }),
		Func(func(request []byte) ([]byte, error) {
			t.Fatal("second backend should not be consulted")
			return nil, nil
		}),
	}}

	resp, err := m.RawQuery([]byte("req"))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if string(resp) != "first" {
		t.Fatalf("expected first backend response, got %q", resp)
	}
}

func TestMultiQuerierFallsThroughOnUnavailable(t *testing.T) {
	var calls int
	m := MultiQuerier{Backends: []Querier{
		Func(func(request []byte) ([]byte, error) {
			calls++
			return nil, ErrUnavailable
		}),
		Func(func(request []byte) ([]byte, error) {
			calls++
			return []byte("second"), nil
		}),
	}}

	resp, err := m.RawQuery([]byte("req"))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if string(resp) != "second" {
		t.Fatalf("expected fallback response, got %q", resp)
	}
	if calls != 2 {
		t.Fatalf("expected both backends consulted, got %d calls", calls)
	}
}

func TestMultiQuerierAuthoritativeErrorStopsFallback(t *testing.T) {
	m := MultiQuerier{Backends: []Querier{
		Func(func(request []byte) ([]byte, error) { return nil, ErrNotFound }),
		Func(func(request []byte) ([]byte, error) {
			t.Fatal("not-found is authoritative; no fallback")
			return nil, nil
		}),
	}}

	_, err := m.RawQuery([]byte("req"))
	if !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMultiQuerierAllUnavailable(t *testing.T) {
	unavailable := Func(func(request []byte) ([]byte, error) { return nil, ErrUnavailable })
	m := MultiQuerier{Backends: []Querier{unavailable, unavailable}}

	_, err := m.RawQuery([]byte("req"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestMultiQuerierNoBackends(t *testing.T) {
	_, err := MultiQuerier{}.RawQuery([]byte("req"))
	if err == nil {
		t.Fatal("expected error for empty backend list")
	}
}
