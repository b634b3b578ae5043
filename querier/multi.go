package querier

import "errors"

// MultiQuerier provides deterministic, ordered fallback across multiple
// backends that observe the same ledger (e.g. several query endpoints).
//
// Fallback order is the slice order in Backends; callers MUST supply a
// fixed order. Only ErrUnavailable falls through: a not-found or rejection
// from a reachable backend is an authoritative ledger answer and is
// returned immediately.
type MultiQuerier struct {
	Backends []Querier
}

var _ Querier = MultiQuerier{}

func (m MultiQuerier) RawQuery(request []byte) ([]byte, error) {
	if len(m.Backends) == 0 {
		return nil, errors.New("querier: MultiQuerier has no backends")
	}
	for _, q := range m.Backends {
		resp, err := q.RawQuery(request)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, ErrUnavailable) {
			continue
		}
		return nil, err
	}
	return nil, ErrUnavailable
}
