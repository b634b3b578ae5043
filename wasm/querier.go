package wasm

import (
	"encoding/json"

	"xdao.co/nftwire/querier"
)

// QuerierWrapper owns the serialize -> dispatch -> deserialize pipeline for
// smart queries. It borrows the capability for the duration of one query
// and never retains it across calls.
//
// All failures are surfaced to the caller unmodified in cause; this is a
// thin, fail-fast translation layer with no retry and no fallback.
type QuerierWrapper struct {
	q querier.Querier
}

func NewQuerierWrapper(q querier.Querier) QuerierWrapper {
	return QuerierWrapper{q: q}
}

// QuerySmart dispatches one synchronous smart query against contractAddr.
//
// msg is the contract's tagged query variant; out receives the typed
// response. Unknown response fields are ignored (the target schema may grow
// fields without breaking older callers); shape mismatches surface as
// Deserialize-kind errors.
func (w QuerierWrapper) QuerySmart(contractAddr string, msg any, out any) error {
	const op = "wasm.QuerySmart"
	if w.q == nil {
		return NewError(KindInternal, op, "no querying capability supplied")
	}

	payload, err := MarshalCanonical(msg)
	if err != nil {
		return err
	}
	request, err := MarshalCanonical(NewSmartQuery(contractAddr, payload))
	if err != nil {
		return err
	}

	resp, err := w.q.RawQuery(request)
	if err != nil {
		return WrapError(KindQuery, op, "smart query failed", err)
	}
	if err := json.Unmarshal(resp, out); err != nil {
		return WrapError(KindDeserialize, op, "response does not match expected schema", err)
	}
	return nil
}
