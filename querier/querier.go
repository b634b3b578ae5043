// Package querier defines the synchronous querying capability supplied by
// the hosting execution environment.
package querier

// Querier resolves one encoded query request against the ledger's state.
//
// Contract:
// - RawQuery is synchronous; the caller blocks until the ledger answers.
// - The request is a canonical wasm.QueryRequest encoding.
// - Implementations MUST NOT retain the request or response slices.
// - Failures are reported via the package sentinel errors where the cause
//   is known; anything else is surfaced as-is.
type Querier interface {
	RawQuery(request []byte) ([]byte, error)
}

// Func adapts a plain function to the Querier interface.
type Func func(request []byte) ([]byte, error)

func (f Func) RawQuery(request []byte) ([]byte, error) { return f(request) }
