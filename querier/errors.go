package querier

import "errors"

var (
	// ErrNotFound: the target contract does not exist on the ledger.
	ErrNotFound = errors.New("querier: contract not found")
	// ErrRejected: the target contract exists and rejected the query.
	ErrRejected = errors.New("querier: query rejected by contract")
	// ErrMalformed: the request bytes are not a decodable query request.
	ErrMalformed = errors.New("querier: malformed query request")
	// ErrUnavailable: the backend could not reach the ledger at all.
	ErrUnavailable = errors.New("querier: backend unavailable")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
