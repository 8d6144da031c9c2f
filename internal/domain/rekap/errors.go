package rekap

import "errors"

var (
	// ErrUpstreamFetch wraps a reference-data retrieval failure. The report
	// is never retried here; retry policy belongs to the caller.
	ErrUpstreamFetch = errors.New("failed to fetch reference data")
)
