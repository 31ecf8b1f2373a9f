package client

import "errors"

var (
	// ErrFetchFailure: the seed endpoint could not be reached or returned
	// something that is not a user listing.
	ErrFetchFailure = errors.New("fetch failure")
	// ErrPersistFailure: the record batch could not be serialized or written.
	ErrPersistFailure = errors.New("persist failure")
	// ErrParseFailure: stored data could not be decoded. Callers treat it as
	// "no data yet".
	ErrParseFailure = errors.New("parse failure")
)
