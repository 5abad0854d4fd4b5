package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrStoreUnavailable indicates the litdb database path is missing
	// or is not a valid database. Fatal to the triggering operation;
	// callers surface it to the user and never retry.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrSpanMismatch indicates the annotator could not find an
	// identifier's literal text inside its occurrence bounds.
	ErrSpanMismatch = errors.New("identifier not found in span")

	// ErrUnsupportedFormat indicates a bibliography export was requested
	// for anything other than the supported target format.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrSubprocess indicates the litdb CLI exited non-zero or produced
	// output that could not be parsed.
	ErrSubprocess = errors.New("litdb subprocess failed")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
