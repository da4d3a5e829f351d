package datum

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidNumber indicates a non-finite double (NaN or ±Inf) reached
	// the writer. JSON has no representation for it.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrDataNotSupported indicates a Bytes value reached the writer.
	// Raw byte payloads have no JSON representation.
	ErrDataNotSupported = errors.New("data not supported in JSON")

	// ErrDepthExceeded indicates value nesting deeper than the configured
	// limit, on either the write or the parse side.
	ErrDepthExceeded = errors.New("nesting depth exceeded")

	// ErrTrailingData indicates input bytes remained after a complete
	// top-level value was parsed.
	ErrTrailingData = errors.New("trailing data after value")
)

// WriteError reports a failed serialization. It wraps a sentinel error with
// the path of the value that could not be written. Any output already emitted
// to the sink is a partial prefix and must be discarded by the caller.
type WriteError struct {
	Err  error  // Underlying sentinel error (ErrInvalidNumber, etc.)
	Path string // Path of the failing value, e.g. $.items[3].payload
}

func (e *WriteError) Error() string {
	if e.Path != "" && e.Path != "$" {
		return fmt.Sprintf("%s at %s", e.Err.Error(), e.Path)
	}
	return e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// newWriteError creates a WriteError for a failure at the given path.
func newWriteError(sentinel error, path string) error {
	return &WriteError{
		Err:  sentinel,
		Path: path,
	}
}
