package rvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rvec/blobstore"
	"github.com/hupe1980/rvec/serialize"
)

var (
	// ErrNotFound is returned when a saved vector does not exist.
	ErrNotFound = errors.New("rvec: not found")

	// ErrCorrupt is returned when a saved vector cannot be decoded.
	ErrCorrupt = errors.New("rvec: corrupt encoding")
)

// NameError annotates a persistence error with the blob name.
//
// The original underlying error can be accessed via errors.Unwrap.
type NameError struct {
	Op    string
	Name  string
	cause error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.cause)
}

func (e *NameError) Unwrap() error { return e.cause }

func translateError(op, name string, err error) error {
	if err == nil {
		return nil
	}

	// Not found unification.
	if errors.Is(err, blobstore.ErrNotFound) {
		err = fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	// Decoding failures.
	if errors.Is(err, serialize.ErrInvalidFormat) || errors.Is(err, serialize.ErrCorrupt) ||
		errors.Is(err, serialize.ErrUnsupportedVersion) {
		err = fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return &NameError{Op: op, Name: name, cause: err}
}
