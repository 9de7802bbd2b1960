package importer

import (
	"errors"
	"fmt"
)

// Kind classifies import errors.
type Kind string

const (
	// KindInvalidData marks unparsable or empty raw input.
	KindInvalidData Kind = "invalid_data"
	// KindInvalidFormat marks structured-looking input that is not well-formed JSON.
	KindInvalidFormat Kind = "invalid_format"
	// KindDecodingFailed marks well-formed JSON with missing required fields
	// or type mismatches.
	KindDecodingFailed Kind = "decoding_failed"
	// KindValidationFailed marks a pre-flight invariant violation
	// (only raised when ImportOptions.ValidateData is set).
	KindValidationFailed Kind = "validation_failed"
	// KindRepositoryError marks a store write failure during commit.
	KindRepositoryError Kind = "repository_error"
)

// ImportError is the discriminated error type of the import pipeline.
// The Kind tells callers which phase failed; Reason carries field-level context.
type ImportError struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// newError creates an ImportError with a formatted reason.
func newError(kind Kind, format string, args ...any) *ImportError {
	return &ImportError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// wrapError creates an ImportError wrapping an underlying cause.
func wrapError(kind Kind, err error, format string, args ...any) *ImportError {
	return &ImportError{Kind: kind, Reason: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of err, or "" if err is not an ImportError.
func KindOf(err error) Kind {
	var ie *ImportError
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}
