package rag

import "errors"

// Kind classifies a pipeline failure by the collaborator that caused it.
type Kind int

const (
	// KindUnknown is the zero value for errors that did not originate here.
	KindUnknown Kind = iota

	// KindValidation marks client input errors (missing file, empty query).
	KindValidation

	// KindEmbedding marks embedding provider failures.
	KindEmbedding

	// KindStore marks vector store failures.
	KindStore

	// KindCompletion marks completion provider failures.
	KindCompletion
)

// Error is a pipeline failure tagged with its origin. Message is what the
// caller may surface; for external failures it carries the underlying
// error message verbatim.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from an error chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func embeddingError(err error) *Error {
	return &Error{Kind: KindEmbedding, Message: err.Error(), Err: err}
}

func storeError(err error) *Error {
	return &Error{Kind: KindStore, Message: err.Error(), Err: err}
}

func completionError(err error) *Error {
	return &Error{Kind: KindCompletion, Message: err.Error(), Err: err}
}
