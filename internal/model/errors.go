package model

import (
	"errors"
	"fmt"

	oerrors "github.com/kamut-io/kamut/internal/errors"
)

var (
	// ErrMissingField is matched by every MissingFieldError.
	ErrMissingField = errors.New("missing required field")

	// ErrDeserialization is matched by every DeserializationError.
	ErrDeserialization = errors.New("deserialization error")

	// ErrEmptyDocument is returned for documents holding only comments or whitespace.
	ErrEmptyDocument = errors.New("empty document")
)

// MissingFieldError reports a document without its kind discriminator.
type MissingFieldError struct {
	Field  string
	Line   int
	Column int
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("'%s' field is required", e.Field)
}

// Is matches ErrMissingField and the shared validation sentinel.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField || target == oerrors.ErrValidation
}

// DeserializationError reports a structural mismatch between a document and
// the schema of its kind.
type DeserializationError struct {
	// Path is the dotted field path, empty for the document root.
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DeserializationError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// Unwrap returns the underlying decoder error, if any.
func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// Is matches ErrDeserialization and the shared validation sentinel.
func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization || target == oerrors.ErrValidation
}
