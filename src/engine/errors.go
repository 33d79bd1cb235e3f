package engine

import (
	"errors"
	"fmt"

	"tallydb/src/indexes"
	"tallydb/src/schema"
)

var (
	// ErrStoreClosed is returned when an operation reaches a store that was
	// never opened or has been closed.
	ErrStoreClosed = errors.New("store is closed")

	// ErrUnknownCollection is returned for a kind that was not declared when
	// the store was opened.
	ErrUnknownCollection = errors.New("unknown collection")
)

// NotFoundError reports that the target of an update or delete does not
// exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s document %s not found", e.Kind, e.ID)
}

// DuplicateIDError reports an attempt to create a document under an
// identifier that is already taken.
type DuplicateIDError struct {
	Kind string
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s document %s already exists", e.Kind, e.ID)
}

// IsNotFound reports whether err is a missing-document failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsUniqueViolation reports whether err is a unique-index rejection.
func IsUniqueViolation(err error) bool {
	var ue *indexes.UniqueError
	return errors.As(err, &ue)
}

// IsSchemaViolation reports whether err carries field-level validation
// failures.
func IsSchemaViolation(err error) bool {
	var ve *schema.ValidationError
	return errors.As(err, &ve)
}
