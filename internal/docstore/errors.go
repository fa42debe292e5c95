package docstore

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned by Insert when a document with the same
	// id already exists in the collection.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned when an id does not resolve to a document.
	ErrNotFound = errors.New("document not found")
)

// ValidationError reports a payload rejected by an entity schema. Key is a
// stable, translatable identifier; the UI maps it to a localized message.
type ValidationError struct {
	Entity string
	Key    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: validation failed: %s", e.Entity, e.Key)
}

// ErrKey extracts the translatable error key from a write failure, or ""
// when err is not a validation error.
func ErrKey(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Key
	}
	return ""
}
