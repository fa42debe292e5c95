// Package docstore implements the local-first document layer: one
// schema-validated, indexed, reactively observable collection per entity
// kind, persisted as JSON documents in SQLite.
package docstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Document is an untyped entity payload keyed by field name. Values follow
// JSON conventions: strings, float64 numbers, bools.
type Document map[string]any

// ID returns the document's id field, or "" when absent.
func (d Document) ID() string {
	s, _ := d["id"].(string)
	return s
}

// String returns the named field as a string, or "" when absent or not a
// string.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Clone returns a shallow copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// NewID returns a fresh opaque document identifier.
func NewID() string {
	return uuid.NewString()
}

// TimestampLayout is the canonical wall-clock form stored in created_at and
// updated_at. Fixed-width millisecond precision keeps the strings
// lexically order-comparable, which RFC3339Nano's trimmed zeros do not.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats t in the canonical UTC form.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Decode converts a document into a typed model value via its JSON form.
func Decode[T any](doc Document) (T, error) {
	var out T
	data, err := json.Marshal(doc)
	if err != nil {
		return out, fmt.Errorf("marshal document: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

// Encode converts a typed model value into a document via its JSON form.
func Encode(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal value: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return doc, nil
}
