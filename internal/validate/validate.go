// Package validate checks untyped entity payloads against declarative
// per-entity schemas. Failures are reported as stable error keys meant for
// the UI's localization layer, never as human-readable messages.
package validate

import (
	"strings"
	"time"
)

// Type is the declared type of a schema field.
type Type string

const (
	String   Type = "string"
	Number   Type = "number"
	Boolean  Type = "boolean"
	DateTime Type = "date-time"
)

// Field is one declared field of an entity schema. Fields are checked in
// declaration order and the first violation wins, so callers needing an
// exhaustive error list must re-validate incrementally.
type Field struct {
	Name     string
	Type     Type
	Required bool
	// ErrKey is surfaced when the Required rule is violated. Type and
	// format violations fall back to the schema's generic key.
	ErrKey string
}

// Schema holds the ordered field rules for one entity kind.
type Schema struct {
	// Entity is the entity kind name used in error reporting.
	Entity string
	// Fallback is the generic error key for violations that have no
	// specific key of their own.
	Fallback string
	Fields   []Field
}

// Result is the outcome of a validation pass. When Valid is true, Value
// holds the normalized payload: declared fields only, numbers coerced to
// float64. When Valid is false, ErrKey identifies the first violation.
type Result struct {
	Valid  bool
	Value  map[string]any
	ErrKey string
}

func ok(value map[string]any) Result { return Result{Valid: true, Value: value} }
func fail(key string) Result         { return Result{Valid: false, ErrKey: key} }

// ValidateInsert checks a full payload for insertion. Required fields must
// be present and non-empty; optional fields may be absent but must satisfy
// their type and format rules when present. Undeclared fields are dropped
// from the normalized value.
func (s *Schema) ValidateInsert(payload map[string]any) Result {
	return s.validate(payload, false)
}

// ValidateUpdate checks a partial payload. Any subset of declared fields is
// acceptable, but fields that are present must satisfy the same per-field
// rules as on insert, including non-emptiness of required fields.
func (s *Schema) ValidateUpdate(payload map[string]any) Result {
	return s.validate(payload, true)
}

func (s *Schema) validate(payload map[string]any, partial bool) Result {
	value := make(map[string]any, len(payload))
	for _, f := range s.Fields {
		v, present := payload[f.Name]
		if !present {
			if f.Required && !partial {
				return fail(f.ErrKey)
			}
			continue
		}
		norm, typeOK := normalize(f.Type, v)
		if !typeOK {
			return fail(s.Fallback)
		}
		if f.Required && isEmpty(norm) {
			return fail(f.ErrKey)
		}
		value[f.Name] = norm
	}
	return ok(value)
}

// normalize type-checks a raw value and returns its canonical form.
// Numbers become float64 regardless of the caller's Go type so that a
// payload validates to the same value before and after a JSON round trip.
func normalize(t Type, v any) (any, bool) {
	switch t {
	case String:
		s, ok := v.(string)
		return s, ok
	case Boolean:
		b, ok := v.(bool)
		return b, ok
	case Number:
		switch n := v.(type) {
		case float64:
			return n, true
		case float32:
			return float64(n), true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		default:
			return nil, false
		}
	case DateTime:
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			return nil, false
		}
		return s, true
	}
	return nil, false
}

func isEmpty(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
