package terminal

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ListResponse is the envelope returned by list endpoints.
type ListResponse[T any] struct {
	Object  string `json:"object"   yaml:"object"`
	Data    []T    `json:"data"     yaml:"data"`
	HasMore bool   `json:"has_more" yaml:"has_more"`
	URL     string `json:"url"      yaml:"url"`
}

// Metadata is the set of caller-supplied key/value pairs attached to an object.
type Metadata map[string]string

// Expandable is a reference to another object that the API returns either as
// a bare id or as the full object. ID resolves to the identifier in both
// cases.
type Expandable[T any] struct {
	id  string
	obj *T
}

// ExpandableID creates a reference holding only an identifier.
func ExpandableID[T any](id string) Expandable[T] {
	return Expandable[T]{id: id}
}

// ExpandableObject creates a reference holding a full object.
func ExpandableObject[T any](id string, obj *T) Expandable[T] {
	return Expandable[T]{id: id, obj: obj}
}

// ID returns the referenced object's identifier.
func (e Expandable[T]) ID() string {
	return e.id
}

// Object returns the full object when the reference was expanded.
func (e Expandable[T]) Object() (*T, bool) {
	return e.obj, e.obj != nil
}

// IsExpanded reports whether the full object is present.
func (e Expandable[T]) IsExpanded() bool {
	return e.obj != nil
}

// IsZero reports whether the reference is empty.
func (e Expandable[T]) IsZero() bool {
	return e.id == "" && e.obj == nil
}

// MarshalJSON writes the full object when present, otherwise the id.
func (e Expandable[T]) MarshalJSON() ([]byte, error) {
	if e.obj != nil {
		return json.Marshal(e.obj)
	}

	if e.id == "" {
		return []byte("null"), nil
	}

	return json.Marshal(e.id)
}

// UnmarshalJSON accepts a string id, null, or an object carrying an "id" field.
func (e *Expandable[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*e = Expandable[T]{}

		return nil
	}

	if trimmed[0] == '"' {
		var id string

		err := json.Unmarshal(trimmed, &id)
		if err != nil {
			return fmt.Errorf("decoding reference id: %w", err)
		}

		*e = Expandable[T]{id: id}

		return nil
	}

	var obj T

	err := json.Unmarshal(trimmed, &obj)
	if err != nil {
		return fmt.Errorf("decoding expanded reference: %w", err)
	}

	var probe struct {
		ID string `json:"id"`
	}

	_ = json.Unmarshal(trimmed, &probe)

	*e = Expandable[T]{id: probe.ID, obj: &obj}

	return nil
}

// MarshalYAML renders the same shape as MarshalJSON.
func (e Expandable[T]) MarshalYAML() (interface{}, error) {
	if e.obj != nil {
		return e.obj, nil
	}

	return e.id, nil
}
