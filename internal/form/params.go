// Package form flattens nested request parameters into the bracketed
// key-path pairs accepted by form bodies and query strings.
package form

// Params is an insertion-ordered parameter mapping. The zero value is not
// usable; create one with NewParams.
type Params struct {
	keys   []string
	values map[string]interface{}
}

// NewParams creates an empty parameter mapping.
func NewParams() *Params {
	return &Params{
		values: make(map[string]interface{}),
	}
}

// Set stores value under key. Setting an existing key replaces the value but
// keeps its original position. A nil value is kept and skipped on encode.
func (p *Params) Set(key string, value interface{}) *Params {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}

	p.values[key] = value

	return p
}

// SetIfNotEmpty stores a string value only when it is non-empty.
func (p *Params) SetIfNotEmpty(key, value string) *Params {
	if value == "" {
		return p
	}

	return p.Set(key, value)
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}

	value, ok := p.values[key]

	return value, ok
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}

	keys := make([]string, len(p.keys))
	copy(keys, p.keys)

	return keys
}

// Len returns the number of keys, including those holding nil.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.keys)
}
