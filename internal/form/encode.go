package form

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Pair is a single flattened key/value entry.
type Pair struct {
	Key   string
	Value string
}

// Pairs is an ordered sequence of flattened entries. Keys may repeat.
type Pairs []Pair

// Encode renders the pairs as an application/x-www-form-urlencoded string,
// preserving their order.
func (p Pairs) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var builder strings.Builder

	for i, pair := range p {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.Value))
	}

	return builder.String()
}

// Encode flattens params depth-first into key-path pairs. Nested mapping
// keys are composed as prefix[key], mappings and lists inside lists as
// prefix[i], and scalar list elements as prefix[] for every index. Nil
// entries are omitted.
//
// params must be a mapping; scalars and lists are only valid below the top
// level.
func Encode(params *Params, prefix string) Pairs {
	pairs := Pairs{}
	if params == nil {
		return pairs
	}

	return encodeParams(pairs, params, prefix)
}

func encodeParams(pairs Pairs, params *Params, prefix string) Pairs {
	for _, key := range params.keys {
		pairs = encodeValue(pairs, composeKey(prefix, key), params.values[key])
	}

	return pairs
}

func encodeValue(pairs Pairs, key string, value interface{}) Pairs {
	switch typed := value.(type) {
	case nil:
		return pairs
	case *Params:
		if typed == nil {
			return pairs
		}

		return encodeParams(pairs, typed, key)
	case map[string]string:
		for _, name := range sortedKeys(typed) {
			pairs = append(pairs, Pair{Key: composeKey(key, name), Value: typed[name]})
		}

		return pairs
	case map[string]interface{}:
		for _, name := range sortedKeys(typed) {
			pairs = encodeValue(pairs, composeKey(key, name), typed[name])
		}

		return pairs
	case []*Params:
		for i, item := range typed {
			pairs = encodeValue(pairs, indexKey(key, i), item)
		}

		return pairs
	case []interface{}:
		for i, item := range typed {
			pairs = encodeElement(pairs, key, i, item)
		}

		return pairs
	case []string:
		for _, item := range typed {
			pairs = append(pairs, Pair{Key: key + "[]", Value: item})
		}

		return pairs
	case []int:
		for _, item := range typed {
			pairs = append(pairs, Pair{Key: key + "[]", Value: strconv.Itoa(item)})
		}

		return pairs
	}

	if collection, ok := encodeCollection(pairs, key, value); ok {
		return collection
	}

	scalar, ok := stringify(value)
	if !ok {
		return pairs
	}

	return append(pairs, Pair{Key: key, Value: scalar})
}

// encodeCollection flattens list and mapping types that have no dedicated
// case above, such as []int64, []bool or []map[string]interface{}.
func encodeCollection(pairs Pairs, key string, value interface{}) (Pairs, bool) {
	reflected := reflect.ValueOf(value)

	switch reflected.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < reflected.Len(); i++ {
			pairs = encodeElement(pairs, key, i, reflected.Index(i).Interface())
		}

		return pairs, true
	case reflect.Map:
		entries := make(map[string]interface{}, reflected.Len())

		iter := reflected.MapRange()
		for iter.Next() {
			name, ok := stringify(iter.Key().Interface())
			if !ok {
				continue
			}

			entries[name] = iter.Value().Interface()
		}

		for _, name := range sortedKeys(entries) {
			pairs = encodeValue(pairs, composeKey(key, name), entries[name])
		}

		return pairs, true
	default:
		return pairs, false
	}
}

// encodeElement handles one element of a heterogeneous list.
func encodeElement(pairs Pairs, key string, index int, item interface{}) Pairs {
	switch item.(type) {
	case nil:
		return pairs
	case *Params, map[string]string, map[string]interface{}:
		return encodeValue(pairs, indexKey(key, index), item)
	}

	if kind := reflect.ValueOf(item).Kind(); kind == reflect.Map || kind == reflect.Slice || kind == reflect.Array {
		return encodeValue(pairs, indexKey(key, index), item)
	}

	scalar, ok := stringify(item)
	if !ok {
		return pairs
	}

	return append(pairs, Pair{Key: key + "[]", Value: scalar})
}

// stringify renders a scalar. The boolean result is false for nil pointers.
func stringify(value interface{}) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case *string:
		if typed == nil {
			return "", false
		}

		return *typed, true
	case bool:
		return strconv.FormatBool(typed), true
	case *bool:
		if typed == nil {
			return "", false
		}

		return strconv.FormatBool(*typed), true
	case int:
		return strconv.Itoa(typed), true
	case *int:
		if typed == nil {
			return "", false
		}

		return strconv.Itoa(*typed), true
	case int8:
		return strconv.FormatInt(int64(typed), 10), true
	case int16:
		return strconv.FormatInt(int64(typed), 10), true
	case int32:
		return strconv.FormatInt(int64(typed), 10), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case *int64:
		if typed == nil {
			return "", false
		}

		return strconv.FormatInt(*typed, 10), true
	case uint:
		return strconv.FormatUint(uint64(typed), 10), true
	case uint8:
		return strconv.FormatUint(uint64(typed), 10), true
	case uint16:
		return strconv.FormatUint(uint64(typed), 10), true
	case uint32:
		return strconv.FormatUint(uint64(typed), 10), true
	case uint64:
		return strconv.FormatUint(typed, 10), true
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case fmt.Stringer:
		return typed.String(), true
	default:
		return fmt.Sprint(typed), true
	}
}

func composeKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "[" + key + "]"
}

func indexKey(prefix string, index int) string {
	return prefix + "[" + strconv.Itoa(index) + "]"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
