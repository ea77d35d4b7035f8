package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is one entity as the content API returns it. Shapes differ per
// entity and are owned by the server.
type Record map[string]any

// ID returns the record identifier, accepting both "id" and "_id".
func (r Record) ID() string {
	for _, key := range []string{"id", "_id"} {
		if v, ok := r[key]; ok && v != nil {
			return fmt.Sprint(v)
		}
	}
	return ""
}

// Lookup resolves a dotted key such as "author.name" through nested objects.
func (r Record) Lookup(key string) (any, bool) {
	var cur any = map[string]any(r)
	for _, part := range strings.Split(key, ".") {
		obj, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

// String renders the value at key, or "" when it is absent.
func (r Record) String(key string) string {
	v, ok := r.Lookup(key)
	if !ok {
		return ""
	}
	return FormatValue(v)
}

// FormatValue renders a decoded JSON value for display.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, FormatValue(item))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(t, ", ")
	default:
		return fmt.Sprint(t)
	}
}

func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Record:
		return t, true
	default:
		return nil, false
	}
}
