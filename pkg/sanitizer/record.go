package sanitizer

import (
	"reflect"
	"strings"
	"time"
	"unicode"
)

// Record is one logical entity as a key-value mapping. Values may themselves
// be records, slices of records, or tuples.
type Record map[string]any

// Tuple is a fixed-arity sequence of heterogeneous values. A two-element
// tuple sanitizes into a single-entry record keyed by its first element;
// any other arity is serialized through the configured tuple encoder.
type Tuple []any

// RelationNotLoaded stands in for a related record the persistence layer did
// not fetch. Deep sanitization drops the holding key instead of traversing
// into it.
type RelationNotLoaded struct {
	Relation string
}

// unloadedMarker lets persistence layers flag their own placeholder types
// without depending on this package's struct.
type unloadedMarker interface {
	RelationNotLoaded() bool
}

// IsRelationNotLoaded reports whether v is an unloaded-relation placeholder,
// either the RelationNotLoaded type itself (value or pointer) or any type
// implementing the RelationNotLoaded() bool marker method.
func IsRelationNotLoaded(v any) bool {
	switch m := v.(type) {
	case RelationNotLoaded, *RelationNotLoaded:
		return true
	case unloadedMarker:
		return m.RelationNotLoaded()
	default:
		return false
	}
}

// projectEntity flattens a struct value into a Record keyed by db tag, json
// tag, or the snake_cased field name. Unexported fields and "-" tags are
// skipped; anonymous embedded structs are promoted into the same record.
func projectEntity(rv reflect.Value) Record {
	rec := make(Record)
	rt := rv.Type()

	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		if field.Anonymous {
			fv := rv.Field(i)
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				for k, v := range projectEntity(fv) {
					if _, exists := rec[k]; !exists {
						rec[k] = v
					}
				}
				continue
			}
		}

		key, ok := fieldKey(field)
		if !ok {
			continue
		}
		rec[key] = rv.Field(i).Interface()
	}

	return rec
}

func fieldKey(field reflect.StructField) (string, bool) {
	for _, tag := range []string{"db", "json"} {
		raw, ok := field.Tag.Lookup(tag)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(raw, ",")
		if name == "-" {
			return "", false
		}
		if name != "" {
			return name, true
		}
	}
	return toSnakeCase(field.Name), true
}

// toSnakeCase converts an exported Go field name to the snake_case key the
// database layer uses, keeping acronym runs intact (UserID -> user_id).
func toSnakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// isLeafStruct reports whether a struct should be treated as a scalar rather
// than projected. Covers time.Time and any struct without projectable fields,
// which would otherwise collapse into an empty record.
func isLeafStruct(rv reflect.Value) bool {
	if _, ok := rv.Interface().(time.Time); ok {
		return true
	}
	rt := rv.Type()
	for i := range rt.NumField() {
		if rt.Field(i).IsExported() {
			return false
		}
	}
	return true
}
