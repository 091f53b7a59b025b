package sanitizer

import (
	"fmt"
	"maps"
	"reflect"
)

// Sanitizer applies a configured sanitization policy to records. The zero
// value is usable; New exists to attach application-level configuration such
// as the tuple encoder once instead of on every call.
type Sanitizer struct {
	base options
}

// New builds a Sanitizer with application-level defaults. Per-call options
// passed to Sanitize are layered on top without mutating the base.
func New(opts ...Option) *Sanitizer {
	s := &Sanitizer{base: defaultOptions()}
	for _, opt := range opts {
		opt(&s.base)
	}
	return s
}

// Sanitize returns a cleaned copy of input shaped by the configured options.
// The input is never mutated.
//
// Dispatch by shape: records and record slices run the stage pipeline,
// typed entities are projected to records first, two-element tuples become
// single-entry records, larger tuples go through the tuple encoder, and
// anything else is returned unchanged.
func (s *Sanitizer) Sanitize(input any, opts ...Option) (any, error) {
	o := s.base.clone()
	for _, opt := range opts {
		opt(&o)
	}
	return sanitizeValue(input, o)
}

// Sanitize is a convenience for one-off calls without a configured Sanitizer.
func Sanitize(input any, opts ...Option) (any, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return sanitizeValue(input, o)
}

func sanitizeValue(input any, o options) (any, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil
	case Record:
		return sanitizeRecord(v, o)
	case map[string]any:
		return sanitizeRecord(Record(v), o)
	case Tuple:
		return sanitizeTuple(v, o)
	case []Record:
		out := make([]Record, len(v))
		for i, rec := range v {
			res, err := sanitizeRecord(rec, o)
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return out, nil
	case []map[string]any:
		out := make([]Record, len(v))
		for i, rec := range v {
			res, err := sanitizeRecord(Record(rec), o)
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			res, err := sanitizeValue(elem, o)
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return out, nil
	case []byte, string:
		return input, nil
	}

	return sanitizeReflected(input, o)
}

// sanitizeReflected handles typed entities and container types not covered
// by the concrete dispatch: structs project to records, string-keyed maps
// convert to records, and slices/arrays map element-wise.
func sanitizeReflected(input any, o options) (any, error) {
	rv := reflect.ValueOf(input)

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return input, nil
		}
		if rv.Elem().Kind() == reflect.Struct && !isLeafStruct(rv.Elem()) {
			return sanitizeRecord(projectEntity(rv.Elem()), o)
		}
		return input, nil

	case reflect.Struct:
		if isLeafStruct(rv) {
			return input, nil
		}
		return sanitizeRecord(projectEntity(rv), o)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return input, nil
		}
		rec := make(Record, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			rec[iter.Key().String()] = iter.Value().Interface()
		}
		return sanitizeRecord(rec, o)

	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range rv.Len() {
			res, err := sanitizeValue(rv.Index(i).Interface(), o)
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return out, nil

	default:
		return input, nil
	}
}

// sanitizeTuple turns a pair into a one-entry record and serializes any
// other arity through the configured encoder.
func sanitizeTuple(t Tuple, o options) (any, error) {
	if len(t) == 2 {
		key, ok := t[0].(string)
		if !ok {
			key = fmt.Sprint(t[0])
		}
		val, err := sanitizeValue(t[1], o)
		if err != nil {
			return nil, err
		}
		return Record{key: val}, nil
	}

	if o.encode == nil {
		return nil, ErrEncoderNotConfigured
	}

	values := make([]any, len(t))
	copy(values, t)
	return o.encode(values)
}

// sanitizeRecord runs the stage pipeline over a working copy, then recurses
// into remaining values unless recursion is disabled.
func sanitizeRecord(rec Record, o options) (Record, error) {
	out := make(Record, len(rec))
	maps.Copy(out, rec)

	for _, name := range stageOrder {
		out = o.stage(name)(out)
	}

	if !o.deep {
		return out, nil
	}

	for key, val := range out {
		if IsRelationNotLoaded(val) {
			delete(out, key)
			continue
		}
		res, err := sanitizeValue(val, o)
		if err != nil {
			return nil, err
		}
		out[key] = res
	}

	return out, nil
}
