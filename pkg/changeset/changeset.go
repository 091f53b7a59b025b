package changeset

import (
	"maps"
	"reflect"
	"strings"

	"github.com/dmitrymomot/repokit/pkg/sanitizer"
)

// Changeset carries the current record data, the pending changes cast from
// parameters, and any validation errors accumulated so far.
type Changeset struct {
	data    sanitizer.Record
	changes sanitizer.Record
	errs    Errors
}

// Cast builds a changeset from untrusted params, keeping only permitted
// fields whose values differ from the current data. Neither input is
// mutated.
func Cast(data, params sanitizer.Record, permitted []string) *Changeset {
	cs := &Changeset{
		data:    maps.Clone(data),
		changes: make(sanitizer.Record),
	}
	if cs.data == nil {
		cs.data = make(sanitizer.Record)
	}

	for _, field := range permitted {
		val, ok := params[field]
		if !ok {
			continue
		}
		if current, exists := cs.data[field]; exists && reflect.DeepEqual(current, val) {
			continue
		}
		cs.changes[field] = val
	}

	return cs
}

// Change builds a changeset over fresh data with every param taken as a
// change, for inserts where no current record exists.
func Change(params sanitizer.Record) *Changeset {
	return Cast(nil, params, keys(params))
}

func keys(rec sanitizer.Record) []string {
	out := make([]string, 0, len(rec))
	for k := range rec {
		out = append(out, k)
	}
	return out
}

// Valid reports whether no validator has recorded an error.
func (c *Changeset) Valid() bool {
	return c.errs.IsEmpty()
}

// Errors returns the accumulated validation errors.
func (c *Changeset) Errors() Errors {
	return c.errs
}

// AddError attaches a custom validation error to field.
func (c *Changeset) AddError(field, message string) *Changeset {
	c.errs = append(c.errs, FieldError{Field: field, Message: message})
	return c
}

// PutChange sets a change regardless of cast permissions, for values the
// application computes itself (hashed passwords, slugs, timestamps).
func (c *Changeset) PutChange(field string, value any) *Changeset {
	c.changes[field] = value
	return c
}

// DeleteChange discards a pending change.
func (c *Changeset) DeleteChange(field string) *Changeset {
	delete(c.changes, field)
	return c
}

// GetChange returns the pending change for field, if any.
func (c *Changeset) GetChange(field string) (any, bool) {
	v, ok := c.changes[field]
	return v, ok
}

// GetField returns the effective value of field: the pending change when
// present, otherwise the value in the underlying data.
func (c *Changeset) GetField(field string) (any, bool) {
	if v, ok := c.changes[field]; ok {
		return v, true
	}
	v, ok := c.data[field]
	return v, ok
}

// Changes returns a copy of the pending changes.
func (c *Changeset) Changes() sanitizer.Record {
	return maps.Clone(c.changes)
}

// Apply merges data and changes into a fresh record. When any validator has
// failed, it returns the accumulated Errors instead.
func (c *Changeset) Apply() (sanitizer.Record, error) {
	if !c.Valid() {
		return nil, c.errs
	}

	out := make(sanitizer.Record, len(c.data)+len(c.changes))
	maps.Copy(out, c.data)
	maps.Copy(out, c.changes)
	return out, nil
}

// isBlank treats absent values, nil, and whitespace-only strings as missing
// for the purposes of ValidateRequired.
func isBlank(v any, ok bool) bool {
	if !ok || v == nil {
		return true
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) == ""
	}
	return false
}
