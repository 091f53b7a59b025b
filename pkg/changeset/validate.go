package changeset

import (
	"fmt"
	"reflect"
	"regexp"
)

// ValidateRequired records an error for every field without an effective
// value. Nil and whitespace-only strings count as missing.
func (c *Changeset) ValidateRequired(fields ...string) *Changeset {
	for _, field := range fields {
		v, ok := c.GetField(field)
		if isBlank(v, ok) {
			c.AddError(field, "can't be blank")
		}
	}
	return c
}

// ValidateLength constrains the length of a string, slice, or map field to
// [min, max]. A negative max disables the upper bound. Fields without an
// effective value are skipped.
func (c *Changeset) ValidateLength(field string, min, max int) *Changeset {
	v, ok := c.GetField(field)
	if !ok || v == nil {
		return c
	}

	length, ok := lengthOf(v)
	if !ok {
		return c.AddError(field, "has no length")
	}

	if length < min {
		return c.AddError(field, fmt.Sprintf("should be at least %d item(s)", min))
	}
	if max >= 0 && length > max {
		return c.AddError(field, fmt.Sprintf("should be at most %d item(s)", max))
	}
	return c
}

func lengthOf(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return len([]rune(s)), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// ValidateFormat records an error when a string field does not match re.
// Non-string values fail the format check outright.
func (c *Changeset) ValidateFormat(field string, re *regexp.Regexp) *Changeset {
	v, ok := c.GetField(field)
	if !ok || v == nil {
		return c
	}

	s, isStr := v.(string)
	if !isStr || !re.MatchString(s) {
		c.AddError(field, "has invalid format")
	}
	return c
}

// ValidateInclusion records an error unless the field's effective value
// equals one of allowed.
func (c *Changeset) ValidateInclusion(field string, allowed ...any) *Changeset {
	v, ok := c.GetField(field)
	if !ok || v == nil {
		return c
	}

	for _, a := range allowed {
		if reflect.DeepEqual(v, a) {
			return c
		}
	}
	return c.AddError(field, "is invalid")
}

// ValidateExclusion records an error when the field's effective value equals
// one of forbidden.
func (c *Changeset) ValidateExclusion(field string, forbidden ...any) *Changeset {
	v, ok := c.GetField(field)
	if !ok || v == nil {
		return c
	}

	for _, f := range forbidden {
		if reflect.DeepEqual(v, f) {
			return c.AddError(field, "is reserved")
		}
	}
	return c
}

// ValidateNumber constrains a numeric field to [min, max] inclusive. Use
// math.Inf bounds to leave one side open. Non-numeric values fail the check.
func (c *Changeset) ValidateNumber(field string, min, max float64) *Changeset {
	v, ok := c.GetField(field)
	if !ok || v == nil {
		return c
	}

	n, ok := toFloat(v)
	if !ok {
		return c.AddError(field, "is not a number")
	}

	if n < min {
		return c.AddError(field, fmt.Sprintf("must be greater than or equal to %v", min))
	}
	if n > max {
		return c.AddError(field, fmt.Sprintf("must be less than or equal to %v", max))
	}
	return c
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// ValidateAcceptance requires the field's effective value to be boolean true,
// for terms-of-service style checkboxes.
func (c *Changeset) ValidateAcceptance(field string) *Changeset {
	v, _ := c.GetField(field)
	if b, ok := v.(bool); !ok || !b {
		c.AddError(field, "must be accepted")
	}
	return c
}

// ValidateChange runs a custom check against the field's effective value.
// The returned error's message is attached to the field. Fields without an
// effective value are skipped.
func (c *Changeset) ValidateChange(field string, fn func(value any) error) *Changeset {
	v, ok := c.GetField(field)
	if !ok {
		return c
	}

	if err := fn(v); err != nil {
		c.AddError(field, err.Error())
	}
	return c
}
