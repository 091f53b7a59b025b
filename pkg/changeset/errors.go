package changeset

import (
	"fmt"
	"strings"
)

// FieldError is a single validation failure attached to one field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the accumulated set of validation failures for a changeset.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "changeset: validation failed"
	}

	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "changeset: validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error is attached to field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Messages returns every error message attached to field.
func (e Errors) Messages(field string) []string {
	var msgs []string
	for _, fe := range e {
		if fe.Field == field {
			msgs = append(msgs, fe.Message)
		}
	}
	return msgs
}

// Fields returns the distinct fields with errors, in first-error order.
func (e Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(e))
	for _, fe := range e {
		if !seen[fe.Field] {
			seen[fe.Field] = true
			fields = append(fields, fe.Field)
		}
	}
	return fields
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}
