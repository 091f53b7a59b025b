// Package changeset tracks and validates changes to a record before they are
// written to the database.
//
// A changeset is built by casting untrusted parameters against the current
// record data, keeping only permitted fields that actually differ, and is
// then refined by chainable validators that accumulate field errors instead
// of failing fast:
//
//	cs := changeset.Cast(current, params, []string{"email", "name", "age"}).
//	    ValidateRequired("email").
//	    ValidateFormat("email", emailRe).
//	    ValidateLength("name", 1, 120).
//	    ValidateNumber("age", 0, 150)
//
//	rec, err := cs.Apply()
//	if err != nil {
//	    var fieldErrs changeset.Errors
//	    errors.As(err, &fieldErrs) // field-by-field messages
//	}
//
// Validators other than ValidateRequired skip fields without an effective
// value, so partial updates only validate what they touch. The effective
// value of a field is its pending change when present, otherwise the value
// already in the data.
//
// Apply merges data and changes into a fresh record suitable for
// repository.Insert or repository.Update; the originals are never mutated.
package changeset
