// Package sanitizer cleans and shapes records coming out of the persistence
// layer before they are logged, serialized or handed to API consumers.
//
// A record is a plain key-value mapping (possibly nested), and sanitization
// is a pure transformation: the input is never mutated, a fresh structure is
// always returned. The transform runs a fixed pipeline of named stages over
// every record it encounters:
//
//	remove -> mask -> filter -> recurse
//
//   - remove drops the listed fields unconditionally.
//   - mask overwrites the value of a field with a fixed replacement, but only
//     when the field already exists; masking never inserts keys.
//   - filter keeps exactly the fields listed in Only (when given, Except is
//     ignored), otherwise drops the fields listed in Except.
//   - recurse applies the whole pipeline to nested values, pruning relation
//     placeholders the persistence layer left unloaded. Disable it with
//     WithoutRecursion to sanitize a single level only.
//
// Sanitize accepts more than plain mappings. Slices of records map
// element-wise, typed entities (structs) are projected to records first,
// two-element tuples become single-entry records, and larger tuples are
// serialized through a caller-configured encoder. Scalars and unrecognized
// shapes pass through unchanged, so the function is total over arbitrary
// input.
//
// # Usage
//
//	s := sanitizer.New(sanitizer.WithTupleEncoder(sanitizer.JSONTupleEncoder))
//
//	out, err := s.Sanitize(user,
//	    sanitizer.WithMask("password", "[FILTERED]"),
//	    sanitizer.WithRemove("internal_notes"),
//	)
//
// For one-off calls the package-level Sanitize applies the same rules
// without constructing a Sanitizer first.
//
// # Custom stages
//
// Each built-in stage can be swapped for a caller-supplied implementation,
// which keeps the pipeline shape while changing one policy:
//
//	out, err := sanitizer.Sanitize(rec,
//	    sanitizer.WithStage(sanitizer.StageMask, myAuditingMask),
//	)
//
// # Error handling
//
// The only failure mode is configuration: serializing a tuple of arity other
// than two requires an encoder, and calling without one returns
// ErrEncoderNotConfigured. Every other input sanitizes successfully.
//
// The package holds no state; concurrent use of one Sanitizer from multiple
// goroutines is safe.
package sanitizer
