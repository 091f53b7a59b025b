// Package repokit is a thin convenience layer over PostgreSQL access with
// pgx/v5. It is a set of small, independent packages rather than a
// framework:
//
//   - pkg/sanitizer cleans and shapes records before they leave the data
//     layer: masking, removal, key filtering, and deep recursion over
//     nested structures, with unloaded relations pruned.
//   - pkg/changeset casts untrusted parameters against current data and
//     validates the resulting changes with chainable, error-accumulating
//     rules.
//   - pkg/repository offers generic CRUD helpers and query-building
//     shortcuts on top of plain SQL and pgx row mapping.
//   - pkg/pg bootstraps the connection pool, migrations, and health checks.
//   - pkg/config and pkg/logger cover environment configuration and
//     structured logging.
//
// A typical write path casts params into a changeset, applies it, persists
// the record, and sanitizes what is sent back:
//
//	cs := changeset.Cast(current, params, []string{"email", "name"}).
//	    ValidateRequired("email").
//	    ValidateFormat("email", emailRe)
//
//	rec, err := cs.Apply()
//	if err != nil {
//	    return err
//	}
//	if _, err := repository.Update(ctx, pool, "users", rec, "id = ?", id); err != nil {
//	    return err
//	}
//
//	out, err := sanitizer.Sanitize(rec, sanitizer.WithRemove("password_hash"))
//
// The packages compose through the shared Record type defined in
// pkg/sanitizer but carry no other coupling; each one works standalone.
package repokit
