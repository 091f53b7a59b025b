// Package repository provides generic CRUD helpers and query-building
// shortcuts over the pgx/v5 driver.
//
// It is deliberately not an ORM: queries are plain SQL, writes are built
// from key-value records, and results are collected into caller-defined
// structs via pgx's row mappers. The package pairs with pkg/changeset for
// validated writes and pkg/sanitizer for shaping what is read back out.
//
// Reads use the Q builder and generics:
//
//	q := repository.Q("users").
//	    Columns("id", "email", "created_at").
//	    Where("tenant_id = ?", tenantID).
//	    OrderBy("created_at DESC").
//	    Limit(20)
//
//	users, err := repository.Select[User](ctx, pool, q)
//
// Writes take records, typically the output of a validated changeset:
//
//	rec, err := cs.Apply()
//	if err != nil { ... }
//	id, err := repository.InsertReturningID(ctx, pool, "users", rec)
//
// Update and Delete require a WHERE clause; the package refuses to build an
// unfiltered statement. All helpers accept any Querier, so they work the
// same against a pool, a single connection, or a transaction.
package repository
