// Package pg bootstraps the PostgreSQL layer the repository helpers run on:
// a pgx/v5 connection pool with startup retry, goose schema migrations, a
// health-check closure, and predicates for the driver errors applications
// actually branch on.
//
// The API surface is intentionally small. Config is populated from
// environment variables (see pkg/config), Connect turns it into a live
// *pgxpool.Pool, and Migrate brings the schema up to date before the
// application starts serving:
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    return err
//	}
//
// The error predicates (IsNotFound, IsDuplicateKey, IsForeignKeyViolation,
// IsTxClosed) let callers map driver failures to domain outcomes without
// importing pgconn everywhere.
package pg
