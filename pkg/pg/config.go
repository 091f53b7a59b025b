package pg

import "time"

// Config controls pool sizing, startup retry, and migrations. Values come
// from environment variables so deployments tune them without code changes.
type Config struct {
	DSN          string        `env:"PG_DSN,required"`
	MaxOpenConns int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MinIdleConns int32         `env:"PG_MIN_IDLE_CONNS" envDefault:"2"`
	ConnIdleTime time.Duration `env:"PG_CONN_IDLE_TIME" envDefault:"10m"`
	ConnLifetime time.Duration `env:"PG_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`

	MigrationsDir   string `env:"PG_MIGRATIONS_DIR" envDefault:"migrations"`
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
}
