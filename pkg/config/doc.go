// Package config loads typed configuration structs from environment
// variables, with an optional .env file picked up once per process for local
// development.
//
// Configuration is declared as struct tags and loaded at bootstrap:
//
//	type AppConfig struct {
//	    Port  int    `env:"PORT" envDefault:"8080"`
//	    DBDSN string `env:"PG_DSN,required"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// MustLoad panics on failure, for wiring where a missing variable should
// stop the process immediately.
package config
