// Package config loads environment variables into typed configuration
// structs and caches the result per type for the lifetime of the process.
//
// Load parses a struct annotated with `env` tags, after a one-time attempt
// to read a .env file from the working directory. Each configuration type is
// parsed exactly once; later calls for the same type return the cached copy,
// so packages can call Load independently without re-reading the
// environment.
//
// # Usage
//
//	type DemoConfig struct {
//	    Workers int    `env:"FSM_WORKERS" envDefault:"4"`
//	    Variant string `env:"FSM_VARIANT" envDefault:"locked"`
//	}
//
//	var cfg DemoConfig
//	config.MustLoad(&cfg)
package config
