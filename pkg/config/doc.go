// Package config loads configuration structs from environment variables
// using `env` field tags, with optional .env file support for local
// development.
//
// It is a thin wrapper over github.com/caarlos0/env and
// github.com/joho/godotenv:
//
//	var cfg sanitizer.Config
//	config.MustLoad(&cfg)
//
// Load returns an error for an unparseable environment; MustLoad panics,
// which is appropriate for configuration the process cannot run without.
package config
