// Package config loads typed configuration structs from process
// environment variables, with an optional .env file for development.
//
// Structs declare their variables with `env` tags (see caarlos0/env);
// Load parses them, MustLoad panics on failure for configuration the
// process cannot run without.
package config
