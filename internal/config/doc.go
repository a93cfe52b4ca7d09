// Package config resolves runtime settings from environment variables and CLI
// flags with precedence: CLI flags > Environment variables > Defaults. There is
// no configuration file; the argument string arrives through the environment.
package config
