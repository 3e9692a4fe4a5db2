// Package config loads hublfix configuration.
//
// Configuration is layered with koanf: the embedded defaults.toml, the user
// file in the XDG config directory, a project .hublfix.toml (or hublfix.toml),
// HUBLFIX_ environment variables and finally command-line overrides. The
// merged result is decoded into Config, validated, and compiled into the
// scanner and substituter used by the commands.
package config
