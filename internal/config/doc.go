// Package config loads the TOML configuration file, fills in defaults,
// resolves the TMDB API key from the environment, and validates the result.
//
// The file is looked up at ~/.config/reelnote/config.toml, then at
// ./reelnote.toml; a missing file is not an error.
package config
