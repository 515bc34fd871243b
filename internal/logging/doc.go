// Package logging wraps log/slog with the handlers and attribute helpers
// shared across reelnote.
//
// Two output formats exist: a console handler that renders compact
// "ts LEVEL component: msg key=value" lines for interactive use, and a JSON
// handler for piping into log tooling. Component names travel as a dedicated
// attribute and are lifted into the line prefix by the console handler.
package logging
