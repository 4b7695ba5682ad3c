// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON
// or text logging with configurable log levels. Output goes to a caller-supplied
// writer, normally stderr, so it never interleaves with the menu on stdout.
package logger
