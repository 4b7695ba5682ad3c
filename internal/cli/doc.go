// Package cli implements the interactive goal-tracking menu. It reads lines
// from an input source, drives a session controller, and renders results to
// an output sink.
package cli
