package models

import "strings"

// ErrorContext is the canonical error record derived from a tail event.
// It is pure data: fully derived from the raw event with no external I/O,
// and immutable once built.
type ErrorContext struct {
	Timestamp  string   // ISO-8601, from the event's occurrence time
	ScriptName string   // originating service/script identifier
	URL        string   // request URL, may be empty
	Method     string   // request method, may be empty
	Logs       []string // formatted "timestamp [level] message" lines, insertion order
	Exceptions []string // formatted "name: message" lines, insertion order
}

// LogText returns the formatted log lines joined one per line.
// An empty collection yields an empty string.
func (c ErrorContext) LogText() string {
	return strings.Join(c.Logs, "\n")
}

// ExceptionText returns the formatted exception lines joined one per line.
func (c ErrorContext) ExceptionText() string {
	return strings.Join(c.Exceptions, "\n")
}
