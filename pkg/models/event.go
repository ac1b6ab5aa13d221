// Package models contains shared data models used across the TailWatch codebase.
package models

// Outcome tags reported by the upstream event source. Only exceptional
// outcomes are processed by the pipeline.
const (
	OutcomeOK            = "ok"
	OutcomeException     = "exception"
	OutcomeExceededCPU   = "exceededCpu"
	OutcomeCanceled      = "canceled"
	OutcomeUnknown       = "unknown"
)

// TailEvent is a single inbound execution-outcome record as delivered by the
// event source. Every field except Outcome and ScriptName is optional;
// consumers must tolerate absent or partially populated subfields.
type TailEvent struct {
	Outcome        string           `json:"outcome"`
	ScriptName     string           `json:"scriptName"`
	EventTimestamp int64            `json:"eventTimestamp"` // epoch milliseconds
	Event          *TailEventDetail `json:"event,omitempty"`
	Logs           []LogEntry       `json:"logs,omitempty"`
	Exceptions     []ExceptionEntry `json:"exceptions,omitempty"`
}

// TailEventDetail wraps the optional trigger information of a tail event.
type TailEventDetail struct {
	Request *RequestInfo `json:"request,omitempty"`
}

// RequestInfo describes the HTTP request that triggered the execution, when
// there was one.
type RequestInfo struct {
	URL    string `json:"url,omitempty"`
	Method string `json:"method,omitempty"`
}

// LogEntry is a single console log line captured during the execution.
type LogEntry struct {
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// ExceptionEntry is a single uncaught exception captured during the execution.
type ExceptionEntry struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// IsExceptional reports whether the event's outcome should be monitored.
func (e TailEvent) IsExceptional() bool {
	return e.Outcome == OutcomeException
}
