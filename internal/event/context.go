// Package event turns raw tail events into canonical error records:
// context extraction, noise filtering, and identity fingerprinting.
// Everything in here is a pure transform with no external I/O.
package event

import (
	"fmt"
	"time"

	"github.com/tailwatch/tailwatch/pkg/models"
)

// BuildContext derives the canonical ErrorContext from a raw tail event.
// Missing optional fields resolve to absent/empty; it never fails regardless
// of how partially populated the event is.
func BuildContext(ev models.TailEvent) models.ErrorContext {
	ec := models.ErrorContext{
		Timestamp:  time.UnixMilli(ev.EventTimestamp).UTC().Format(time.RFC3339),
		ScriptName: ev.ScriptName,
	}

	if ev.Event != nil && ev.Event.Request != nil {
		ec.URL = ev.Event.Request.URL
		ec.Method = ev.Event.Request.Method
	}

	for _, l := range ev.Logs {
		ec.Logs = append(ec.Logs, formatLog(l))
	}
	for _, x := range ev.Exceptions {
		ec.Exceptions = append(ec.Exceptions, formatException(x))
	}

	return ec
}

func formatLog(l models.LogEntry) string {
	ts := time.UnixMilli(l.Timestamp).UTC().Format(time.RFC3339)
	return fmt.Sprintf("%s [%s] %s", ts, l.Level, l.Message)
}

func formatException(x models.ExceptionEntry) string {
	return fmt.Sprintf("%s: %s", x.Name, x.Message)
}
