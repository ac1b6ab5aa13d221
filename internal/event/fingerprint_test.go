package event_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tailwatch/tailwatch/internal/event"
	"github.com/tailwatch/tailwatch/pkg/models"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

func baseContext() models.ErrorContext {
	return models.ErrorContext{
		Timestamp:  "2024-01-01T00:00:00Z",
		ScriptName: "api",
		URL:        "/orders/42",
		Method:     "POST",
		Logs:       []string{"2024-01-01T00:00:00Z [log] something"},
		Exceptions: []string{"TypeError: x is undefined"},
	}
}

func TestFingerprint_Format(t *testing.T) {
	fp, err := event.Fingerprint(baseContext())
	require.NoError(t, err)
	assert.Regexp(t, hexRe, fp)
}

func TestFingerprint_Deterministic(t *testing.T) {
	a, err := event.Fingerprint(baseContext())
	require.NoError(t, err)
	b, err := event.Fingerprint(baseContext())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFingerprint_IgnoresTimestampAndLogs(t *testing.T) {
	a, err := event.Fingerprint(baseContext())
	require.NoError(t, err)

	changed := baseContext()
	changed.Timestamp = "2025-06-30T12:34:56Z"
	changed.Logs = []string{"completely", "different", "noise"}
	b, err := event.Fingerprint(changed)
	require.NoError(t, err)

	assert.Equal(t, a, b, "timestamp and logs must not affect the fingerprint")
}

func TestFingerprint_SensitiveToIdentityFields(t *testing.T) {
	base, err := event.Fingerprint(baseContext())
	require.NoError(t, err)

	mutations := map[string]func(*models.ErrorContext){
		"script":     func(ec *models.ErrorContext) { ec.ScriptName = "worker" },
		"url":        func(ec *models.ErrorContext) { ec.URL = "/orders/43" },
		"method":     func(ec *models.ErrorContext) { ec.Method = "GET" },
		"exceptions": func(ec *models.ErrorContext) { ec.Exceptions = []string{"RangeError: overflow"} },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			ec := baseContext()
			mutate(&ec)
			fp, err := event.Fingerprint(ec)
			require.NoError(t, err)
			assert.NotEqual(t, base, fp)
		})
	}
}

func TestFingerprint_EmptyContext(t *testing.T) {
	fp, err := event.Fingerprint(models.ErrorContext{})
	require.NoError(t, err)
	assert.Regexp(t, hexRe, fp)
}
