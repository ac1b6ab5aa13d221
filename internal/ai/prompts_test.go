package ai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tailwatch/tailwatch/internal/ai"
	"github.com/tailwatch/tailwatch/pkg/models"
)

func TestBuildAnalysisPrompt_EmbedsContext(t *testing.T) {
	msgs := ai.BuildAnalysisPrompt(testContext())

	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleSystem, msgs[0].Role)
	assert.Equal(t, models.RoleUser, msgs[1].Role)

	user := msgs[1].Content
	assert.Contains(t, user, `"api"`)
	assert.Contains(t, user, "/orders/42")
	assert.Contains(t, user, "POST")
	assert.Contains(t, user, "2024-01-01T00:00:00Z")
	assert.Contains(t, user, "TypeError: x is undefined")
	assert.Contains(t, user, "[error] lookup failed")
}

func TestBuildAnalysisPrompt_PlaceholdersForAbsentFields(t *testing.T) {
	msgs := ai.BuildAnalysisPrompt(models.ErrorContext{ScriptName: "cron-job"})

	user := msgs[1].Content
	assert.Contains(t, user, "URL: N/A")
	assert.Contains(t, user, "Method: N/A")
	assert.Contains(t, user, "(none captured)")
}

func TestBuildAnalysisPrompt_TruncatesLongLogs(t *testing.T) {
	ec := testContext()
	ec.Logs = []string{strings.Repeat("x", 100000)}

	msgs := ai.BuildAnalysisPrompt(ec)

	assert.Less(t, len(msgs[1].Content), 20000)
}

func TestBuildSummaryPrompt_WrapsAnalysis(t *testing.T) {
	msgs := ai.BuildSummaryPrompt("stage one said: check the null pointer")

	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[1].Content, "2-3 sentences")
	assert.Contains(t, msgs[1].Content, "stage one said: check the null pointer")
}
