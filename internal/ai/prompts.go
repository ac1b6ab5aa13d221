package ai

import (
	"fmt"
	"unicode/utf8"

	"github.com/tailwatch/tailwatch/pkg/models"
)

// Prompt-size guards. Logs are the only unbounded input, so they get the
// tightest cap; stage-1 output is bounded by the model but capped anyway.
const (
	maxPromptLogBytes       = 8000
	maxPromptExceptionBytes = 4000
	maxAnalysisBytes        = 12000
)

const analysisSystemPrompt = "You are a senior engineer doing production incident triage. " +
	"Given an error report, explain the most likely root cause and suggest a concrete remediation."

const summarySystemPrompt = "You condense incident analyses for chat notifications. " +
	"Reply with only the distilled text, no preamble."

// BuildAnalysisPrompt builds the stage-1 prompt: a detailed causal-analysis
// request embedding the full error context.
func BuildAnalysisPrompt(ec models.ErrorContext) []models.ChatMessage {
	url := ec.URL
	if url == "" {
		url = "N/A"
	}
	method := ec.Method
	if method == "" {
		method = "N/A"
	}

	exceptions := ec.ExceptionText()
	if exceptions == "" {
		exceptions = "(none captured)"
	}
	logs := ec.LogText()
	if logs == "" {
		logs = "(none captured)"
	}

	user := fmt.Sprintf(`An error occurred in the service %q.

URL: %s
Method: %s
Time: %s

Exceptions:
%s

Logs:
%s

Analyze the likely root cause of this error and suggest how to fix it.`,
		ec.ScriptName,
		url,
		method,
		ec.Timestamp,
		truncateString(exceptions, maxPromptExceptionBytes),
		truncateString(logs, maxPromptLogBytes),
	)

	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: analysisSystemPrompt},
		{Role: models.RoleUser, Content: user},
	}
}

// BuildSummaryPrompt builds the stage-2 prompt: a tightly bounded
// condensation of the stage-1 analysis.
func BuildSummaryPrompt(analysis string) []models.ChatMessage {
	user := fmt.Sprintf(`Condense the following error analysis into 2-3 sentences covering the root cause and the suggested fix:

%s`, truncateString(analysis, maxAnalysisBytes))

	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: summarySystemPrompt},
		{Role: models.RoleUser, Content: user},
	}
}

// truncateString truncates s to maxBytes without splitting UTF-8 runes.
func truncateString(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}
