package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tailwatch/tailwatch/internal/notify"
	"github.com/tailwatch/tailwatch/pkg/models"
)

func testContext() models.ErrorContext {
	return models.ErrorContext{
		Timestamp:  "2024-01-01T00:00:00Z",
		ScriptName: "api",
		URL:        "/orders/42",
		Method:     "POST",
		Exceptions: []string{"TypeError: x is undefined"},
	}
}

func TestBuildMessage_SectionOrder(t *testing.T) {
	msg := notify.BuildMessage(testContext(), "the summary", "Error Monitor", ":rotating_light:")

	assert.Equal(t, "Error Monitor", msg.Username)
	assert.Equal(t, ":rotating_light:", msg.IconEmoji)
	require.Len(t, msg.Blocks, 4)

	header := msg.Blocks[0]
	assert.Equal(t, "header", header.Type)
	require.NotNil(t, header.Text)
	assert.Equal(t, "plain_text", header.Text.Type)
	assert.Equal(t, "⚠️ Error in api", header.Text.Text)
	assert.True(t, header.Text.Emoji)

	analysis := msg.Blocks[1]
	assert.Equal(t, "section", analysis.Type)
	require.NotNil(t, analysis.Text)
	assert.Equal(t, "mrkdwn", analysis.Text.Type)
	assert.Equal(t, "*AI Analysis*\nthe summary", analysis.Text.Text)

	context := msg.Blocks[2]
	assert.Equal(t, "section", context.Type)
	require.Len(t, context.Fields, 3)
	assert.Equal(t, "*URL:*\n/orders/42", context.Fields[0].Text)
	assert.Equal(t, "*Method:*\nPOST", context.Fields[1].Text)
	assert.Equal(t, "*Time:*\n2024-01-01T00:00:00Z", context.Fields[2].Text)

	exceptions := msg.Blocks[3]
	assert.Equal(t, "section", exceptions.Type)
	require.NotNil(t, exceptions.Text)
	assert.Equal(t, "*Exception:*\n```TypeError: x is undefined```", exceptions.Text.Text)
}

func TestBuildMessage_PlaceholdersForAbsentFields(t *testing.T) {
	msg := notify.BuildMessage(models.ErrorContext{ScriptName: "cron-job"}, "s", "", "")

	context := msg.Blocks[2]
	assert.Equal(t, "*URL:*\nN/A", context.Fields[0].Text)
	assert.Equal(t, "*Method:*\nN/A", context.Fields[1].Text)

	exceptions := msg.Blocks[3]
	assert.Contains(t, exceptions.Text.Text, "(none captured)")
}

func TestBuildMessage_MultipleExceptions(t *testing.T) {
	ec := testContext()
	ec.Exceptions = []string{"TypeError: x is undefined", "RangeError: overflow"}

	msg := notify.BuildMessage(ec, "s", "", "")

	assert.Equal(t, "*Exception:*\n```TypeError: x is undefined\nRangeError: overflow```",
		msg.Blocks[3].Text.Text)
}
