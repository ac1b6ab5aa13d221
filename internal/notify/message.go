// Package notify renders error contexts into chat notifications and
// delivers them to a block-based webhook sink.
package notify

import (
	"fmt"

	"github.com/tailwatch/tailwatch/pkg/models"
)

// Block types and text object types of the block-based message schema.
const (
	blockHeader  = "header"
	blockSection = "section"

	textPlain  = "plain_text"
	textMrkdwn = "mrkdwn"
)

// Message is the webhook payload: identity plus an ordered list of blocks.
type Message struct {
	Username  string  `json:"username,omitempty"`
	IconEmoji string  `json:"icon_emoji,omitempty"`
	Blocks    []Block `json:"blocks"`
}

// Block is a single message block. Header blocks carry Text; section blocks
// carry either Text or Fields.
type Block struct {
	Type   string       `json:"type"`
	Text   *TextObject  `json:"text,omitempty"`
	Fields []TextObject `json:"fields,omitempty"`
}

// TextObject is a typed text fragment inside a block.
type TextObject struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

// BuildMessage renders an error context and its summary into the ordered
// notification sections: header, AI analysis, request context, raw
// exceptions. Pure function; absent fields degrade to placeholders.
func BuildMessage(ec models.ErrorContext, summary, username, iconEmoji string) Message {
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

	return Message{
		Username:  username,
		IconEmoji: iconEmoji,
		Blocks: []Block{
			{
				Type: blockHeader,
				Text: &TextObject{
					Type:  textPlain,
					Text:  fmt.Sprintf("⚠️ Error in %s", ec.ScriptName),
					Emoji: true,
				},
			},
			{
				Type: blockSection,
				Text: &TextObject{
					Type: textMrkdwn,
					Text: fmt.Sprintf("*AI Analysis*\n%s", summary),
				},
			},
			{
				Type: blockSection,
				Fields: []TextObject{
					{Type: textMrkdwn, Text: fmt.Sprintf("*URL:*\n%s", url)},
					{Type: textMrkdwn, Text: fmt.Sprintf("*Method:*\n%s", method)},
					{Type: textMrkdwn, Text: fmt.Sprintf("*Time:*\n%s", ec.Timestamp)},
				},
			},
			{
				Type: blockSection,
				Text: &TextObject{
					Type: textMrkdwn,
					Text: fmt.Sprintf("*Exception:*\n```%s```", exceptions),
				},
			},
		},
	}
}
