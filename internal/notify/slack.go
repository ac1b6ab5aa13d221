package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrDeliveryFailed indicates the webhook rejected or never received the message.
var ErrDeliveryFailed = errors.New("webhook delivery failed")

// Sink delivers notification messages. Implementations are best-effort:
// callers log delivery errors but never retry or propagate them.
type Sink interface {
	Deliver(ctx context.Context, msg Message) error
}

// WebhookClient posts messages to an incoming-webhook URL.
type WebhookClient struct {
	webhookURL string
	client     *http.Client
}

// NewWebhookClient creates a new webhook sink.
func NewWebhookClient(webhookURL string, timeout time.Duration) *WebhookClient {
	return &WebhookClient{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
	}
}

func (c *WebhookClient) Deliver(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrDeliveryFailed, resp.StatusCode)
	}

	return nil
}

// Compile-time check that WebhookClient implements Sink.
var _ Sink = (*WebhookClient)(nil)
