// Package workersai implements models.AIProvider against the Cloudflare
// Workers AI REST API.
package workersai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/tailwatch/tailwatch/internal/config"
	"github.com/tailwatch/tailwatch/pkg/models"
)

// Sentinel errors for Workers AI client failures.
var (
	ErrUnreachable = errors.New("workers ai unreachable")
	ErrRunError    = errors.New("workers ai run error")
	ErrTimeout     = errors.New("workers ai timeout")
)

// Provider implements models.AIProvider using Workers AI.
type Provider struct {
	baseURL   string
	accountID string
	apiToken  string
	client    *http.Client
}

// NewProvider creates a new Workers AI provider.
func NewProvider(cfg config.WorkersAIConfig, timeout time.Duration) *Provider {
	return &Provider{
		baseURL:   cfg.BaseURL,
		accountID: cfg.AccountID,
		apiToken:  cfg.APIToken,
		client:    &http.Client{Timeout: timeout},
	}
}

func (p *Provider) Name() string { return "workersai" }

func (p *Provider) Complete(ctx context.Context, model string, messages []models.ChatMessage) (string, error) {
	body, err := json.Marshal(runRequest{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("encoding run request: %w", err)
	}

	// Model identifiers contain literal slashes (e.g. @cf/meta/llama-3.1-8b-instruct).
	u := fmt.Sprintf("%s/accounts/%s/ai/run/%s", p.baseURL, p.accountID, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", classifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrRunError, resp.StatusCode)
	}

	var runResp runResponse
	if err := json.NewDecoder(resp.Body).Decode(&runResp); err != nil {
		return "", fmt.Errorf("decoding run response: %w", err)
	}
	if !runResp.Success {
		if len(runResp.Errors) > 0 {
			return "", fmt.Errorf("%w: %s", ErrRunError, runResp.Errors[0].Message)
		}
		return "", ErrRunError
	}

	return runResp.Result.Response, nil
}

// classifyError maps transport-level errors to sentinel errors.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

// --- Workers AI request/response types ---

type runRequest struct {
	Messages []models.ChatMessage `json:"messages"`
}

type runResponse struct {
	Result  runResult  `json:"result"`
	Success bool       `json:"success"`
	Errors  []runError `json:"errors"`
}

type runResult struct {
	Response string `json:"response"`
}

type runError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Compile-time check that Provider implements AIProvider.
var _ models.AIProvider = (*Provider)(nil)
