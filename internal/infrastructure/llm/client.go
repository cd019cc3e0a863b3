// Package llm is the client for the upstream text-generation service
// (Anthropic Messages API wire shape). Only streaming calls are issued; the
// relay forwards each text delta as it arrives.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/asglabs/mission-control/internal/core/domain"
	"github.com/asglabs/mission-control/internal/core/ports"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	messagesPath     = "/v1/messages"
	apiVersionHeader = "2023-06-01"
	maxErrorBody     = 4096
)

// APIError is returned when the upstream responds with a non-200 status.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("llm: HTTP %d: %s: %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("llm: HTTP %d: %s", e.StatusCode, e.Message)
}

// Config carries the fixed generation parameters. Every request uses the
// same model, output cap, and determinism setting.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Client issues streaming completion requests. It holds no per-request
// state; every call is independent.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient builds a Client. No overall HTTP timeout is set — streams are
// long-lived and cancellation comes from the request context.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{cfg: cfg, http: &http.Client{}}
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	System      string        `json:"system,omitempty"`
	Stream      bool          `json:"stream"`
	Messages    []wireMessage `json:"messages"`
}

// Stream opens one streaming completion. On a non-200 response the body is
// consumed for the error detail and an *APIError is returned; otherwise the
// caller owns the returned stream and must Close it.
func (c *Client) Stream(ctx context.Context, system string, messages []domain.ConversationMessage) (ports.TextStream, error) {
	req := wireRequest{
		Model:       c.cfg.Model,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
		System:      system,
		Stream:      true,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, wireMessage{Role: string(m.Role), Content: m.Content})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("llm: marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("llm: creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	httpReq.Header.Set("x-api-key", c.cfg.APIKey)
	httpReq.Header.Set("anthropic-version", apiVersionHeader)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("llm: sending request: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		defer httpResp.Body.Close()
		return nil, readAPIError(httpResp)
	}

	return &textStream{scanner: newSSEScanner(httpResp.Body), body: httpResp.Body}, nil
}

// textStream parses upstream SSE events into plain text fragments. Only
// text deltas are surfaced; all other event types are skipped.
type textStream struct {
	scanner *sseScanner
	body    io.ReadCloser
	done    bool
}

func (s *textStream) Next() (string, error) {
	if s.done {
		return "", io.EOF
	}

	for {
		if !s.scanner.Next() {
			s.done = true
			if err := s.scanner.Err(); err != nil {
				return "", fmt.Errorf("llm: reading SSE: %w", err)
			}
			return "", io.EOF
		}

		event := s.scanner.Event()
		switch event.Type {
		case "content_block_delta":
			var envelope struct {
				Delta struct {
					Type string `json:"type"`
					Text string `json:"text"`
				} `json:"delta"`
			}
			if err := json.Unmarshal([]byte(event.Data), &envelope); err != nil {
				// A malformed delta is dropped, not fatal.
				continue
			}
			if envelope.Delta.Type == "text_delta" && envelope.Delta.Text != "" {
				return envelope.Delta.Text, nil
			}
		case "message_stop":
			s.done = true
			return "", io.EOF
		case "error":
			var envelope struct {
				Error struct {
					Type    string `json:"type"`
					Message string `json:"message"`
				} `json:"error"`
			}
			s.done = true
			if json.Unmarshal([]byte(event.Data), &envelope) == nil && envelope.Error.Message != "" {
				return "", fmt.Errorf("llm: upstream error: %s: %s", envelope.Error.Type, envelope.Error.Message)
			}
			return "", fmt.Errorf("llm: upstream error")
		}
	}
}

func (s *textStream) Close() error {
	return s.body.Close()
}

// readAPIError parses the common provider error envelope
// {"error":{"type":"...","message":"..."}}.
func readAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var envelope struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.Error.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Type: envelope.Error.Type, Message: envelope.Error.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
}
