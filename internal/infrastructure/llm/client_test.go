package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/asglabs/mission-control/internal/core/domain"
)

func sseBody(events ...[2]string) string {
	var b strings.Builder
	for _, ev := range events {
		fmt.Fprintf(&b, "event: %s\ndata: %s\n\n", ev[0], ev[1])
	}
	return b.String()
}

func collect(t *testing.T, c *Client, messages []domain.ConversationMessage) (string, error) {
	t.Helper()
	stream, err := c.Stream(context.Background(), "system prompt", messages)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var out strings.Builder
	for {
		fragment, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return out.String(), nil
		}
		if err != nil {
			return out.String(), err
		}
		out.WriteString(fragment)
	}
}

func TestStreamDeliversTextDeltas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got == "" {
			t.Error("anthropic-version header missing")
		}

		var req struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
			Stream    bool   `json:"stream"`
			System    string `json:"system"`
			Messages  []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if !req.Stream {
			t.Error("stream flag not set")
		}
		if req.System != "system prompt" {
			t.Errorf("system = %q", req.System)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, sseBody(
			[2]string{"message_start", `{"type":"message_start"}`},
			[2]string{"content_block_delta", `{"delta":{"type":"text_delta","text":"Hello"}}`},
			[2]string{"content_block_delta", `{"delta":{"type":"text_delta","text":", world"}}`},
			[2]string{"message_stop", `{"type":"message_stop"}`},
		))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model", MaxTokens: 64})
	got, err := collect(t, c, []domain.ConversationMessage{{Role: domain.RoleUser, Content: "hi"}})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if got != "Hello, world" {
		t.Errorf("assembled = %q", got)
	}
}

func TestStreamSkipsNonTextEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, sseBody(
			[2]string{"content_block_start", `{"type":"content_block_start"}`},
			[2]string{"content_block_delta", `{"delta":{"type":"input_json_delta","partial_json":"{}"}}`},
			[2]string{"content_block_delta", `{"delta":{"type":"text_delta","text":"only this"}}`},
			[2]string{"ping", `{}`},
			[2]string{"message_stop", `{}`},
		))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	got, err := collect(t, c, nil)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if got != "only this" {
		t.Errorf("assembled = %q", got)
	}
}

func TestStreamNon200ReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":{"type":"rate_limit_error","message":"slow down"}}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.Stream(context.Background(), "", nil)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Type != "rate_limit_error" || apiErr.Message != "slow down" {
		t.Errorf("parsed error = %+v", apiErr)
	}
}

func TestStreamNon200UnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream proxy choked")
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.Stream(context.Background(), "", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Message != "upstream proxy choked" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestStreamErrorEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, sseBody(
			[2]string{"content_block_delta", `{"delta":{"type":"text_delta","text":"partial"}}`},
			[2]string{"error", `{"error":{"type":"overloaded_error","message":"overloaded"}}`},
		))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	got, err := collect(t, c, nil)
	if err == nil {
		t.Fatal("expected error from error event")
	}
	if !strings.Contains(err.Error(), "overloaded") {
		t.Errorf("err = %v", err)
	}
	if got != "partial" {
		t.Errorf("fragments before the error = %q", got)
	}
}

func TestStreamTruncatedBodyEndsWithEOF(t *testing.T) {
	// Upstream closes without message_stop: the scanner drains and the
	// stream ends. The caller sees a normal EOF; guarding against a missing
	// stop event is the relay's job, not the transport's.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, sseBody(
			[2]string{"content_block_delta", `{"delta":{"type":"text_delta","text":"cut "}}`},
		))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	got, err := collect(t, c, nil)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if got != "cut " {
		t.Errorf("assembled = %q", got)
	}
}
