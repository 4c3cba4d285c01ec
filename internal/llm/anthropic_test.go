package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func stubAnthropic(t *testing.T, handler http.HandlerFunc) *anthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &anthropicProvider{
		client: anthropic.NewClient(
			option.WithAPIKey("test-key"),
			option.WithBaseURL(server.URL),
		),
		model: "claude-haiku-4-5-20251001",
	}
}

func anthropicMessageBody(text, stopReason string) map[string]any {
	return map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stopReason,
		"usage": map[string]any{
			"input_tokens":  58,
			"output_tokens": 34,
		},
	}
}

func TestAnthropic_SolutionReply(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessageBody(linearSolutionJSON, "end_turn"))
	}

	p := stubAnthropic(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a math tutor.",
		Prompt:    "Solve for x: 2x + 3 = 11",
		MaxTokens: 512,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != linearSolutionJSON {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.InputTokens != 58 || resp.Usage.OutputTokens != 34 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	if resp.Truncated {
		t.Fatal("end_turn reply reported as truncated")
	}
}

func TestAnthropic_TruncatedReply(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessageBody(`{"answer":"4","steps":["1. Start wi`, "max_tokens"))
	}

	p := stubAnthropic(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		Prompt:    "Solve for x: 2x + 3 = 11",
		MaxTokens: 16,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Truncated {
		t.Fatal("max_tokens reply not reported as truncated")
	}
}

func TestAnthropic_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "rate_limit_error",
				"message": "Rate limit exceeded",
			},
		})
	}

	p := stubAnthropic(t, handler)
	_, err := p.Generate(context.Background(), Request{Prompt: "What is 5 + 3?", MaxTokens: 100})
	if err == nil {
		t.Fatal("expected error")
	}
	var limited *RateLimitError
	if !errors.As(err, &limited) {
		t.Fatalf("expected RateLimitError, got: %T (%v)", err, err)
	}
}

func TestAnthropic_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "api_error",
				"message": "Internal server error",
			},
		})
	}

	p := stubAnthropic(t, handler)
	_, err := p.Generate(context.Background(), Request{Prompt: "What is 5 + 3?", MaxTokens: 100})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("expected UnavailableError, got: %T (%v)", err, err)
	}
}

func TestClaudeModelAliases(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-haiku-4-5-20251001", "claude-haiku-4-5-20251001"}, // Exact IDs pass through.
	}
	for _, tt := range tests {
		if got := resolveModel(tt.name, claudeModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
