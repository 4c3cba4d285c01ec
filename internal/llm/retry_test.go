package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider(CannedReply{JSON: linearSolutionJSON})
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{Prompt: "Solve for x: 2x + 3 = 11"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != linearSolutionJSON {
		t.Fatalf("unexpected reply: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_OutageThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		CannedReply{Err: &UnavailableError{Err: errors.New("503")}},
		CannedReply{JSON: linearSolutionJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != linearSolutionJSON {
		t.Fatalf("unexpected reply: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		CannedReply{Err: &UnavailableError{Err: errors.New("down")}},
		CannedReply{Err: &UnavailableError{Err: errors.New("down")}},
		CannedReply{Err: &UnavailableError{Err: errors.New("down")}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_BadReplyRetriedExactlyOnce(t *testing.T) {
	badSteps := &BadReplyError{Raw: json.RawMessage(`{"answer":"4"}`), Err: errors.New("missing steps")}
	mock := NewMockProvider(
		CannedReply{Err: badSteps},
		CannedReply{Err: badSteps},
		CannedReply{JSON: linearSolutionJSON}, // Never reached.
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_BadReplyThenConformingReply(t *testing.T) {
	mock := NewMockProvider(
		CannedReply{Err: &BadReplyError{Err: errors.New("not JSON")}},
		CannedReply{JSON: linearSolutionJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != linearSolutionJSON {
		t.Fatalf("unexpected reply: %s", resp.Content)
	}
}

func TestRetry_CanceledContextStops(t *testing.T) {
	mock := NewMockProvider(
		CannedReply{Err: &UnavailableError{Err: errors.New("down")}},
		CannedReply{JSON: linearSolutionJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		CannedReply{Err: &RateLimitError{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		CannedReply{JSON: linearSolutionJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != linearSolutionJSON {
		t.Fatalf("unexpected reply: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
