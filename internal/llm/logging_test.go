package llm

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging_RecordsRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	mock := NewMockProvider(
		CannedReply{JSON: linearSolutionJSON, Usage: Usage{InputTokens: 12, OutputTokens: 7}},
	)
	p := WithLogging(mock, zap.New(core))

	req := Request{Prompt: "Solve for x: 2x + 3 = 11", Purpose: "solution-gen"}
	if _, err := p.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["purpose"] != "solution-gen" {
		t.Errorf("purpose = %v, want solution-gen", fields["purpose"])
	}
	if fields["input_tokens"] != int64(12) {
		t.Errorf("input_tokens = %v, want 12", fields["input_tokens"])
	}
}

func TestLogging_EmptyPurposeIsUnspecified(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := WithLogging(NewMockProvider(CannedReply{JSON: `{}`}), zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := logs.All()[0].ContextMap()["purpose"]; got != "unspecified" {
		t.Errorf("purpose = %v, want unspecified", got)
	}
}

func TestLogging_WarnsOnError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	mock := NewMockProvider(
		CannedReply{Err: &UnavailableError{Err: errors.New("down")}},
	)
	p := WithLogging(mock, zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Level != zap.WarnLevel {
		t.Errorf("level = %v, want warn", entries[0].Level)
	}
}

func TestLogging_NilLoggerIsSafe(t *testing.T) {
	p := WithLogging(NewMockProvider(CannedReply{JSON: `{}`}), nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEstimateCost(t *testing.T) {
	cost, ok := estimateCost("gpt-4o-mini", Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000})
	if !ok {
		t.Fatal("gpt-4o-mini missing from the price table")
	}
	if cost != 0.75 {
		t.Errorf("cost = %v, want 0.75", cost)
	}

	if _, ok := estimateCost("mock", Usage{InputTokens: 10}); ok {
		t.Error("unknown model must report no cost")
	}
}
