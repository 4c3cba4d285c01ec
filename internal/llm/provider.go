// Package llm puts hosted language models behind one Provider
// interface so the tutor can fall back to a model when the
// deterministic solver does not recognize a question.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured reply per call.
type Provider interface {
	// Generate sends the request and returns the model's reply. When
	// the request carries a Schema, Content is JSON already checked
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request is a single-turn prompt. The tutor never holds a
// conversation with the model: every call is one system prompt, one
// user message, and usually a schema the reply must satisfy.
type Request struct {
	// System sets the model's role and output rules.
	System string

	// Prompt is the user message, typically the question text plus a
	// topic line.
	Prompt string

	// Purpose is a short label for the request log, e.g.
	// "solution-gen". Empty means unspecified.
	Purpose string

	// Schema, when set, makes the provider request structured output
	// and reject replies that do not conform. When nil the reply is
	// passed through as raw text.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in [0, 1]. Zero keeps solutions reproducible, which
	// is what grading wants.
	Temperature float64
}

// Response is the model's reply.
type Response struct {
	// Content is the reply body. Valid JSON whenever the request set a
	// Schema.
	Content json.RawMessage

	// Usage counts tokens for the cost estimate in the request log.
	Usage Usage

	// Model is the model that actually served the request, which can
	// differ from the configured one behind routing proxies.
	Model string

	// Truncated reports that the reply was cut off at MaxTokens. A
	// truncated solution is unusable and callers must discard it.
	Truncated bool
}

// Usage is the token count for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
