// Package solution produces worked solutions for questions the
// deterministic solver does not recognize, by asking an LLM for a
// structured answer and checking it before use.
package solution

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathai/internal/grading"
	"github.com/abhisek/mathai/internal/llm"
)

// Solution is a worked answer to a question.
type Solution struct {
	Answer string   `json:"answer"`
	Steps  []string `json:"steps"`
}

// Generator asks the LLM for solutions.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// solutionOutput is the raw LLM response before validation.
type solutionOutput struct {
	Answer string   `json:"answer"`
	Steps  []string `json:"steps"`
}

// Generate produces a solution for the given question text and topic.
// Replies are rejected when truncated, when the answer is something
// the grader could never match, or when an independent recomputation
// of the question disagrees with the claimed answer.
func (g *Generator) Generate(ctx context.Context, questionText, topic string) (*Solution, error) {
	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(questionText, topic),
		Purpose:     "solution-gen",
		Schema:      SolutionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM solution failed: %w", err)
	}
	if resp.Truncated {
		return nil, fmt.Errorf("solution reply truncated at %d tokens", g.config.MaxTokens)
	}

	var raw solutionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	s := &Solution{Answer: raw.Answer, Steps: raw.Steps}
	if err := checkSolution(s); err != nil {
		return nil, err
	}
	if err := verifyAnswer(questionText, s.Answer); err != nil {
		return nil, err
	}
	return s, nil
}

// checkSolution rejects answers the grader could never match against.
func checkSolution(s *Solution) error {
	if s.Answer == "" {
		return fmt.Errorf("solution has an empty answer")
	}
	forms := grading.Normalize(s.Answer)
	if len(forms) == 1 && forms[0] == "" {
		return fmt.Errorf("answer %q normalizes to nothing", s.Answer)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("solution has no steps")
	}
	return nil
}
