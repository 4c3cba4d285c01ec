// Package tutor orchestrates the practice loop: generate a question,
// derive its canonical solution, grade attempts, and serve hints.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/mathai/internal/grading"
	"github.com/abhisek/mathai/internal/hints"
	"github.com/abhisek/mathai/internal/question"
	"github.com/abhisek/mathai/internal/solution"
	"github.com/abhisek/mathai/internal/solver"
	"github.com/abhisek/mathai/internal/store"
)

// ErrQuestionNotFound is returned when the referenced question does
// not exist.
var ErrQuestionNotFound = errors.New("question not found")

// ErrUnsolvable is returned when neither the deterministic solver nor
// the LLM fallback can produce a solution.
var ErrUnsolvable = errors.New("no solution found for question")

// Service runs the tutoring loop against a store.
type Service struct {
	store    *store.Store
	gen      *question.Generator
	fallback *solution.Generator // nil when no LLM is configured
	logger   *zap.Logger
}

// New creates a Service. fallback may be nil; questions the
// deterministic solver cannot handle are then rejected.
func New(st *store.Store, gen *question.Generator, fallback *solution.Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, gen: gen, fallback: fallback, logger: logger}
}

// maxGenerateAttempts bounds regeneration when a question fails its
// quality checks. Template questions almost never fail, so the bound
// is mostly a guard against a bad template slipping in.
const maxGenerateAttempts = 3

// NewQuestion generates a question, solves it, runs the quality
// checks, and persists it with the canonical answer and its
// normalized forms. Questions that fail a critical check are
// regenerated.
func (s *Service) NewQuestion(ctx context.Context, p question.Params) (*store.Question, error) {
	var (
		q      *question.Question
		sol    *solution.Solution
		source string
	)
	for attempt := 1; ; attempt++ {
		var err error
		q, err = s.gen.Generate(p)
		if err != nil {
			return nil, err
		}
		sol, source, err = s.solve(ctx, q.Text, string(q.Topic))
		if err != nil {
			return nil, err
		}

		rep := question.Inspect(q, sol.Answer)
		if rep.Passed {
			if rep.Quality < 1 {
				s.logger.Debug("question has cosmetic issues",
					zap.String("text", q.Text),
					zap.Strings("issues", rep.Issues))
			}
			break
		}
		s.logger.Warn("generated question failed quality checks",
			zap.String("text", q.Text),
			zap.Strings("issues", rep.Issues),
			zap.Int("attempt", attempt))
		if attempt == maxGenerateAttempts {
			return nil, fmt.Errorf("question failed quality checks after %d attempts: %s",
				maxGenerateAttempts, strings.Join(rep.Issues, ", "))
		}
	}

	rec := &store.Question{
		ID:         q.ID,
		Text:       q.Text,
		Topic:      string(q.Topic),
		Grade:      q.Grade,
		Difficulty: string(q.Difficulty),
		Answer:     sol.Answer,
		Normalized: grading.Normalize(sol.Answer),
		Steps:      sol.Steps,
		Source:     source,
	}
	if err := s.store.Questions().Save(ctx, rec); err != nil {
		return nil, err
	}

	c := question.ScoreComplexity(q.Text, q.Topic)
	s.logger.Info("question created",
		zap.String("id", rec.ID),
		zap.String("topic", rec.Topic),
		zap.String("difficulty", rec.Difficulty),
		zap.String("source", source),
		zap.Int("complexity", c.Total()),
		zap.String("complexity_level", c.Level()),
		zap.String("grade_fit", question.GradeMatch(c.Total(), q.Grade)))
	return rec, nil
}

// Solve answers free-form question text without persisting anything.
// The deterministic solver runs first; the LLM fallback picks up what
// it cannot match.
func (s *Service) Solve(ctx context.Context, text, topic string) (*solution.Solution, string, error) {
	return s.solve(ctx, text, topic)
}

func (s *Service) solve(ctx context.Context, text, topic string) (*solution.Solution, string, error) {
	if res := solver.Solve(text, topic); res != nil {
		return &solution.Solution{Answer: res.Answer, Steps: res.Steps}, "solver", nil
	}
	if s.fallback == nil {
		return nil, "", ErrUnsolvable
	}
	sol, err := s.fallback.Generate(ctx, text, topic)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsolvable, err)
	}
	return sol, "llm", nil
}

// Submission is the graded outcome of one answer.
type Submission struct {
	Verdict grading.Verdict
	Attempt int
	Points  int
}

// Submit grades an answer against the stored question and records the
// attempt. seconds is how long the student took; it shapes the points
// but not the verdict.
func (s *Service) Submit(ctx context.Context, questionID, answer string, seconds float64) (*Submission, error) {
	q, err := s.store.Questions().Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	prior, err := s.store.Attempts().CountByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	attemptNumber := prior + 1

	verdict := grading.Validate(q.Answer, answer, attemptNumber, q.Normalized)
	points := grading.Points(verdict.IsCorrect, attemptNumber, seconds)

	rec := &store.Attempt{
		ID:         uuid.New().String(),
		QuestionID: questionID,
		Answer:     answer,
		Attempt:    attemptNumber,
		Correct:    verdict.IsCorrect,
		Confidence: verdict.Confidence,
		Points:     points,
	}
	if err := s.store.Attempts().Save(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info("attempt graded",
		zap.String("question_id", questionID),
		zap.Int("attempt", attemptNumber),
		zap.Bool("correct", verdict.IsCorrect),
		zap.Int("points", points))
	return &Submission{Verdict: verdict, Attempt: attemptNumber, Points: points}, nil
}

// Hint returns the progressive hint for the given tier (1-3, clamped).
func (s *Service) Hint(ctx context.Context, questionID string, tier int) (string, error) {
	q, err := s.store.Questions().Get(ctx, questionID)
	if err != nil {
		return "", err
	}
	if q == nil {
		return "", ErrQuestionNotFound
	}
	return hints.ForTier(q.Text, q.Topic, tier), nil
}

// Question returns the stored question, or ErrQuestionNotFound.
func (s *Service) Question(ctx context.Context, questionID string) (*store.Question, error) {
	q, err := s.store.Questions().Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

// Attempts returns the attempt history for a question.
func (s *Service) Attempts(ctx context.Context, questionID string) ([]*store.Attempt, error) {
	return s.store.Attempts().ListByQuestion(ctx, questionID)
}
