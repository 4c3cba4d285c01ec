package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathai/internal/llm"
	"github.com/abhisek/mathai/internal/question"
	"github.com/abhisek/mathai/internal/solution"
	"github.com/abhisek/mathai/internal/store"
)

func newTestService(t *testing.T, fallback *solution.Generator) *Service {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return New(st, question.NewSeeded(7), fallback, nil)
}

func TestNewQuestion_SolvedAndPersisted(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	q, err := s.NewQuestion(ctx, question.Params{Grade: 7, Difficulty: question.Medium, Topic: question.TopicAlgebra})
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	if q.Answer == "" || len(q.Normalized) == 0 || len(q.Steps) == 0 {
		t.Errorf("incomplete question record: %+v", q)
	}
	if q.Source != "solver" {
		t.Errorf("source = %q, want solver", q.Source)
	}

	got, err := s.Question(ctx, q.ID)
	if err != nil {
		t.Fatalf("Question: %v", err)
	}
	if got.Text != q.Text || got.Answer != q.Answer {
		t.Errorf("persisted question mismatch: %+v vs %+v", got, q)
	}
}

func TestSubmit_CorrectFirstTry(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	q, err := s.NewQuestion(ctx, question.Params{Grade: 5, Difficulty: question.Easy, Topic: question.TopicArithmetic})
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}

	sub, err := s.Submit(ctx, q.ID, q.Answer, 30)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !sub.Verdict.IsCorrect {
		t.Fatalf("correct answer %q graded wrong: %+v", q.Answer, sub.Verdict)
	}
	if sub.Attempt != 1 {
		t.Errorf("attempt = %d, want 1", sub.Attempt)
	}
	// 100 base + 20 speed bonus for under a minute.
	if sub.Points != 120 {
		t.Errorf("points = %d, want 120", sub.Points)
	}
}

func TestSubmit_AttemptNumbersAdvance(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	q, err := s.NewQuestion(ctx, question.Params{Grade: 5, Difficulty: question.Easy, Topic: question.TopicArithmetic})
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}

	sub1, err := s.Submit(ctx, q.ID, "definitely wrong", 30)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub1.Verdict.IsCorrect || sub1.Attempt != 1 || sub1.Points != 0 {
		t.Errorf("first wrong attempt: %+v", sub1)
	}
	if sub1.Verdict.NextHint == "" {
		t.Error("wrong answer should carry a hint")
	}

	sub2, err := s.Submit(ctx, q.ID, q.Answer, 30)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub2.Attempt != 2 {
		t.Errorf("attempt = %d, want 2", sub2.Attempt)
	}
	// 100 base - 10 for the extra attempt + 20 speed bonus.
	if sub2.Points != 110 {
		t.Errorf("points = %d, want 110", sub2.Points)
	}

	attempts, err := s.Attempts(ctx, q.ID)
	if err != nil {
		t.Fatalf("Attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 recorded attempts, got %d", len(attempts))
	}
}

func TestSubmit_UnknownQuestion(t *testing.T) {
	s := newTestService(t, nil)
	_, err := s.Submit(context.Background(), "nope", "4", 10)
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestHint_Tiers(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	q, err := s.NewQuestion(ctx, question.Params{Grade: 7, Difficulty: question.Medium, Topic: question.TopicAlgebra})
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}

	h1, err := s.Hint(ctx, q.ID, 1)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	h3, err := s.Hint(ctx, q.ID, 3)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if h1 == "" || h3 == "" || h1 == h3 {
		t.Errorf("hint tiers not distinct: %q vs %q", h1, h3)
	}

	if _, err := s.Hint(ctx, "nope", 1); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestSolve_FallsBackToLLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.CannedReply{
		JSON: `{"answer":"12","steps":["1. Three dozens is 36 eggs","2. A third of 36 is 12"]}`,
	})
	s := newTestService(t, solution.New(mock, solution.DefaultConfig()))

	sol, source, err := s.Solve(context.Background(), "A farmer sells a third of his three dozen eggs. How many eggs did he sell?", "arithmetic")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if source != "llm" {
		t.Errorf("source = %q, want llm", source)
	}
	if sol.Answer != "12" {
		t.Errorf("answer = %q, want 12", sol.Answer)
	}
	if mock.CallCount() != 1 {
		t.Errorf("llm calls = %d, want 1", mock.CallCount())
	}
}

func TestSolve_DeterministicFirst(t *testing.T) {
	mock := llm.NewMockProvider()
	s := newTestService(t, solution.New(mock, solution.DefaultConfig()))

	sol, source, err := s.Solve(context.Background(), "Solve for x: 2x + 3 = 11", "algebra")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if source != "solver" {
		t.Errorf("source = %q, want solver", source)
	}
	if sol.Answer != "4" {
		t.Errorf("answer = %q, want 4", sol.Answer)
	}
	if mock.CallCount() != 0 {
		t.Errorf("llm called %d times for a solvable question", mock.CallCount())
	}
}

func TestSolve_NoFallbackConfigured(t *testing.T) {
	s := newTestService(t, nil)
	_, _, err := s.Solve(context.Background(), "A riddle with no numbers", "arithmetic")
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("err = %v, want ErrUnsolvable", err)
	}
	if !strings.Contains(err.Error(), "no solution") {
		t.Errorf("unexpected message: %v", err)
	}
}
