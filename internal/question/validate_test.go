package question

import (
	"slices"
	"testing"

	"github.com/abhisek/mathai/internal/solver"
)

// Every template, paired with its solver answer, must clear the
// quality checks; the checks exist to catch template regressions.
func TestInspect_GeneratedQuestionsPass(t *testing.T) {
	g := NewSeeded(11)
	for _, topic := range Topics() {
		for _, difficulty := range []Difficulty{Easy, Medium, Hard} {
			for grade := 1; grade <= 12; grade += 3 {
				for i := 0; i < 10; i++ {
					q, err := g.Generate(Params{Grade: grade, Difficulty: difficulty, Topic: topic})
					if err != nil {
						t.Fatalf("Generate: %v", err)
					}
					res := solver.Solve(q.Text, string(q.Topic))
					if res == nil {
						t.Fatalf("unsolvable question %q", q.Text)
					}
					rep := Inspect(q, res.Answer)
					if !rep.Passed {
						t.Errorf("Inspect(%q, %q) failed: %v", q.Text, res.Answer, rep.Issues)
					}
				}
			}
		}
	}
}

func TestInspect_CriticalFailures(t *testing.T) {
	tests := []struct {
		name   string
		q      Question
		answer string
		issue  string
	}{
		{
			"too short to be a question",
			Question{Text: "2+2?", Topic: TopicArithmetic, Grade: 3},
			"4",
			"has_question",
		},
		{
			"empty answer",
			Question{Text: "What is 6 + 7?", Topic: TopicArithmetic, Grade: 5},
			"",
			"has_answer",
		},
		{
			"placeholder answer",
			Question{Text: "What is 6 + 7?", Topic: TopicArithmetic, Grade: 5},
			"None",
			"has_answer",
		},
		{
			"division by zero",
			Question{Text: "What is 10 ÷ 0?", Topic: TopicArithmetic, Grade: 5},
			"0",
			"no_math_errors",
		},
		{
			"impossible triangle",
			Question{Text: "Find the perimeter of a triangle with sides 1 cm, 2 cm and 5 cm", Topic: TopicGeometry, Grade: 7},
			"8",
			"no_math_errors",
		},
		{
			"extreme answer magnitude",
			Question{Text: "What is 2000000 - 500?", Topic: TopicArithmetic, Grade: 11},
			"1999500000000",
			"answer_reasonable",
		},
		{
			"negative geometry answer",
			Question{Text: "Find the area of a rectangle with length 6 cm and width 4 cm", Topic: TopicGeometry, Grade: 7},
			"-24",
			"answer_reasonable",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rep := Inspect(&tc.q, tc.answer)
			if rep.Passed {
				t.Fatalf("Inspect passed, want critical failure %q", tc.issue)
			}
			if !slices.Contains(rep.Issues, tc.issue) {
				t.Errorf("issues = %v, want %q among them", rep.Issues, tc.issue)
			}
		})
	}
}

// Cosmetic problems lower the quality score without blocking the
// question.
func TestInspect_CosmeticIssuesDoNotBlock(t *testing.T) {
	tests := []struct {
		name  string
		q     Question
		issue string
	}{
		{
			"vague wording",
			Question{Text: "Solve for x: something + 5 = 10", Topic: TopicAlgebra, Grade: 7},
			"clear_wording",
		},
		{
			"concept above grade",
			Question{Text: "Solve the quadratic equation x^2 - 5x + 6 = 0", Topic: TopicAlgebra, Grade: 4},
			"grade_appropriate",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rep := Inspect(&tc.q, "5")
			if !rep.Passed {
				t.Fatalf("Inspect blocked on a cosmetic issue: %v", rep.Issues)
			}
			if !slices.Contains(rep.Issues, tc.issue) {
				t.Errorf("issues = %v, want %q among them", rep.Issues, tc.issue)
			}
			if rep.Quality >= 1 {
				t.Errorf("quality = %v, want < 1", rep.Quality)
			}
		})
	}
}

func TestInspect_FractionAnswerIsReasonable(t *testing.T) {
	q := &Question{Text: "Add the fractions 1/2 + 1/4", Topic: TopicArithmetic, Grade: 6}
	rep := Inspect(q, "3/4")
	if !rep.Checks["answer_reasonable"] {
		t.Errorf("fraction answer flagged unreasonable: %v", rep.Issues)
	}
}
