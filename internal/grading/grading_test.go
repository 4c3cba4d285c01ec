package grading

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"4", []string{"4"}},
		{" 42 ", []string{"42"}},
		{"4.0", []string{"4"}},
		{"-3.5", []string{"-3.5"}},
		{"7/2", []string{"7/2", "3.5"}},
		{"x = 7/2", []string{"7/2", "3.5"}},
		{"1/2 or 0.5", []string{"1/2", "0.5"}},
		{"3/0", []string{"3/0"}},
		{"2, 3", []string{"2", "3"}},
		{"x = 2 or x = 3", []string{"2", "3"}},
		{"The answer is 20", []string{"20"}},
		{".5", []string{"0.5"}},
		{"+3", []string{"3"}},
		{"yes", []string{"yes"}},
		{"", []string{""}},
		{"No Solution", []string{"no solution"}},
		{"2 and 2", []string{"2"}}, // deduplicated
	}

	for _, tc := range tests {
		got := Normalize(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Normalize(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_NeverEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "hello", "?!"} {
		if got := Normalize(input); len(got) == 0 {
			t.Errorf("Normalize(%q) returned an empty list", input)
		}
	}
}

func TestNumericEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"4", "4.0", true},
		{"3.5", "3.509", true},   // 0.009 apart
		{"3.5", "3.52", false},   // 0.02 apart
		{"100", "100.005", true},
		{"4", "abc", false},
		{"abc", "def", false},
	}

	for _, tc := range tests {
		if got := NumericEqual(tc.a, tc.b, Tolerance); got != tc.want {
			t.Errorf("NumericEqual(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNumericEqual_StrictBoundary(t *testing.T) {
	// A difference of exactly the tolerance is not a match.
	if NumericEqual("1", "1.01", Tolerance) {
		t.Error("difference of exactly 0.01 should not match")
	}
	if !NumericEqual("1", "1.0099", Tolerance) {
		t.Error("difference just under 0.01 should match")
	}
}

func TestValidate_ExactMatch(t *testing.T) {
	v := Validate("4", "4", 1, nil)
	if !v.IsCorrect {
		t.Fatal("exact match graded incorrect")
	}
	if v.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", v.Confidence)
	}
	if v.Feedback != "Perfect! Your answer is exactly correct!" {
		t.Errorf("feedback = %q", v.Feedback)
	}
	if v.NextHint != "" {
		t.Errorf("NextHint = %q, want empty", v.NextHint)
	}
}

func TestValidate_NumericMatch(t *testing.T) {
	// 7/2 normalizes to {7/2, 3.5}; student "3.5" matches "3.5"
	// exactly, so use a value inside tolerance instead.
	v := Validate("3.5", "3.509", 1, nil)
	if !v.IsCorrect {
		t.Fatal("within-tolerance answer graded incorrect")
	}
	if v.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", v.Confidence)
	}
	if v.Feedback != "Correct! Your answer is numerically equivalent to the solution." {
		t.Errorf("feedback = %q", v.Feedback)
	}
}

func TestValidate_FractionEquivalence(t *testing.T) {
	// Both answers normalize to the same decimal form, so the match
	// is exact, not merely numeric.
	v := Validate("7/2", "3.5", 1, nil)
	if !v.IsCorrect || v.Confidence != 1.0 {
		t.Errorf("Validate(7/2, 3.5) = %+v, want exact match", v)
	}
	v = Validate("0.5", "1/2", 2, nil)
	if !v.IsCorrect || v.Confidence != 1.0 {
		t.Errorf("Validate(0.5, 1/2) = %+v, want exact match", v)
	}
}

func TestValidate_SetMatch(t *testing.T) {
	// Quadratic roots in either order.
	v := Validate("2, 3", "3, 2", 1, nil)
	if !v.IsCorrect {
		t.Fatal("reordered root set graded incorrect")
	}
	// Roots within tolerance but not string-equal.
	v = Validate("2, 3", "2.005, 3.005", 1, nil)
	if !v.IsCorrect || v.Confidence != 0.95 {
		t.Errorf("near-set match = %+v, want correct at 0.95", v)
	}
	// Wrong size is not a set match, but any-pair numeric matching
	// still applies to the shared root.
	v = Validate("2, 3", "2", 1, nil)
	if !v.IsCorrect {
		t.Error("single root out of a pair graded incorrect (any-pair match)")
	}
	// Disjoint sets of equal size fail.
	v = Validate("2, 3", "4, 5", 1, nil)
	if v.IsCorrect {
		t.Error("disjoint root sets graded correct")
	}
}

func TestValidate_Incorrect(t *testing.T) {
	tests := []struct {
		attempt      int
		wantFeedback string
		wantHint     string
	}{
		{1, "Not quite right. Try reviewing the problem carefully.", "Review the basic concepts needed for this problem."},
		{2, "Still not correct. Consider breaking down the problem into steps.", "Break the problem down into smaller parts."},
		{3, "Keep trying! Consider using the available hints to guide you.", "Check your calculations carefully."},
		{4, "Keep trying! Consider using the available hints to guide you.", "Consider using a different approach."},
		{9, "Keep trying! Consider using the available hints to guide you.", "Consider using a different approach."},
	}

	for _, tc := range tests {
		v := Validate("4", "5", tc.attempt, nil)
		if v.IsCorrect || v.Confidence != 0.0 {
			t.Errorf("attempt %d: wrong answer graded %+v", tc.attempt, v)
		}
		if v.Feedback != tc.wantFeedback {
			t.Errorf("attempt %d: feedback = %q, want %q", tc.attempt, v.Feedback, tc.wantFeedback)
		}
		if v.NextHint != tc.wantHint {
			t.Errorf("attempt %d: hint = %q, want %q", tc.attempt, v.NextHint, tc.wantHint)
		}
	}
}

func TestValidate_PersistedNormalization(t *testing.T) {
	// The persisted forms win over re-normalizing the raw answer.
	v := Validate("something unrelated", "3.5", 1, []string{"7/2", "3.5"})
	if !v.IsCorrect || v.Confidence != 1.0 {
		t.Errorf("persisted normalization ignored: %+v", v)
	}
	// Empty persisted list falls back to the raw answer.
	v = Validate("4", "4", 1, nil)
	if !v.IsCorrect {
		t.Error("nil persisted list should fall back to normalizing the answer")
	}
}

func TestValidate_NonNumericAnswers(t *testing.T) {
	v := Validate("no solution", "No Solution", 1, nil)
	if !v.IsCorrect || v.Confidence != 1.0 {
		t.Errorf("case-insensitive text match failed: %+v", v)
	}
	v = Validate("no solution", "yes", 1, nil)
	if v.IsCorrect {
		t.Error("mismatched text graded correct")
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		correct bool
		attempt int
		seconds float64
		want    int
	}{
		{false, 1, 10, 0},
		{true, 1, 30, 120},  // fast bonus
		{true, 1, 120, 100}, // no bonus
		{true, 2, 120, 90},
		{true, 1, 400, 80},  // slow penalty
		{true, 10, 400, 10}, // floor
	}

	for _, tc := range tests {
		got := Points(tc.correct, tc.attempt, tc.seconds)
		if got != tc.want {
			t.Errorf("Points(%v, %d, %v) = %d, want %d", tc.correct, tc.attempt, tc.seconds, got, tc.want)
		}
	}
}
