package hints

import (
	"strings"
	"testing"
)

func TestGenerate_Algebra(t *testing.T) {
	s := Generate("Solve for x: 2x + 3 = 11", "algebra")
	if !strings.Contains(s.Conceptual, "linear equation") {
		t.Errorf("conceptual = %q, want linear-equation hint", s.Conceptual)
	}
	if !strings.Contains(s.Strategic, "terms containing x") {
		t.Errorf("strategic = %q, want variable-collection strategy", s.Strategic)
	}
	// "x" appears twice in the text ("for x" and "2x"), so the
	// collect-terms step wins over the subtract step.
	if !strings.Contains(s.Procedural, "Collect all x terms") {
		t.Errorf("procedural = %q, want collect-terms first step", s.Procedural)
	}
}

func TestGenerate_Quadratic(t *testing.T) {
	s := Generate("Solve: x² - 5x + 6 = 0", "algebra")
	if !strings.Contains(s.Conceptual, "quadratic") {
		t.Errorf("conceptual = %q, want quadratic hint", s.Conceptual)
	}
	if !strings.Contains(s.Procedural, "factor") {
		t.Errorf("procedural = %q, want factoring first step", s.Procedural)
	}
}

func TestGenerate_Geometry(t *testing.T) {
	s := Generate("Find the area of a circle with radius 5", "geometry")
	if !strings.Contains(s.Conceptual, "πr²") {
		t.Errorf("conceptual = %q, want circle formula", s.Conceptual)
	}
	if !strings.Contains(s.Strategic, "one measurement (5)") {
		t.Errorf("strategic = %q, want single-measurement strategy", s.Strategic)
	}
	if !strings.Contains(s.Procedural, "r = 5") {
		t.Errorf("procedural = %q, want substitution step", s.Procedural)
	}
}

func TestGenerate_Percentage(t *testing.T) {
	s := Generate("What is 25% of 80?", "percentages")
	if !strings.Contains(s.Conceptual, "(part/whole) × 100") {
		t.Errorf("conceptual = %q", s.Conceptual)
	}
	if !strings.Contains(s.Procedural, "25") || !strings.Contains(s.Procedural, "80") {
		t.Errorf("procedural = %q, want both numbers named", s.Procedural)
	}
}

func TestGenerate_UnknownTopic(t *testing.T) {
	s := Generate("Some question", "history")
	for _, h := range []string{s.Conceptual, s.Strategic, s.Procedural} {
		if h == "" {
			t.Fatal("unknown topic produced an empty hint")
		}
	}
}

func TestForTier(t *testing.T) {
	q, topic := "Solve for x: 2x + 3 = 11", "algebra"
	s := Generate(q, topic)
	tests := []struct {
		tier int
		want string
	}{
		{0, s.Conceptual}, // clamped up
		{1, s.Conceptual},
		{2, s.Strategic},
		{3, s.Procedural},
		{7, s.Procedural}, // clamped down
	}
	for _, tc := range tests {
		if got := ForTier(q, topic, tc.tier); got != tc.want {
			t.Errorf("ForTier(%d) = %q, want %q", tc.tier, got, tc.want)
		}
	}
}
