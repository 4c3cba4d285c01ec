package grading

// Tolerance is the strict numeric-match threshold: answers whose
// values differ by 0.009 match, answers 0.02 apart do not, and a
// difference of exactly 0.01 is not a match.
const Tolerance = 0.01

// Verdict is the outcome of grading one submission.
type Verdict struct {
	IsCorrect  bool    `json:"is_correct"`
	Confidence float64 `json:"confidence"`
	Feedback   string  `json:"feedback"`
	NextHint   string  `json:"next_hint,omitempty"`
}

// genericHints is the fallback ladder dispensed after wrong attempts,
// one rung per attempt, holding at the last.
var genericHints = []string{
	"Review the basic concepts needed for this problem.",
	"Break the problem down into smaller parts.",
	"Check your calculations carefully.",
	"Consider using a different approach.",
}

// Validate grades a student answer against the canonical answer.
// When correctNormalized is non-empty it is used as the canonical
// forms (the normalization persisted at question creation); otherwise
// correct is normalized here. attemptNumber is 1-based and selects the
// feedback wording and the next hint.
//
// Confidence is 1.0 for an exact string match between any pair of
// forms, 0.95 for a numeric or set match, and 0.0 otherwise.
func Validate(correct, student string, attemptNumber int, correctNormalized []string) Verdict {
	correctValues := correctNormalized
	if len(correctValues) == 0 {
		correctValues = Normalize(correct)
	}
	studentValues := Normalize(student)

	exact := false
	numeric := false
	for _, s := range studentValues {
		for _, c := range correctValues {
			if s == c {
				exact = true
			}
			if NumericEqual(s, c, Tolerance) {
				numeric = true
			}
		}
	}

	// Multi-value answers (quadratic roots and the like) match as
	// sets: same size, and either string-set equal or every student
	// value numerically covered by some correct value.
	setMatch := false
	if len(studentValues) > 1 && len(studentValues) == len(correctValues) {
		setMatch = stringSetEqual(studentValues, correctValues)
		if !setMatch {
			setMatch = true
			for _, s := range studentValues {
				covered := false
				for _, c := range correctValues {
					if NumericEqual(s, c, Tolerance) {
						covered = true
						break
					}
				}
				if !covered {
					setMatch = false
					break
				}
			}
		}
	}

	isCorrect := exact || numeric || setMatch
	confidence := 0.0
	switch {
	case exact:
		confidence = 1.0
	case numeric || setMatch:
		confidence = 0.95
	}

	v := Verdict{
		IsCorrect:  isCorrect,
		Confidence: confidence,
		Feedback:   feedbackFor(isCorrect, exact, attemptNumber),
	}
	if !isCorrect {
		idx := attemptNumber - 1
		if idx < 0 {
			idx = 0
		}
		if idx >= len(genericHints) {
			idx = len(genericHints) - 1
		}
		v.NextHint = genericHints[idx]
	}
	return v
}

func feedbackFor(isCorrect, exact bool, attemptNumber int) string {
	if isCorrect {
		if exact {
			return "Perfect! Your answer is exactly correct!"
		}
		return "Correct! Your answer is numerically equivalent to the solution."
	}
	switch attemptNumber {
	case 1:
		return "Not quite right. Try reviewing the problem carefully."
	case 2:
		return "Still not correct. Consider breaking down the problem into steps."
	default:
		return "Keep trying! Consider using the available hints to guide you."
	}
}

func stringSetEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	setA := make(map[string]struct{}, len(a))
	for _, v := range a {
		setA[v] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, v := range b {
		setB[v] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for v := range setA {
		if _, ok := setB[v]; !ok {
			return false
		}
	}
	return true
}

// Points scores a correct submission: 100 base, minus 10 per extra
// attempt, plus 20 when solved under a minute, minus 20 when over
// five minutes, never below 10. Incorrect submissions score 0.
func Points(isCorrect bool, attemptNumber int, seconds float64) int {
	if !isCorrect {
		return 0
	}
	points := 100 - (attemptNumber-1)*10
	if seconds < 60 {
		points += 20
	} else if seconds > 300 {
		points -= 20
	}
	if points < 10 {
		points = 10
	}
	return points
}
