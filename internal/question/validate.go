package question

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Report is the outcome of the quality checks run on a question and
// its canonical answer before the question reaches a student.
type Report struct {
	Checks  map[string]bool
	Issues  []string // names of the failed checks, sorted
	Quality float64  // fraction of checks that passed
	Passed  bool     // every critical check passed
}

// criticalChecks are the ones that make a question unusable rather
// than merely rough.
var criticalChecks = []string{"has_question", "has_answer", "answer_reasonable", "no_math_errors"}

// Inspect runs every quality check on a question. Non-critical
// failures lower Quality but leave Passed true, so cosmetic issues
// never block a mathematically sound question.
func Inspect(q *Question, answer string) Report {
	checks := map[string]bool{
		"has_question":      checkHasQuestion(q.Text),
		"has_answer":        checkHasAnswer(answer),
		"answer_reasonable": checkAnswerReasonable(answer, q.Topic),
		"no_math_errors":    checkNoMathErrors(q.Text, q.Topic),
		"clear_wording":     checkClearWording(q.Text),
		"length":            checkLength(q.Text, q.Grade),
		"geometry_values":   checkGeometryValues(q.Text, answer, q.Topic),
		"grade_appropriate": checkGradeAppropriate(q.Text, q.Grade),
	}

	var issues []string
	passedCount := 0
	for name, ok := range checks {
		if ok {
			passedCount++
		} else {
			issues = append(issues, name)
		}
	}
	sort.Strings(issues)

	passed := true
	for _, name := range criticalChecks {
		if !checks[name] {
			passed = false
		}
	}

	return Report{
		Checks:  checks,
		Issues:  issues,
		Quality: float64(passedCount) / float64(len(checks)),
		Passed:  passed,
	}
}

func checkHasQuestion(text string) bool {
	if len(text) < 10 {
		return false
	}
	lower := strings.ToLower(text)
	for _, cue := range []string{"solve", "find", "calculate", "what", "how", "is", "=", "+", "-", "×", "÷", "x"} {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

func checkHasAnswer(answer string) bool {
	s := strings.ToLower(strings.TrimSpace(answer))
	return s != "" && s != "none" && s != "nan" && s != "null"
}

// checkAnswerReasonable rejects extreme magnitudes, overly precise
// decimals, and negative geometry answers. Non-numeric answers pass
// unless they read as an error.
func checkAnswerReasonable(answer string, topic Topic) bool {
	n, ok := answerValue(answer)
	if !ok {
		s := strings.ToLower(strings.TrimSpace(answer))
		return s != "" && s != "error" && s != "undefined" && s != "none"
	}
	if n > 1_000_000 || n < -1_000_000 {
		return false
	}
	if i := strings.IndexByte(answer, '.'); i >= 0 && len(strings.TrimRight(answer[i+1:], " ")) > 4 {
		return false
	}
	if topic == TopicGeometry && n < 0 {
		return false
	}
	return true
}

// answerValue parses a plain number or a simple fraction.
func answerValue(answer string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(answer), ",", "")
	if num, den, found := strings.Cut(s, "/"); found {
		a, err1 := strconv.ParseFloat(strings.TrimSpace(num), 64)
		b, err2 := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err1 != nil || err2 != nil || b == 0 {
			return 0, false
		}
		return a / b, true
	}
	n, err := strconv.ParseFloat(s, 64)
	return n, err == nil
}

var (
	divideByZeroPattern  = regexp.MustCompile(`[/÷]\s*0(?:[^.\d]|$)`)
	negativeSqrtPattern  = regexp.MustCompile(`(?:sqrt\s*\(\s*|√\s*)-\d`)
	negativeValuePattern = regexp.MustCompile(`-\d`)
	signedNumberPattern  = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

func checkNoMathErrors(text string, topic Topic) bool {
	if divideByZeroPattern.MatchString(text) {
		return false
	}
	if negativeSqrtPattern.MatchString(strings.ToLower(text)) {
		return false
	}
	if topic == TopicGeometry && negativeValuePattern.MatchString(text) {
		return false
	}
	// Triangle inequality when three side lengths are present.
	if strings.Contains(strings.ToLower(text), "triangle") {
		nums := textNumbers(text)
		if len(nums) >= 3 {
			sides := append([]float64(nil), nums[:3]...)
			sort.Float64s(sides)
			if sides[0]+sides[1] <= sides[2] {
				return false
			}
		}
	}
	return true
}

var unclearPhrases = []string{"etc.", "...", "something", "some number", "somehow"}

func checkClearWording(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range unclearPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	if strings.Count(text, "?") > 1 {
		return false
	}
	// A substantial word repeated many times reads as a template bug.
	words := strings.Fields(lower)
	if len(words) > 5 {
		freq := map[string]int{}
		for _, w := range words {
			if len(w) > 3 {
				freq[w]++
				if freq[w] > 3 {
					return false
				}
			}
		}
	}
	return true
}

// checkLength keeps questions readable for the grade. Symbolic
// questions can be as short as three words.
func checkLength(text string, grade int) bool {
	wc := len(strings.Fields(text))
	switch {
	case grade <= 3:
		return wc >= 3 && wc <= 30
	case grade <= 6:
		return wc >= 3 && wc <= 50
	case grade <= 9:
		return wc >= 3 && wc <= 70
	default:
		return wc >= 3 && wc <= 100
	}
}

func checkGeometryValues(text, answer string, topic Topic) bool {
	if topic != TopicGeometry {
		return true
	}
	for _, n := range textNumbers(text) {
		if n < 0 {
			return false
		}
	}
	if n, ok := answerValue(answer); ok && n < 0 {
		return false
	}
	return true
}

func checkGradeAppropriate(text string, grade int) bool {
	lower := strings.ToLower(text)
	if grade <= 5 {
		for _, concept := range []string{"quadratic", "logarithm", "exponential", "derivative", "integral", "trigonometry", "sine", "cosine", "tangent"} {
			if strings.Contains(lower, concept) {
				return false
			}
		}
	}
	if grade <= 8 {
		for _, concept := range []string{"calculus", "derivative", "integral", "limit", "series"} {
			if strings.Contains(lower, concept) {
				return false
			}
		}
	}
	if max, ok := largestNumber(text); ok {
		switch {
		case grade <= 3 && max > 100:
			return false
		case grade <= 5 && max > 1000:
			return false
		case grade <= 8 && max > 10000:
			return false
		}
	}
	return true
}

// textNumbers extracts numeric literals in order of appearance, with a
// leading minus sign attached when one directly precedes the number.
func textNumbers(text string) []float64 {
	var out []float64
	for _, m := range signedNumberPattern.FindAllString(text, -1) {
		if n, err := strconv.ParseFloat(m, 64); err == nil {
			out = append(out, n)
		}
	}
	return out
}
