package solution

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/mathai/internal/grading"
)

// Expression patterns that can be recomputed straight from the
// question text.
var (
	// Fraction arithmetic: "1/2 + 1/4", "3/4 × 2/3".
	fractionExprPattern = regexp.MustCompile(`(-?\d+)\s*/\s*(\d+)\s*([+\-*×÷])\s*(-?\d+)\s*/\s*(\d+)`)

	// Plain binary arithmetic with +, -, *, ×. Division is excluded
	// here so "3/4" stays a fraction.
	binaryExprPattern = regexp.MustCompile(`(?:^|[^\d/.])(-?\d+(?:\.\d+)?)\s*([+\-*×])\s*(-?\d+(?:\.\d+)?)(?:[^\d/.]|$)`)

	// Division needs spaces around the operator to tell "144 / 12"
	// apart from the fraction "3/4".
	divisionExprPattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s+[/÷]\s+(-?\d+(?:\.\d+)?)`)
)

// verifyAnswer independently recomputes the answer when the question
// text contains a directly computable expression, and rejects the
// claimed answer on a mismatch. Word problems and symbolic questions
// are not computable this way and pass through silently.
func verifyAnswer(questionText, answer string) error {
	computed, ok := recompute(questionText)
	if !ok {
		return nil
	}
	if !sameValue(computed, answer) {
		return fmt.Errorf("recomputed %q from the question but the model claims %q", computed, answer)
	}
	return nil
}

// recompute extracts and evaluates the first computable expression in
// the text. The bool result reports whether anything was computable.
// Equations are left alone: "2x + 3 = 11" must not be misread as the
// sum 3 + 11.
func recompute(text string) (string, bool) {
	if strings.ContainsRune(text, '=') {
		return "", false
	}
	if m := fractionExprPattern.FindStringSubmatch(text); m != nil {
		if result, ok := fractionValue(m); ok {
			return result, true
		}
	}
	if m := binaryExprPattern.FindStringSubmatch(text); m != nil {
		return binaryValue(m[1], m[2], m[3])
	}
	if m := divisionExprPattern.FindStringSubmatch(text); m != nil {
		return binaryValue(m[1], "/", m[2])
	}
	return "", false
}

// fractionValue evaluates a/b op c/d exactly and renders the reduced
// fraction, or a bare integer when the denominator reduces to 1.
func fractionValue(m []string) (string, bool) {
	aN, _ := strconv.ParseInt(m[1], 10, 64)
	aD, _ := strconv.ParseInt(m[2], 10, 64)
	bN, _ := strconv.ParseInt(m[4], 10, 64)
	bD, _ := strconv.ParseInt(m[5], 10, 64)
	if aD == 0 || bD == 0 {
		return "", false
	}

	var n, d int64
	switch m[3] {
	case "+":
		n, d = aN*bD+bN*aD, aD*bD
	case "-":
		n, d = aN*bD-bN*aD, aD*bD
	case "*", "×":
		n, d = aN*bN, aD*bD
	case "÷":
		if bN == 0 {
			return "", false
		}
		n, d = aN*bD, aD*bN
	default:
		return "", false
	}

	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs64(n), d)
	n, d = n/g, d/g
	if d == 1 {
		return strconv.FormatInt(n, 10), true
	}
	return fmt.Sprintf("%d/%d", n, d), true
}

func binaryValue(aStr, op, bStr string) (string, bool) {
	a, err1 := strconv.ParseFloat(aStr, 64)
	b, err2 := strconv.ParseFloat(bStr, 64)
	if err1 != nil || err2 != nil {
		return "", false
	}

	var result float64
	switch op {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*", "×":
		result = a * b
	case "/":
		if b == 0 {
			return "", false
		}
		result = a / b
	default:
		return "", false
	}
	return strconv.FormatFloat(result, 'f', -1, 64), true
}

// sameValue compares two answers through the grader's normalization,
// so "0.5" verifies a recomputed "1/2" and vice versa.
func sameValue(a, b string) bool {
	for _, x := range grading.Normalize(a) {
		for _, y := range grading.Normalize(b) {
			if x == y || grading.NumericEqual(x, y, grading.Tolerance) {
				return true
			}
		}
	}
	return false
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
