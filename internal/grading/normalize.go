// Package grading decides whether a free-form student answer matches a
// canonical answer. Answers are normalized into a list of comparable
// forms (fraction text, decimal equivalents, bare numbers) and matched
// exactly, numerically within tolerance, or as multi-value sets.
package grading

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	fractionPattern = regexp.MustCompile(`[-+]?\d+/\d+`)
	numberPattern   = regexp.MustCompile(`[-+]?\d*\.?\d+`)
)

// Normalize turns an answer string into its comparable forms, in
// order: each fraction as written followed by its decimal quotient,
// then every standalone number in canonical decimal form, then the
// cleaned original string if nothing numeric was found. The result is
// deduplicated preserving order and never empty.
func Normalize(answer string) []string {
	a := strings.ToLower(strings.TrimSpace(answer))
	var normalized []string

	// Fractions first: students often answer "7/2", and the digits
	// inside must not be re-captured as standalone numbers below.
	for _, frac := range fractionPattern.FindAllString(a, -1) {
		parts := strings.SplitN(frac, "/", 2)
		num, err1 := strconv.ParseFloat(parts[0], 64)
		denom, err2 := strconv.ParseFloat(parts[1], 64)
		normalized = append(normalized, frac)
		if err1 == nil && err2 == nil && denom != 0 {
			normalized = append(normalized, formatFloat(num/denom))
		}
	}
	stripped := fractionPattern.ReplaceAllString(a, " ")

	for _, m := range numberPattern.FindAllString(stripped, -1) {
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			normalized = append(normalized, m)
			continue
		}
		normalized = append(normalized, formatFloat(f))
	}

	if len(normalized) == 0 {
		normalized = []string{a}
	}

	seen := make(map[string]struct{}, len(normalized))
	out := normalized[:0]
	for _, v := range normalized {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// formatFloat is the canonical decimal form: shortest representation
// that round-trips through float64.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// NumericEqual reports whether two strings parse as numbers within
// tolerance of each other. The comparison is strict: a difference of
// exactly the tolerance is not equal.
func NumericEqual(a, b string, tolerance float64) bool {
	fa, err1 := strconv.ParseFloat(a, 64)
	fb, err2 := strconv.ParseFloat(b, 64)
	if err1 != nil || err2 != nil {
		return false
	}
	diff := fa - fb
	if diff < 0 {
		diff = -diff
	}
	return diff < tolerance
}
