package solver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// "25% of 80", "25 percent of 80"
	percentOfPattern = regexp.MustCompile(`(\d+\.?\d*)%?\s+(?:percent\s+)?of\s+(\d+\.?\d*)`)
	// "20 is what percent of 80", "20 is how much percent of 80"
	whatPercentPattern = regexp.MustCompile(`(\d+\.?\d*)\s+is\s+(?:what|how\s+much)\s+percent\s+of\s+(\d+\.?\d*)`)
)

// Percentage solves the two standard percentage phrasings: a
// percentage of a total, and a part expressed as a percentage of a
// whole. The answer is always the bare number, without a % sign.
func Percentage(question string) (res *Result) {
	defer swallow(&res)
	q := strings.ToLower(question)

	// The "is what percent of" phrasing also matches the broader
	// "of" pattern, so it is checked first.
	if m := whatPercentPattern.FindStringSubmatch(q); m != nil {
		part, err1 := strconv.ParseFloat(m[1], 64)
		whole, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil || whole == 0 {
			return nil
		}
		percent := part / whole * 100
		return &Result{
			Answer: formatDecimal(percent),
			Steps: []string{
				"1. Formula: (part ÷ whole) × 100",
				fmt.Sprintf("2. Substitute: (%s ÷ %s) × 100", formatNumber(part), formatNumber(whole)),
				fmt.Sprintf("3. Calculate: %s%%", formatDecimal(percent)),
			},
		}
	}

	if m := percentOfPattern.FindStringSubmatch(q); m != nil {
		percent, err1 := strconv.ParseFloat(m[1], 64)
		total, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			return nil
		}
		result := percent / 100 * total
		return &Result{
			Answer: formatDecimal(result),
			Steps: []string{
				fmt.Sprintf("1. Convert percentage to decimal: %s%% = %s", formatNumber(percent), formatNumber(percent/100)),
				fmt.Sprintf("2. Multiply by the total: %s × %s", formatNumber(percent/100), formatNumber(total)),
				fmt.Sprintf("3. Calculate: %s", formatDecimal(result)),
			},
		}
	}
	return nil
}
