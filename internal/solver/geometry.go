package solver

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// Geometry solves area and volume questions for a fixed set of
// shapes. Numbers are taken from the question left to right and bound
// positionally to the formula, so "rectangle with length 6 and
// width 4" works but a question listing width first is answered with
// the dimensions swapped. Returns nil when no shape keyword pair
// matches or the question carries too few numbers.
func Geometry(question string) (res *Result) {
	defer swallow(&res)
	q := strings.ToLower(question)
	nums := extractNumbers(question)
	if len(nums) == 0 {
		return nil
	}

	has := func(words ...string) bool {
		for _, w := range words {
			if !strings.Contains(q, w) {
				return false
			}
		}
		return true
	}

	switch {
	case has("rectangle", "area") && len(nums) >= 2:
		length, width := nums[0], nums[1]
		area := length * width
		return &Result{
			Answer: formatNumber(area),
			Steps: []string{
				"1. Formula for rectangle area: Area = length × width",
				fmt.Sprintf("2. Substitute values: Area = %s × %s", formatNumber(length), formatNumber(width)),
				fmt.Sprintf("3. Calculate: Area = %s", formatNumber(area)),
			},
		}
	case has("square", "area"):
		side := nums[0]
		area := side * side
		return &Result{
			Answer: formatNumber(area),
			Steps: []string{
				"1. Formula for square area: Area = side²",
				fmt.Sprintf("2. Substitute: Area = %s²", formatNumber(side)),
				fmt.Sprintf("3. Calculate: Area = %s", formatNumber(area)),
			},
		}
	case has("triangle", "area") && len(nums) >= 2:
		base, height := nums[0], nums[1]
		area := 0.5 * base * height
		return &Result{
			Answer: formatNumber(area),
			Steps: []string{
				"1. Formula for triangle area: Area = ½ × base × height",
				fmt.Sprintf("2. Substitute: Area = ½ × %s × %s", formatNumber(base), formatNumber(height)),
				fmt.Sprintf("3. Calculate: Area = %s", formatNumber(area)),
			},
		}
	case has("circle", "area"):
		radius := nums[0]
		area := math.Pi * radius * radius
		return &Result{
			Answer: fmt.Sprintf("%.2f", area),
			Steps: []string{
				"1. Formula for circle area: Area = πr²",
				fmt.Sprintf("2. Substitute: Area = π × %s²", formatNumber(radius)),
				fmt.Sprintf("3. Calculate: Area ≈ %.2f", area),
			},
		}
	case has("cube", "volume"):
		side := nums[0]
		volume := side * side * side
		return &Result{
			Answer: formatNumber(volume),
			Steps: []string{
				"1. Formula for cube volume: Volume = side³",
				fmt.Sprintf("2. Substitute: Volume = %s³", formatNumber(side)),
				fmt.Sprintf("3. Calculate: Volume = %s", formatNumber(volume)),
			},
		}
	case has("cylinder", "volume") && len(nums) >= 2:
		radius, height := nums[0], nums[1]
		volume := math.Pi * radius * radius * height
		return &Result{
			Answer: fmt.Sprintf("%.2f", volume),
			Steps: []string{
				"1. Formula for cylinder volume: Volume = πr²h",
				fmt.Sprintf("2. Substitute: Volume = π × %s² × %s", formatNumber(radius), formatNumber(height)),
				fmt.Sprintf("3. Calculate: Volume ≈ %.2f", volume),
			},
		}
	}
	return nil
}

// extractNumbers returns every unsigned number in the text, in order.
func extractNumbers(text string) []float64 {
	matches := numberPattern.FindAllString(text, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		f, err := strconv.ParseFloat(strings.TrimSuffix(m, "."), 64)
		if err != nil {
			continue
		}
		nums = append(nums, f)
	}
	return nums
}
