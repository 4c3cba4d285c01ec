package question

import (
	"regexp"
	"strconv"
	"strings"
)

// Complexity breaks a question's difficulty into measurable parts.
// Each field already carries its weighted contribution, so Total is a
// plain sum.
type Complexity struct {
	Operations  int // operator symbols present
	OperatorMix int // distinct operation kinds
	NumberSize  int // magnitude of the largest number
	Decimals    int
	Fractions   int
	Variables   int
	Steps       int // estimated solution steps
	WordProblem int
	Concept     int // most advanced named concept
}

// Total is the overall complexity score.
func (c Complexity) Total() int {
	return c.Operations + c.OperatorMix + c.NumberSize + c.Decimals +
		c.Fractions + c.Variables + c.Steps + c.WordProblem + c.Concept
}

// Level buckets the total score into a difficulty name.
func (c Complexity) Level() string {
	switch total := c.Total(); {
	case total < 31:
		return "very easy"
	case total < 61:
		return "easy"
	case total < 91:
		return "medium"
	case total < 121:
		return "hard"
	default:
		return "very hard"
	}
}

var (
	numberPattern   = regexp.MustCompile(`\d+(?:\.\d+)?`)
	decimalPattern  = regexp.MustCompile(`\d+\.\d+`)
	fractionPattern = regexp.MustCompile(`\d+/\d+`)
	variablePattern = regexp.MustCompile(`\b[a-z]\b`)
)

// conceptWeights maps named concepts to their complexity contribution.
// Only the heaviest matched concept counts.
var conceptWeights = map[string]int{
	"quadratic":    40,
	"system":       35,
	"logarithm":    45,
	"trigonometry": 35,
	"derivative":   50,
	"integral":     50,
	"factorial":    30,
	"permutation":  35,
	"combination":  35,
	"probability":  25,
	"volume":       20,
	"surface area": 25,
	"pythagorean":  25,
	"slope":        20,
	"intercept":    20,
}

var wordProblemCues = []string{"buy", "sell", "cost", "price", "has", "gets", "people", "distance"}

// ScoreComplexity measures how demanding a question is from its text
// alone: operation counts and variety, number magnitude, decimals,
// fractions, variables, estimated steps, and named concepts.
func ScoreComplexity(text string, topic Topic) Complexity {
	lower := strings.ToLower(text)
	var c Complexity

	for _, op := range []string{"+", "-", "×", "*", "÷", "/", "=", "^", "²", "³"} {
		c.Operations += strings.Count(text, op) * 10
	}

	kinds := 0
	if strings.Contains(text, "+") {
		kinds++
	}
	if strings.Contains(text, "-") {
		kinds++
	}
	if strings.ContainsAny(text, "×*") {
		kinds++
	}
	if strings.ContainsAny(text, "÷/") {
		kinds++
	}
	if strings.Contains(text, "^") || strings.Contains(text, "²") {
		kinds++
	}
	c.OperatorMix = kinds * 10

	if max, ok := largestNumber(text); ok {
		switch {
		case max < 10:
			c.NumberSize = 0
		case max < 100:
			c.NumberSize = 10
		case max < 1000:
			c.NumberSize = 20
		default:
			c.NumberSize = 30
		}
	}

	c.Decimals = len(decimalPattern.FindAllString(text, -1)) * 15
	c.Fractions = len(fractionPattern.FindAllString(text, -1)) * 20

	vars := map[string]bool{}
	for _, v := range variablePattern.FindAllString(lower, -1) {
		// "a" is almost always the article, not a variable.
		if v != "a" {
			vars[v] = true
		}
	}
	c.Variables = len(vars) * 15

	c.Steps = estimateSteps(lower, topic) * 15

	for _, cue := range wordProblemCues {
		if strings.Contains(lower, cue) {
			c.WordProblem = 20
			break
		}
	}

	for concept, weight := range conceptWeights {
		if strings.Contains(lower, concept) && weight > c.Concept {
			c.Concept = weight
		}
	}
	return c
}

// estimateSteps guesses how many steps a solution needs, capped at 10.
func estimateSteps(lower string, topic Topic) int {
	steps := 1
	for _, op := range []string{"+", "-", "×", "*", "÷", "/"} {
		steps += strings.Count(lower, op)
	}
	steps += strings.Count(lower, "(")

	switch topic {
	case TopicAlgebra:
		if strings.Contains(lower, "solve") {
			steps++
		}
		if strings.Contains(lower, "simplify") || strings.Contains(lower, "expand") || strings.Contains(lower, "factor") {
			steps += 2
		}
	case TopicGeometry:
		// Formula recall comes before any arithmetic.
		steps++
		if strings.Contains(lower, "volume") || strings.Contains(lower, "surface area") {
			steps++
		}
	}

	if strings.Contains(lower, " and ") || strings.Contains(lower, ", then") {
		steps += 2
	}
	if steps > 10 {
		steps = 10
	}
	return steps
}

// GradeMatch reports whether a complexity score fits the band expected
// for a grade: "too easy", "appropriate", or "too hard". A 20-point
// margin either side keeps borderline questions in play.
func GradeMatch(score, grade int) string {
	var low, high int
	switch {
	case grade <= 3:
		low, high = 0, 50
	case grade <= 5:
		low, high = 20, 70
	case grade <= 8:
		low, high = 40, 100
	case grade <= 10:
		low, high = 60, 130
	default:
		low, high = 80, 160
	}
	switch {
	case score < low-20:
		return "too easy"
	case score > high+20:
		return "too hard"
	default:
		return "appropriate"
	}
}

// largestNumber extracts the biggest numeric literal in the text.
func largestNumber(text string) (float64, bool) {
	var max float64
	found := false
	for _, m := range numberPattern.FindAllString(text, -1) {
		n, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		if !found || n > max {
			max, found = n, true
		}
	}
	return max, found
}
