package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/mathai/internal/symbolic"
)

// "What is 6 + 7?", "Calculate 8 × 9", "Compute 144 / 12"
var arithmeticPattern = regexp.MustCompile(`(?:what is|calculate|find|compute)\s+(.+?)(?:\?|$)`)

// Arithmetic evaluates the expression following an instruction verb.
// The expression must be fully numeric; a leftover variable means the
// question is not plain arithmetic.
func Arithmetic(question string) (res *Result) {
	defer swallow(&res)
	q := strings.ToLower(question)
	m := arithmeticPattern.FindStringSubmatch(q)
	if m == nil {
		return nil
	}
	exprText := strings.TrimSpace(m[1])
	expr, err := symbolic.Parse(exprText)
	if err != nil {
		return nil
	}
	if len(symbolic.FreeSymbols(expr)) > 0 {
		return nil
	}
	value, ok := expr.Eval()
	if !ok {
		return nil
	}
	answer := value.DecimalString()
	return &Result{
		Answer: answer,
		Steps: []string{
			fmt.Sprintf("1. Expression: %s", exprText),
			fmt.Sprintf("2. Evaluate: %s", answer),
		},
	}
}
