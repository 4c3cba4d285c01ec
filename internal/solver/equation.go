package solver

import (
	"fmt"
	"regexp"

	"github.com/abhisek/mathai/internal/symbolic"
)

// Matches "<anything>: <lhs> = <rhs>" up to an optional question mark.
var equationPattern = regexp.MustCompile(`:\s*(.+?)\s*=\s*(.+?)(?:\?|$)`)

type equation struct {
	lhsText, rhsText string
	eq               *symbolic.Equation
	varName          string
}

// extractEquation pulls the equation out of a question like
// "Solve for x: 2x + 3 = 11". Both sides must parse and together
// contain exactly one variable.
func extractEquation(question string) *equation {
	m := equationPattern.FindStringSubmatch(question)
	if m == nil {
		return nil
	}
	lhsText, rhsText := m[1], m[2]
	lhs, err := symbolic.Parse(lhsText)
	if err != nil {
		return nil
	}
	rhs, err := symbolic.Parse(rhsText)
	if err != nil {
		return nil
	}
	syms := symbolic.FreeSymbols(lhs)
	for name := range symbolic.FreeSymbols(rhs) {
		syms[name] = struct{}{}
	}
	if len(syms) != 1 {
		return nil
	}
	var varName string
	for name := range syms {
		varName = name
	}
	return &equation{
		lhsText: lhsText,
		rhsText: rhsText,
		eq:      symbolic.Eq(lhs, rhs),
		varName: varName,
	}
}

func (e *equation) degree() int {
	return symbolic.Degree(symbolic.Expand(e.eq.Residual()), e.varName)
}

// Linear solves degree-1 equations like "Solve for x: 2x + 3 = 11".
func Linear(question string) (res *Result) {
	defer swallow(&res)
	eq := extractEquation(question)
	if eq == nil || eq.degree() != 1 {
		return nil
	}
	sol, err := symbolic.Solve(eq.eq, eq.varName)
	if err != nil {
		return nil
	}
	answer := formatRoots(sol)
	return &Result{
		Answer: answer,
		Steps: []string{
			fmt.Sprintf("1. Start with the equation: %s = %s", eq.lhsText, eq.rhsText),
			fmt.Sprintf("2. Rearrange to isolate %s", eq.varName),
			fmt.Sprintf("3. Simplify to get %s = %s", eq.varName, answer),
		},
	}
}

// Quadratic solves degree-2 equations like "Solve: x² - 5x + 6 = 0".
// Both roots are reported, smallest first.
func Quadratic(question string) (res *Result) {
	defer swallow(&res)
	eq := extractEquation(question)
	if eq == nil || eq.degree() != 2 {
		return nil
	}
	sol, err := symbolic.Solve(eq.eq, eq.varName)
	if err != nil {
		return nil
	}
	answer := formatRoots(sol)
	return &Result{
		Answer: answer,
		Steps: []string{
			fmt.Sprintf("1. Write the equation: %s = %s", eq.lhsText, eq.rhsText),
			"2. Rearrange to standard form",
			"3. Use quadratic formula or factoring",
			fmt.Sprintf("4. Solutions: %s = %s", eq.varName, answer),
		},
	}
}
