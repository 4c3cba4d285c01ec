// Package solver answers common textbook question patterns
// deterministically: linear and quadratic equations, basic area and
// volume problems, percentages, and plain arithmetic. Each matcher
// either recognizes a question and produces an exact answer with
// worked steps, or reports no match. Nothing here ever panics or
// returns an error; an unrecognized or malformed question is simply
// not solvable deterministically.
package solver

// Result is a deterministic solution: the canonical answer and the
// worked steps shown to the student.
type Result struct {
	Answer string   `json:"answer"`
	Steps  []string `json:"steps"`
}

// Matcher recognizes one question pattern. It returns nil when the
// question does not match.
type Matcher func(question string) *Result

// matchers in fallback order. Linear before quadratic: each requires
// its exact degree, so the order only decides which error message a
// human never sees.
var matchers = []Matcher{Linear, Quadratic, Geometry, Percentage, Arithmetic}

// Solve tries the matchers registered for the topic first, then every
// matcher in fixed order. Returns nil when no pattern matches.
func Solve(question, topic string) *Result {
	switch topic {
	case "algebra", "equations":
		// Quadratic first: it is the more specific pattern.
		if r := Quadratic(question); r != nil {
			return r
		}
		if r := Linear(question); r != nil {
			return r
		}
	case "geometry", "mensuration":
		if r := Geometry(question); r != nil {
			return r
		}
	case "percentages", "percentage":
		if r := Percentage(question); r != nil {
			return r
		}
	case "arithmetic", "basic_arithmetic":
		if r := Arithmetic(question); r != nil {
			return r
		}
	}
	for _, m := range matchers {
		if r := m(question); r != nil {
			return r
		}
	}
	return nil
}

// swallow converts a panic inside a matcher into a no-match. Matchers
// run over arbitrary user text; any internal failure means the pattern
// does not apply.
func swallow(res **Result) {
	if recover() != nil {
		*res = nil
	}
}
