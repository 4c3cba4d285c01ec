package solution

import "strings"

// AnnotatedStep pairs one solution step with teaching notes: why the
// step is needed, the concept it uses, and a common mistake to watch
// for. Caution is empty when no known mistake applies.
type AnnotatedStep struct {
	Text    string
	Why     string
	Concept string
	Caution string
}

// Annotate enriches solution steps for display. Annotation is keyword
// driven and deliberately shallow: it names the move being made, it
// does not re-derive it.
func Annotate(steps []string, topic string) []AnnotatedStep {
	out := make([]AnnotatedStep, len(steps))
	for i, step := range steps {
		lower := strings.ToLower(step)
		out[i] = AnnotatedStep{
			Text:    step,
			Why:     explainWhy(lower, i, topic),
			Concept: conceptFor(lower, topic),
			Caution: cautionFor(lower, topic),
		}
	}
	return out
}

func explainWhy(step string, index int, topic string) string {
	switch topic {
	case "algebra":
		switch {
		case strings.Contains(step, "distribute") || strings.Contains(step, "expand"):
			return "Removing parentheses makes every term visible"
		case strings.Contains(step, "combine") || strings.Contains(step, "like terms"):
			return "Grouping like terms simplifies the equation"
		case strings.Contains(step, "both sides"):
			return "Doing the same operation to both sides keeps the equation balanced"
		case strings.Contains(step, "factor"):
			return "Factoring finds the values that make the expression zero"
		case strings.Contains(step, "check") || strings.Contains(step, "verify"):
			return "Substituting the answer back confirms it satisfies the original equation"
		}
		return "This step moves toward isolating the variable"
	case "geometry":
		switch {
		case strings.Contains(step, "formula"):
			return "Every shape has its own formula; identifying it is the first step"
		case strings.Contains(step, "substitute"):
			return "The given measurements replace the variables in the formula"
		case strings.Contains(step, "calculate"):
			return "The remaining arithmetic produces the final measurement"
		}
		return "This calculation follows from the geometric formula"
	case "percentages":
		switch {
		case strings.Contains(step, "convert"):
			return "A percentage is a fraction of 100; converting makes it multipliable"
		case strings.Contains(step, "multiply"):
			return "Multiplying the decimal by the total gives the part it represents"
		}
		return "This step applies the percentage relationship"
	case "arithmetic":
		if index == 0 {
			return "Start with the operation the order of operations puts first"
		}
		return "Continue following the order of operations"
	}
	if index == 0 {
		return "Start by setting up the problem with the known values"
	}
	return "This step moves toward the solution"
}

func conceptFor(step, topic string) string {
	switch {
	case strings.Contains(step, "both sides"):
		return "Properties of equality"
	case strings.Contains(step, "distribute"):
		return "Distributive property: a(b + c) = ab + ac"
	case strings.Contains(step, "factor"):
		return "Factoring"
	case strings.Contains(step, "like terms"):
		return "Combining like terms"
	}

	switch topic {
	case "algebra":
		if strings.Contains(step, "quadratic") {
			return "Quadratic roots: x^2 - (sum)x + (product) = 0"
		}
		return "Algebraic manipulation"
	case "geometry":
		switch {
		case strings.Contains(step, "circle"):
			return "Area of a circle: A = pi * r^2"
		case strings.Contains(step, "rectangle"):
			return "Area of a rectangle: A = length * width"
		case strings.Contains(step, "triangle"):
			return "Area of a triangle: A = 1/2 * base * height"
		case strings.Contains(step, "volume"):
			return "Volume = base area * height"
		}
		return "Geometric formula"
	case "percentages":
		return "Percentage: part = (percent / 100) * whole"
	case "arithmetic":
		if strings.Contains(step, "/") || strings.Contains(step, "fraction") {
			return "Fraction operations"
		}
		return "Order of operations"
	}
	return "Mathematical operation"
}

func cautionFor(step, topic string) string {
	switch topic {
	case "algebra":
		switch {
		case strings.Contains(step, "both sides"):
			return "Apply the operation to both sides, not just one"
		case strings.Contains(step, "distribute"):
			return "Multiply every term inside the parentheses"
		case strings.Contains(step, "-"):
			return "Watch the signs when moving terms across the equals sign"
		}
	case "geometry":
		switch {
		case strings.Contains(step, "radius") || strings.Contains(step, "diameter"):
			return "The diameter is twice the radius; do not mix them up"
		case strings.Contains(step, "square") || strings.Contains(step, "²"):
			return "Squaring means multiplying the value by itself, not by 2"
		}
	case "percentages":
		if strings.Contains(step, "convert") {
			return "Divide by 100 when converting a percent to a decimal, not by 10"
		}
	case "arithmetic":
		if strings.Contains(step, "÷") || strings.Contains(step, "/") {
			return "Division by zero is undefined"
		}
	}
	return ""
}
