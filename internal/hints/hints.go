// Package hints derives progressively revealing hints from question
// text. Three tiers: conceptual (which concept or formula applies),
// strategic (how to approach it), procedural (the concrete first
// step). Each tier gives away more while still leaving work to do.
package hints

import (
	"fmt"
	"regexp"
	"strings"
)

// Set holds the three tiers for one question.
type Set struct {
	Conceptual string `json:"conceptual"`
	Strategic  string `json:"strategic"`
	Procedural string `json:"procedural"`
}

// Tiers is the number of hint tiers.
const Tiers = 3

// Generate builds all three tiers for a question.
func Generate(question, topic string) Set {
	return Set{
		Conceptual: conceptual(question, topic),
		Strategic:  strategic(question, topic),
		Procedural: procedural(question, topic),
	}
}

// ForTier returns the hint for a 1-based tier, clamped to the valid
// range so a fourth request repeats the procedural hint.
func ForTier(question, topic string, tier int) string {
	s := Generate(question, topic)
	switch {
	case tier <= 1:
		return s.Conceptual
	case tier == 2:
		return s.Strategic
	default:
		return s.Procedural
	}
}

var (
	hintNumberPattern   = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	hintVariablePattern = regexp.MustCompile(`\b[xyz]\b`)
)

func extractNumbers(question string) []string {
	return hintNumberPattern.FindAllString(question, -1)
}

func extractVariable(question string) string {
	if m := hintVariablePattern.FindString(strings.ToLower(question)); m != "" {
		return m
	}
	return "x"
}

func conceptual(question, topic string) string {
	q := strings.ToLower(question)
	switch topic {
	case "algebra", "equations":
		switch {
		case strings.Contains(q, "quadratic") || strings.Contains(question, "x^2") || strings.Contains(question, "x²"):
			return "💡 This is a quadratic equation. Consider using the quadratic formula or factoring."
		case strings.Contains(q, "solve") || strings.Contains(q, "find x"):
			return "💡 This is a linear equation. The goal is to isolate the variable on one side."
		case strings.Contains(q, "simplify"):
			return "💡 Simplify by combining like terms and using the distributive property."
		default:
			return "💡 For equations, your goal is to isolate the variable by performing inverse operations on both sides."
		}
	case "geometry", "mensuration":
		switch {
		case strings.Contains(q, "area") && strings.Contains(q, "circle"):
			return "💡 Area of a circle: A = πr². Remember r is the radius."
		case strings.Contains(q, "area") && (strings.Contains(q, "rectangle") || strings.Contains(q, "square")):
			return "💡 Area of a rectangle: A = length × width. For squares, all sides are equal."
		case strings.Contains(q, "area") && strings.Contains(q, "triangle"):
			return "💡 Area of a triangle: A = ½ × base × height."
		case strings.Contains(q, "volume") && strings.Contains(q, "cylinder"):
			return "💡 Volume of a cylinder: V = πr²h."
		case strings.Contains(q, "volume"):
			return "💡 Volume = length × width × height. For cubes, all dimensions are equal."
		case strings.Contains(q, "perimeter"):
			return "💡 Perimeter is the distance around the outside. Add all side lengths."
		default:
			return "💡 Identify the shape and recall its formula. Most geometry problems need a specific formula."
		}
	case "percentages", "percentage":
		return "💡 Convert percentages to decimals (divide by 100) or use the formula: (part/whole) × 100"
	case "arithmetic", "basic_arithmetic":
		switch {
		case strings.Contains(q, "fraction") || strings.Contains(question, "/"):
			return "💡 For fractions: find common denominators to add/subtract, multiply straight across, flip and multiply to divide."
		case strings.Contains(question, "%") || strings.Contains(q, "percent"):
			return "💡 Convert percentages to decimals (divide by 100) or use the formula: (part/whole) × 100"
		case strings.Contains(question, "×") || strings.Contains(question, "*") || strings.Contains(q, "multiply"):
			return "💡 Break multiplication into smaller steps if the numbers are large."
		case strings.Contains(question, "÷") || strings.Contains(q, "divide"):
			return "💡 Division is the opposite of multiplication. Check if you can simplify first."
		default:
			return "💡 Follow order of operations: Parentheses, Exponents, Multiplication/Division (left to right), Addition/Subtraction (left to right)."
		}
	}
	return "💡 Break the problem into smaller steps. What operation or concept is being tested?"
}

func strategic(question, topic string) string {
	q := strings.ToLower(question)
	numbers := extractNumbers(question)
	switch topic {
	case "algebra", "equations":
		switch {
		case strings.Contains(q, "quadratic") || strings.Contains(question, "^2") || strings.Contains(question, "²"):
			return "📋 Strategy: Try factoring first. If that doesn't work easily, use the quadratic formula."
		case strings.Contains(q, "solve"):
			v := extractVariable(question)
			if strings.Contains(question, "(") {
				return fmt.Sprintf("📋 Strategy: First expand/simplify using the distributive property, then collect all terms with %s on one side.", v)
			}
			return fmt.Sprintf("📋 Strategy: Move all terms containing %s to the left side and constants to the right side.", v)
		default:
			return "📋 Strategy: Perform inverse operations step by step to isolate the variable."
		}
	case "geometry", "mensuration":
		switch len(numbers) {
		case 0:
			return "📋 Strategy: Identify the shape, recall its formula, and substitute the given values."
		case 1:
			return fmt.Sprintf("📋 Strategy: You're given one measurement (%s). Identify which formula applies and substitute this value.", numbers[0])
		default:
			shown := numbers
			if len(shown) > 3 {
				shown = shown[:3]
			}
			return fmt.Sprintf("📋 Strategy: You have measurements %s. Plug these into the appropriate formula.", strings.Join(shown, ", "))
		}
	case "percentages", "percentage":
		return "📋 Strategy: Convert the percentage to a decimal by dividing by 100, then multiply or divide as needed."
	case "arithmetic", "basic_arithmetic":
		switch {
		case strings.Contains(question, "/") || strings.Contains(q, "fraction"):
			return "📋 Strategy: For adding/subtracting fractions, find the least common denominator first. For multiplying, multiply numerators and denominators directly."
		case strings.Contains(question, "%"):
			return "📋 Strategy: Convert the percentage to a decimal by dividing by 100, then multiply or divide as needed."
		default:
			return "📋 Strategy: Follow PEMDAS order of operations. Work from innermost parentheses outward."
		}
	}
	return "📋 Strategy: Start by identifying what you know and what you need to find. Work step by step toward the unknown."
}

func procedural(question, topic string) string {
	q := strings.ToLower(question)
	numbers := extractNumbers(question)
	switch topic {
	case "algebra", "equations":
		v := extractVariable(question)
		switch {
		case strings.Contains(q, "quadratic") || strings.Contains(question, "^2") || strings.Contains(question, "²"):
			return "🔧 First Step: Set the equation equal to zero, then try to factor it into (x + a)(x + b) = 0."
		case strings.Contains(question, "("):
			return fmt.Sprintf("🔧 First Step: Distribute/expand the parentheses. For example, 3(x - 2) becomes 3%s - 6.", v)
		case strings.Count(q, v) >= 2:
			return fmt.Sprintf("🔧 First Step: Collect all %s terms on one side by adding or subtracting %s terms from both sides.", v, v)
		case strings.Contains(question, "+") && len(numbers) > 0:
			return fmt.Sprintf("🔧 First Step: Subtract %s from both sides to start isolating %s.", constantTerm(numbers), v)
		case strings.Contains(question, "-") && len(numbers) > 0:
			return fmt.Sprintf("🔧 First Step: Add %s to both sides to eliminate the subtraction.", constantTerm(numbers))
		default:
			return fmt.Sprintf("🔧 First Step: Perform the inverse operation to start isolating %s.", v)
		}
	case "geometry", "mensuration":
		switch {
		case strings.Contains(q, "area") && strings.Contains(q, "circle") && len(numbers) > 0:
			return fmt.Sprintf("🔧 First Step: Substitute r = %s into the formula A = πr², giving A = π × %s².", numbers[0], numbers[0])
		case strings.Contains(q, "area") && len(numbers) >= 2:
			return fmt.Sprintf("🔧 First Step: Multiply the length (%s) by the width (%s).", numbers[0], numbers[1])
		case strings.Contains(q, "volume") && len(numbers) >= 3:
			return fmt.Sprintf("🔧 First Step: Multiply length × width × height: %s × %s × %s.", numbers[0], numbers[1], numbers[2])
		case strings.Contains(q, "volume") && len(numbers) > 0:
			return fmt.Sprintf("🔧 First Step: Substitute the measurement (%s) into the volume formula.", numbers[0])
		default:
			return "🔧 First Step: Write down the formula for this shape, then substitute the known values."
		}
	case "percentages", "percentage":
		if len(numbers) >= 2 {
			return fmt.Sprintf("🔧 First Step: Convert %s%% to a decimal, then multiply by %s.", numbers[0], numbers[1])
		}
		return "🔧 First Step: Write the percentage as a fraction over 100."
	case "arithmetic", "basic_arithmetic":
		switch {
		case strings.Contains(question, "/") && len(numbers) >= 2:
			return fmt.Sprintf("🔧 First Step: Divide %s by %s.", numbers[0], numbers[1])
		case strings.Contains(question, "+") && strings.Contains(question, "-"):
			return "🔧 First Step: Work through the operations from left to right, doing addition and subtraction in order."
		case len(numbers) >= 2:
			return fmt.Sprintf("🔧 First Step: Start by combining %s and %s.", numbers[0], numbers[1])
		default:
			return "🔧 First Step: Start with the innermost parentheses or the first operation."
		}
	}
	return "🔧 First Step: Write down what you know and what you need to find."
}

// constantTerm picks the number named in the first-step hint: the
// last one in the question when several appear.
func constantTerm(numbers []string) string {
	if len(numbers) > 1 {
		return numbers[len(numbers)-1]
	}
	return numbers[0]
}
