package question

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Generator produces questions from the template bank. Not safe for
// concurrent use; create one per goroutine or guard externally.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator with a randomly seeded source.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a Generator with a fixed seed, for reproducible
// output.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Generate builds one question for the given parameters. Every
// template produces a question the deterministic solver recognizes.
func (g *Generator) Generate(p Params) (*Question, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var text string
	switch p.Topic {
	case TopicAlgebra:
		text = g.algebra(p)
	case TopicGeometry:
		text = g.geometry(p)
	case TopicPercentage:
		text = g.percentage(p)
	case TopicArithmetic:
		text = g.arithmetic(p)
	}
	return &Question{
		ID:         uuid.New().String(),
		Text:       text,
		Topic:      p.Topic,
		Grade:      p.Grade,
		Difficulty: p.Difficulty,
	}, nil
}

func (g *Generator) algebra(p Params) string {
	// Quadratics only for older grades above easy.
	if p.Grade >= 8 && p.Difficulty != Easy && g.rng.IntN(3) == 0 {
		q := makeQuadraticNumbers(g.rng, p.Difficulty)
		return fmt.Sprintf("Solve: x^2 - %dx + %d = 0", q.sum, q.product)
	}
	n := makeEquationNumbers(g.rng, p.Difficulty)
	switch g.rng.IntN(3) {
	case 0:
		return fmt.Sprintf("Solve for x: %s = %d", linearLHS(n.a, n.b), n.c)
	case 1:
		return fmt.Sprintf("Find x: %s = %d", linearLHS(n.a, n.b), n.c)
	default:
		return fmt.Sprintf("What value of x satisfies this equation: %s = %d?", linearLHS(n.a, n.b), n.c)
	}
}

// linearLHS renders ax + b with the sign folded into the operator.
func linearLHS(a, b int) string {
	switch {
	case b > 0:
		return fmt.Sprintf("%dx + %d", a, b)
	case b < 0:
		return fmt.Sprintf("%dx - %d", a, -b)
	default:
		return fmt.Sprintf("%dx", a)
	}
}

func (g *Generator) geometry(p Params) string {
	cfg := configFor(p.Grade, p.Difficulty, TopicGeometry)
	small := func() int { return intBetween(g.rng, 2, min(cfg.high, 30)) }
	switch g.rng.IntN(6) {
	case 0:
		return fmt.Sprintf("Find the area of a rectangle with length %d cm and width %d cm", small(), small())
	case 1:
		return fmt.Sprintf("What is the area of a square with side %d cm?", small())
	case 2:
		// Even base keeps the half-base-times-height answer whole.
		base := 2 * intBetween(g.rng, 2, 15)
		return fmt.Sprintf("Find the area of a triangle with base %d cm and height %d cm", base, small())
	case 3:
		return fmt.Sprintf("Find the area of a circle with radius %d cm", intBetween(g.rng, 2, 20))
	case 4:
		return fmt.Sprintf("What is the volume of a cube with side %d cm?", intBetween(g.rng, 2, 12))
	default:
		return fmt.Sprintf("Find the volume of a cylinder with radius %d cm and height %d cm",
			intBetween(g.rng, 2, 12), intBetween(g.rng, 2, 20))
	}
}

func (g *Generator) percentage(p Params) string {
	cfg := configFor(p.Grade, p.Difficulty, TopicPercentage)
	n := makePercentageNumbers(g.rng, cfg)
	if g.rng.IntN(2) == 0 {
		return fmt.Sprintf("What is %d%% of %d?", n.percent, n.total)
	}
	part := n.total * n.percent / 100
	return fmt.Sprintf("%d is what percent of %d?", part, n.total)
}

func (g *Generator) arithmetic(p Params) string {
	cfg := configFor(p.Grade, p.Difficulty, TopicArithmetic)
	switch g.rng.IntN(4) {
	case 0:
		return fmt.Sprintf("What is %d + %d?", intBetween(g.rng, cfg.low, cfg.high), intBetween(g.rng, cfg.low, cfg.high))
	case 1:
		// Subtraction stays non-negative for younger grades.
		a := intBetween(g.rng, cfg.low, cfg.high)
		b := intBetween(g.rng, cfg.low, cfg.high)
		if (p.Difficulty == Easy || p.Grade <= 5) && b > a {
			a, b = b, a
		}
		return fmt.Sprintf("What is %d - %d?", a, b)
	case 2:
		var a, b int
		if p.Difficulty == Easy {
			a, b = intBetween(g.rng, 2, 10), intBetween(g.rng, 2, 10)
		} else {
			a, b = intBetween(g.rng, cfg.low/2+1, cfg.high/2), intBetween(g.rng, 2, 20)
		}
		return fmt.Sprintf("Calculate %d × %d", a, b)
	default:
		n := makeDivisionNumbers(g.rng, p.Difficulty, cfg)
		return fmt.Sprintf("What is %d ÷ %d?", n.dividend, n.divisor)
	}
}
