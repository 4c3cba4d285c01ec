package question

import "math/rand/v2"

// numberConfig bounds the magnitudes used in a question, scaled by
// grade and then stretched or squeezed by difficulty.
type numberConfig struct {
	low, high int
}

func configFor(grade int, difficulty Difficulty, topic Topic) numberConfig {
	var c numberConfig
	switch {
	case grade <= 3:
		c = numberConfig{1, 20}
	case grade <= 5:
		c = numberConfig{5, 50}
	case grade <= 8:
		c = numberConfig{10, 100}
	case grade <= 10:
		c = numberConfig{20, 200}
	default:
		c = numberConfig{50, 500}
	}
	switch difficulty {
	case Easy:
		c.high /= 2
	case Hard:
		c.high *= 2
	}
	if c.high <= c.low {
		c.high = c.low + 1
	}
	// Lengths stay small enough to picture; mental math stays mental.
	if topic == TopicGeometry && c.high > 200 {
		c.high = 200
	}
	if topic == TopicArithmetic && grade <= 5 {
		c = numberConfig{1, 20}
	}
	return c
}

// intBetween returns a uniform integer in [low, high].
func intBetween(rng *rand.Rand, low, high int) int {
	if high <= low {
		return low
	}
	return low + rng.IntN(high-low+1)
}

// equationNumbers picks the solution x first and derives the
// constants, so ax + b = c always has an integer answer.
type equationNumbers struct {
	a, b, c, x int
}

func makeEquationNumbers(rng *rand.Rand, difficulty Difficulty) equationNumbers {
	var x, a, b int
	switch difficulty {
	case Easy:
		x = intBetween(rng, 1, 10)
		a = intBetween(rng, 2, 10)
		b = intBetween(rng, 1, 20)
	case Medium:
		x = intBetween(rng, 1, 20)
		a = intBetween(rng, 2, 15)
		b = intBetween(rng, -20, 20)
	default:
		x = intBetween(rng, -20, 20)
		a = intBetween(rng, 2, 20)
		b = intBetween(rng, -50, 50)
	}
	return equationNumbers{a: a, b: b, c: a*x + b, x: x}
}

// quadraticNumbers picks two positive integer roots and expands
// (x - r1)(x - r2), so the question factors cleanly.
type quadraticNumbers struct {
	sum, product int
	r1, r2       int
}

func makeQuadraticNumbers(rng *rand.Rand, difficulty Difficulty) quadraticNumbers {
	max := 6
	if difficulty == Hard {
		max = 12
	}
	r1 := intBetween(rng, 1, max)
	r2 := intBetween(rng, 1, max)
	return quadraticNumbers{sum: r1 + r2, product: r1 * r2, r1: r1, r2: r2}
}

var nicePercentages = []int{5, 10, 15, 20, 25, 40, 50, 75}

// percentageNumbers keeps both the percentage and the result whole:
// the total is a multiple of 20, which every nice percentage divides
// into evenly.
type percentageNumbers struct {
	percent, total int
}

func makePercentageNumbers(rng *rand.Rand, cfg numberConfig) percentageNumbers {
	percent := nicePercentages[rng.IntN(len(nicePercentages))]
	maxK := cfg.high / 20
	if maxK < 1 {
		maxK = 1
	}
	total := 20 * intBetween(rng, 1, maxK)
	return percentageNumbers{percent: percent, total: total}
}

// divisionNumbers builds an exact division by multiplying the divisor
// and quotient.
type divisionNumbers struct {
	dividend, divisor, quotient int
}

func makeDivisionNumbers(rng *rand.Rand, difficulty Difficulty, cfg numberConfig) divisionNumbers {
	var divisor, quotient int
	if difficulty == Easy {
		divisor = intBetween(rng, 2, 10)
		quotient = intBetween(rng, 2, 10)
	} else {
		divisor = intBetween(rng, 2, 20)
		maxQ := cfg.high / divisor
		if maxQ < 2 {
			maxQ = 2
		}
		quotient = intBetween(rng, 2, maxQ)
	}
	return divisionNumbers{dividend: divisor * quotient, divisor: divisor, quotient: quotient}
}
