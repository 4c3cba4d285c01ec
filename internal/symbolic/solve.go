package symbolic

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrNotPolynomial is returned when an equation is not a polynomial of
// degree 1 or 2 in the requested variable.
var ErrNotPolynomial = errors.New("symbolic: not a linear or quadratic polynomial")

// ErrNoRealRoots is returned for quadratics with a negative
// discriminant.
var ErrNoRealRoots = errors.New("symbolic: no real roots")

// SolveResult holds the real roots of a solved equation. Exact is true
// when every root is an exact rational.
type SolveResult struct {
	Roots []*Num
	Exact bool
}

// SolveLinear solves a*x + b = 0.
func SolveLinear(a, b *Num) (SolveResult, error) {
	if a.IsZero() {
		if b.IsZero() {
			return SolveResult{}, errors.New("symbolic: identity equation, infinite solutions")
		}
		return SolveResult{}, errors.New("symbolic: inconsistent equation, no solution")
	}
	return SolveResult{Roots: []*Num{numDiv(numNeg(b), a)}, Exact: true}, nil
}

// SolveQuadratic solves a*x^2 + b*x + c = 0 over the reals. Roots are
// exact rationals when the discriminant is a perfect square, float64
// approximations otherwise. A zero leading coefficient degrades to the
// linear case.
func SolveQuadratic(a, b, c *Num) (SolveResult, error) {
	if a.IsZero() {
		return SolveLinear(b, c)
	}
	disc := numSub(numMul(b, b), numMul(numMul(N(4), a), c))
	if disc.IsNegative() {
		return SolveResult{}, ErrNoRealRoots
	}
	twoA := numMul(N(2), a)
	if sq, ok := ratSqrt(disc.val); ok {
		x1 := numDiv(numAdd(numNeg(b), sq), twoA)
		x2 := numDiv(numSub(numNeg(b), sq), twoA)
		roots := []*Num{x1}
		if x1.val.Cmp(x2.val) != 0 {
			roots = append(roots, x2)
		}
		return SolveResult{Roots: roots, Exact: true}, nil
	}
	sq := math.Sqrt(disc.Float64())
	bf, af := b.Float64(), a.Float64()
	return SolveResult{
		Roots: []*Num{NFloat((-bf + sq) / (2 * af)), NFloat((-bf - sq) / (2 * af))},
		Exact: false,
	}, nil
}

// ratSqrt returns the exact square root of r when both numerator and
// denominator are perfect squares.
func ratSqrt(r *big.Rat) (*Num, bool) {
	if r.Sign() < 0 {
		return nil, false
	}
	sqNum := new(big.Int).Sqrt(r.Num())
	if new(big.Int).Mul(sqNum, sqNum).Cmp(r.Num()) != 0 {
		return nil, false
	}
	sqDen := new(big.Int).Sqrt(r.Denom())
	if new(big.Int).Mul(sqDen, sqDen).Cmp(r.Denom()) != 0 {
		return nil, false
	}
	return &Num{val: new(big.Rat).SetFrac(sqNum, sqDen)}, true
}

// Solve finds the real roots of eq in varName. The equation must
// reduce to a polynomial of degree 1 or 2 with numeric coefficients.
func Solve(eq *Equation, varName string) (SolveResult, error) {
	residual := Expand(eq.Residual())
	coeffs := PolyCoeffs(residual, varName)

	num := func(deg int) (*Num, error) {
		c, ok := coeffs[deg]
		if !ok {
			return N(0), nil
		}
		n, ok := c.Eval()
		if !ok {
			return nil, fmt.Errorf("%w: coefficient of degree %d is symbolic", ErrNotPolynomial, deg)
		}
		return n, nil
	}

	maxDeg := 0
	for d := range coeffs {
		if d > maxDeg {
			maxDeg = d
		}
	}
	switch maxDeg {
	case 0:
		return SolveResult{}, fmt.Errorf("%w: no occurrence of %s", ErrNotPolynomial, varName)
	case 1:
		a, err := num(1)
		if err != nil {
			return SolveResult{}, err
		}
		b, err := num(0)
		if err != nil {
			return SolveResult{}, err
		}
		return SolveLinear(a, b)
	case 2:
		a, err := num(2)
		if err != nil {
			return SolveResult{}, err
		}
		b, err := num(1)
		if err != nil {
			return SolveResult{}, err
		}
		c, err := num(0)
		if err != nil {
			return SolveResult{}, err
		}
		return SolveQuadratic(a, b, c)
	}
	return SolveResult{}, fmt.Errorf("%w: degree %d", ErrNotPolynomial, maxDeg)
}
