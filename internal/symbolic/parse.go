package symbolic

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// Parse turns textbook-style math notation into an expression tree.
// Multiplication may be implicit ("3x", "2(x + 1)"), the unicode
// operators × and ÷ and the superscript ² are accepted, and a run of
// letters is one variable name.
func Parse(input string) (Expr, error) {
	p := &parser{input: normalizeNotation(input)}
	p.next()
	expr, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("symbolic: unexpected %q at position %d", p.tok.text, p.tok.pos)
	}
	return expr.Simplify(), nil
}

func normalizeNotation(s string) string {
	r := strings.NewReplacer("×", "*", "·", "*", "÷", "/", "²", "^2", "³", "^3")
	return r.Replace(s)
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type parser struct {
	input string
	pos   int
	tok   token
	err   error
}

func (p *parser) next() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.input) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}
	c := p.input[p.pos]
	switch {
	case c >= '0' && c <= '9' || c == '.':
		for p.pos < len(p.input) && (p.input[p.pos] >= '0' && p.input[p.pos] <= '9' || p.input[p.pos] == '.') {
			p.pos++
		}
		p.tok = token{kind: tokNumber, text: p.input[start:p.pos], pos: start}
	case isLetter(rune(c)):
		for p.pos < len(p.input) && isLetter(rune(p.input[p.pos])) {
			p.pos++
		}
		p.tok = token{kind: tokIdent, text: p.input[start:p.pos], pos: start}
	default:
		p.pos++
		kind, ok := map[byte]tokenKind{
			'+': tokPlus, '-': tokMinus, '*': tokStar, '/': tokSlash,
			'^': tokCaret, '(': tokLParen, ')': tokRParen,
		}[c]
		if !ok {
			p.err = fmt.Errorf("symbolic: unexpected character %q at position %d", c, start)
			p.tok = token{kind: tokEOF, pos: start}
			return
		}
		p.tok = token{kind: kind, text: string(c), pos: start}
	}
}

func isLetter(r rune) bool { return unicode.IsLetter(r) }

// parseSum handles + and -.
func (p *parser) parseSum() (Expr, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.kind {
		case tokPlus:
			p.next()
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = AddOf(left, right)
		case tokMinus:
			p.next()
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = AddOf(left, MulOf(N(-1), right))
		default:
			return left, p.err
		}
	}
}

// parseProduct handles *, /, and implicit multiplication: a number,
// identifier, or parenthesized group directly following a factor is a
// multiplication.
func (p *parser) parseProduct() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.kind {
		case tokStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = MulOf(left, right)
		case tokSlash:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			rn, ok := right.(*Num)
			if ok {
				if rn.IsZero() {
					return nil, fmt.Errorf("symbolic: division by zero at position %d", p.tok.pos)
				}
				left = MulOf(left, numDiv(N(1), rn))
			} else {
				left = MulOf(left, PowOf(right, N(-1)))
			}
		case tokNumber, tokIdent, tokLParen:
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = MulOf(left, right)
		default:
			return left, p.err
		}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	if p.tok.kind == tokMinus {
		p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return MulOf(N(-1), inner), nil
	}
	if p.tok.kind == tokPlus {
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower handles ^, right associative.
func (p *parser) parsePower() (Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return PowOf(base, exp), nil
}

func (p *parser) parseAtom() (Expr, error) {
	switch p.tok.kind {
	case tokNumber:
		text := p.tok.text
		pos := p.tok.pos
		p.next()
		n, err := parseDecimal(text)
		if err != nil {
			return nil, fmt.Errorf("symbolic: bad number %q at position %d", text, pos)
		}
		return n, nil
	case tokIdent:
		name := p.tok.text
		p.next()
		return S(name), nil
	case tokLParen:
		p.next()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, fmt.Errorf("symbolic: missing closing parenthesis at position %d", p.tok.pos)
		}
		p.next()
		return inner, nil
	case tokEOF:
		if p.err != nil {
			return nil, p.err
		}
		return nil, fmt.Errorf("symbolic: unexpected end of input")
	}
	return nil, fmt.Errorf("symbolic: unexpected %q at position %d", p.tok.text, p.tok.pos)
}

// parseDecimal reads an integer or decimal literal as an exact
// rational, so "0.1" is 1/10 and not the nearest float64.
func parseDecimal(text string) (*Num, error) {
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, fmt.Errorf("malformed literal %q", text)
	}
	return &Num{val: r}, nil
}
