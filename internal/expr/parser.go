package expr

import (
	"fmt"
	"math"
	"strings"
)

// node is a parsed expression tree fragment
type node interface {
	eval() (float64, error)
}

type literal float64

func (l literal) eval() (float64, error) {
	return float64(l), nil
}

type negate struct {
	operand node
}

func (n negate) eval() (float64, error) {
	v, err := n.operand.eval()
	if err != nil {
		return 0, err
	}
	return -v, nil
}

type binary struct {
	op    tokenKind
	left  node
	right node
}

func (b binary) eval() (float64, error) {
	x, err := b.left.eval()
	if err != nil {
		return 0, err
	}
	y, err := b.right.eval()
	if err != nil {
		return 0, err
	}

	switch b.op {
	case tokPlus:
		return x + y, nil
	case tokMinus:
		return x - y, nil
	case tokStar:
		return x * y, nil
	case tokSlash:
		if y == 0 {
			return 0, fmt.Errorf("%w in expression", ErrDivideByZero)
		}
		return x / y, nil
	case tokFloorDiv:
		if y == 0 {
			return 0, fmt.Errorf("%w in expression", ErrDivideByZero)
		}
		return math.Floor(x / y), nil
	case tokPercent:
		if y == 0 {
			return 0, fmt.Errorf("%w in expression", ErrDivideByZero)
		}
		return flooredMod(x, y), nil
	case tokPower:
		result := math.Pow(x, y)
		if math.IsNaN(result) && !math.IsNaN(x) && !math.IsNaN(y) {
			return 0, fmt.Errorf("%w: %g ** %g", ErrDomain, x, y)
		}
		return result, nil
	default:
		return 0, fmt.Errorf("%w: unknown operator", ErrInvalid)
	}
}

type call struct {
	fn   builtin
	args []node
}

func (c call) eval() (float64, error) {
	args := make([]float64, len(c.args))
	for i, arg := range c.args {
		v, err := arg.eval()
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return c.fn.apply(args)
}

// parser walks a pre-lexed token stream with one token of lookahead
type parser struct {
	tokens []token
	pos    int
}

// Eval parses and evaluates a textual arithmetic expression
func Eval(text string) (float64, error) {
	root, err := parse(text)
	if err != nil {
		return 0, err
	}
	return root.eval()
}

// parse turns text into an evaluable expression tree
func parse(text string) (node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalid)
	}
	tokens, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		tok := p.peek()
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrInvalid, tok.text, tok.pos)
	}
	return root, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	tok := p.next()
	if tok.kind != kind {
		return token{}, fmt.Errorf("%w: expected %s at position %d", ErrInvalid, what, tok.pos)
	}
	return tok, nil
}

// parseExpression handles + and -, the lowest precedence level
func (p *parser) parseExpression() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokPlus, tokMinus:
			op := p.next().kind
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = binary{op: op, left: left, right: right}
		default:
			return left, nil
		}
	}
}

// parseTerm handles * / // and %
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokStar, tokSlash, tokFloorDiv, tokPercent:
			op := p.next().kind
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = binary{op: op, left: left, right: right}
		default:
			return left, nil
		}
	}
}

// parseUnary handles prefix + and -. A sign applies to a whole power
// expression, so -2**2 parses as -(2**2).
func (p *parser) parseUnary() (node, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negate{operand: operand}, nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	default:
		return p.parsePower()
	}
}

// parsePower handles **, right-associative with a unary exponent so
// 2**-1 is valid.
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokPower {
		p.next()
		exponent, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binary{op: tokPower, left: base, right: exponent}, nil
	}
	return base, nil
}

// parsePrimary handles literals, identifiers, calls, and parentheses
func (p *parser) parsePrimary() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return literal(tok.value), nil
	case tokLParen:
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		return p.parseIdent(tok)
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of input", ErrInvalid)
	default:
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrInvalid, tok.text, tok.pos)
	}
}

// parseIdent resolves an identifier against the whitelists. Constants
// become literals; any other name must be a whitelisted function call
// with a valid argument count.
func (p *parser) parseIdent(tok token) (node, error) {
	if p.peek().kind != tokLParen {
		if v, ok := constants[tok.text]; ok {
			return literal(v), nil
		}
		if _, ok := builtins[tok.text]; ok {
			return nil, fmt.Errorf("%w: %q must be called with arguments", ErrInvalid, tok.text)
		}
		return nil, fmt.Errorf("%w: unknown identifier %q", ErrInvalid, tok.text)
	}

	fn, ok := builtins[tok.text]
	if !ok {
		return nil, fmt.Errorf("%w: unknown function %q", ErrInvalid, tok.text)
	}
	p.next() // consume (

	var args []node
	if p.peek().kind != tokRParen {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}

	if len(args) < fn.minArgs || len(args) > fn.maxArgs {
		return nil, fmt.Errorf("%w: %s takes %s, got %d",
			ErrInvalid, tok.text, fn.arity(), len(args))
	}
	return call{fn: fn, args: args}, nil
}
