// Package expr evaluates plain-text arithmetic expressions over a fixed
// grammar: numeric literals, the binary operators + - * / // % **,
// unary minus, parentheses, and a whitelist of named functions and
// constants. Anything else is rejected. The package never executes
// arbitrary code; expressions are parsed into a small tree and the tree
// is evaluated directly.
package expr

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// Category sentinels. Every error returned by Eval wraps exactly one of
// these, so callers can classify failures with errors.Is.
var (
	// ErrDivideByZero is a division or modulo by zero during evaluation
	ErrDivideByZero = errors.New("division by zero")
	// ErrDomain is a mathematically undefined function input
	ErrDomain = errors.New("math domain error")
	// ErrInvalid is a syntax error or a disallowed construct
	ErrInvalid = errors.New("invalid expression")
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokFloorDiv
	tokPercent
	tokPower
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind  tokenKind
	text  string
	pos   int
	value float64
}

// lex splits the input into tokens, failing on any rune outside the grammar
func lex(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	i := 0

	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9' || r == '.':
			tok, next, err := lexNumber(runes, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, text: string(runes[start:i]), pos: start})
		case r == '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				tokens = append(tokens, token{kind: tokPower, text: "**", pos: i})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokStar, text: "*", pos: i})
				i++
			}
		case r == '/':
			if i+1 < len(runes) && runes[i+1] == '/' {
				tokens = append(tokens, token{kind: tokFloorDiv, text: "//", pos: i})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokSlash, text: "/", pos: i})
				i++
			}
		case r == '+':
			tokens = append(tokens, token{kind: tokPlus, text: "+", pos: i})
			i++
		case r == '-':
			tokens = append(tokens, token{kind: tokMinus, text: "-", pos: i})
			i++
		case r == '%':
			tokens = append(tokens, token{kind: tokPercent, text: "%", pos: i})
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", pos: i})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", pos: i})
			i++
		case r == ',':
			tokens = append(tokens, token{kind: tokComma, text: ",", pos: i})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrInvalid, string(r), i)
		}
	}

	tokens = append(tokens, token{kind: tokEOF, pos: len(runes)})
	return tokens, nil
}

// lexNumber scans a decimal literal with optional fraction and exponent
func lexNumber(runes []rune, start int) (token, int, error) {
	i := start
	for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
		i++
	}
	if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
		j := i + 1
		if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
			j++
		}
		if j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
			i = j
			for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
				i++
			}
		}
	}

	text := string(runes[start:i])
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, 0, fmt.Errorf("%w: malformed number %q at position %d", ErrInvalid, text, start)
	}
	return token{kind: tokNumber, text: text, pos: start, value: value}, i, nil
}
