package token

import "fmt"

type Type int

const (
	LParen Type = iota
	RParen
	LBracket
	RBracket
	Comma
	Ident
	Number
)

func (t Type) String() string {
	switch t {
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case Comma:
		return "','"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	}
	return "unknown"
}

// Token is a lexeme with its 1-based column in the input.
type Token struct {
	Value string
	Type  Type
	Col   int
}

// Error reports an input byte the tokenizer cannot start a token with.
type Error struct {
	Char byte
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("column %d: unexpected character %q", e.Col, e.Char)
}

// Tokenize splits a type string. Identifiers are runs of lower-case letters,
// numbers are runs of decimal digits. Whitespace is not skipped.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token

	for i := 0; i < len(input); i++ {
		c := input[i]
		col := i + 1

		switch {
		case c == '(':
			tokens = append(tokens, Token{"(", LParen, col})
		case c == ')':
			tokens = append(tokens, Token{")", RParen, col})
		case c == '[':
			tokens = append(tokens, Token{"[", LBracket, col})
		case c == ']':
			tokens = append(tokens, Token{"]", RBracket, col})
		case c == ',':
			tokens = append(tokens, Token{",", Comma, col})
		case isLetter(c):
			start := i
			for i < len(input) && isLetter(input[i]) {
				i++
			}
			tokens = append(tokens, Token{input[start:i], Ident, start + 1})
			i--
		case isDigit(c):
			start := i
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			tokens = append(tokens, Token{input[start:i], Number, start + 1})
			i--
		default:
			return nil, &Error{Char: c, Col: col}
		}
	}

	return tokens, nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
