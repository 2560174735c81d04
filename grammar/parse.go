package grammar

import (
	"fmt"
	"strconv"

	"github.com/JacksonBernier523/eth-abi/errors"
	"github.com/JacksonBernier523/eth-abi/grammar/internal/token"
)

// Parse parses a type string into a descriptor. It does not normalize; pass
// the result of Normalize for user-supplied strings.
func Parse(typeStr string) (Type, error) {
	tokens, err := token.Tokenize(typeStr)
	if err != nil {
		if terr, ok := err.(*token.Error); ok {
			return nil, errors.Syntax(typeStr, terr.Col, fmt.Sprintf("unexpected character %q", terr.Char))
		}
		return nil, errors.Wrap(errors.PhaseParse, errors.KindSyntax, err, "tokenize")
	}

	p := &parser{src: typeStr, tokens: tokens}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok != nil {
		return nil, p.errorf(tok.Col, "unexpected %v %q", tok.Type, tok.Value)
	}
	return t, nil
}

// MustParse is like Parse but panics on error.
func MustParse(typeStr string) Type {
	t, err := Parse(typeStr)
	if err != nil {
		panic(err)
	}
	return t
}

type parser struct {
	src    string
	tokens []token.Token
	pos    int
}

func (p *parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) expect(typ token.Type) (*token.Token, error) {
	t := p.next()
	if t == nil {
		return nil, p.errorf(len(p.src)+1, "unexpected end of input, expected %v", typ)
	}
	if t.Type != typ {
		return nil, p.errorf(t.Col, "expected %v, got %q", typ, t.Value)
	}
	return t, nil
}

func (p *parser) errorf(col int, format string, args ...any) error {
	return errors.Syntax(p.src, col, fmt.Sprintf(format, args...))
}

func (p *parser) parseType() (Type, error) {
	t := p.peek()
	if t == nil {
		return nil, p.errorf(len(p.src)+1, "unexpected end of input, expected type")
	}
	switch t.Type {
	case token.LParen:
		return p.parseTuple()
	case token.Ident:
		return p.parseBasic()
	default:
		return nil, p.errorf(t.Col, "expected type, got %q", t.Value)
	}
}

func (p *parser) parseTuple() (Type, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	components := []Type{}
	if t := p.peek(); t != nil && t.Type == token.RParen {
		p.next()
	} else {
		for {
			c, err := p.parseType()
			if err != nil {
				return nil, err
			}
			components = append(components, c)

			t := p.next()
			if t == nil {
				return nil, p.errorf(len(p.src)+1, "unexpected end of input, expected ',' or ')'")
			}
			if t.Type == token.RParen {
				break
			}
			if t.Type != token.Comma {
				return nil, p.errorf(t.Col, "expected ',' or ')', got %q", t.Value)
			}
		}
	}

	dims, err := p.parseArrayDims()
	if err != nil {
		return nil, err
	}
	return &TupleType{Components: components, ArrayDims: dims}, nil
}

func (p *parser) parseBasic() (Type, error) {
	base, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	t := &BasicType{Base: base.Value}

	if tok := p.peek(); tok != nil && tok.Type == token.Number {
		m, err := p.digits()
		if err != nil {
			return nil, err
		}
		t.Sub = []int{m}

		if x := p.peek(); x != nil && x.Type == token.Ident && x.Value == "x" {
			p.next()
			n, err := p.digits()
			if err != nil {
				return nil, err
			}
			t.Sub = append(t.Sub, n)
		}
	}

	if t.ArrayDims, err = p.parseArrayDims(); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *parser) parseArrayDims() ([]Dim, error) {
	var dims []Dim
	for {
		t := p.peek()
		if t == nil || t.Type != token.LBracket {
			return dims, nil
		}
		p.next()

		if t := p.peek(); t != nil && t.Type == token.RBracket {
			p.next()
			dims = append(dims, Dynamic)
			continue
		}

		n, err := p.digits()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
		dims = append(dims, Dim(n))
	}
}

// digits reads a positive decimal without leading zeros.
func (p *parser) digits() (int, error) {
	t, err := p.expect(token.Number)
	if err != nil {
		return 0, err
	}
	if t.Value[0] == '0' {
		return 0, p.errorf(t.Col, "number %q must be positive without leading zeros", t.Value)
	}
	n, err := strconv.Atoi(t.Value)
	if err != nil {
		return 0, p.errorf(t.Col, "number %q out of range", t.Value)
	}
	return n, nil
}
