package sexp

import (
	"fmt"
	"io"
	"strings"
)

// Parse reads every top-level expression from r.
func Parse(r io.Reader) ([]Node, error) {
	p := &parser{lex: newLexer(r)}
	return p.parseAll()
}

// ParseString reads every top-level expression from s.
func ParseString(s string) ([]Node, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	lex *lexer
	cur token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) parseAll() ([]Node, error) {
	var out []Node
	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.cur.typ != tokenEOF {
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (p *parser) parseExpr() (Node, error) {
	switch p.cur.typ {
	case tokenLeftParen:
		return p.parseList()
	case tokenSymbol:
		return Symbol(p.cur.value), nil
	case tokenString:
		return Quoted(p.cur.value), nil
	case tokenRightParen:
		return nil, fmt.Errorf("line %d: unexpected ')'", p.cur.line)
	default:
		return nil, fmt.Errorf("line %d: unexpected end of input", p.cur.line)
	}
}

func (p *parser) parseList() (Node, error) {
	list := &List{Line: p.cur.line}
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.cur.typ {
		case tokenRightParen:
			return list, nil
		case tokenEOF:
			return nil, fmt.Errorf("line %d: unclosed list", list.Line)
		}
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, n)
	}
}
