package query

import (
	"fmt"
)

// Parser builds an expression tree from a filter string.
//
// Grammar, lowest precedence first:
//
//	or      = and { "OR" and }
//	and     = not { ["AND"] not }
//	not     = "NOT" not | primary
//	primary = "(" or ")" | word ( ":" | "!=" ) literal | literal
//
// Adjacent terms without an operator are joined with AND.
type Parser struct {
	lexer   *Lexer
	current Token
}

// Parse parses input. An empty or blank input yields a nil Node, which matches every row.
func Parse(input string) (Node, error) {
	p := &Parser{lexer: NewLexer(input)}
	p.advance()
	if p.current.Type == TokenEOF {
		return nil, nil
	}
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, fmt.Errorf("unexpected %s", p.current)
	}
	return node, nil
}

func (p *Parser) advance() {
	p.current = p.lexer.NextToken()
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current.Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: OpOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for {
		switch p.current.Type {
		case TokenAnd:
			p.advance()
		case TokenIdent, TokenString, TokenNot, TokenLParen:
			// implicit AND
		default:
			return left, nil
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: OpAnd, Left: left, Right: right}
	}
}

func (p *Parser) parseNot() (Node, error) {
	if p.current.Type != TokenNot {
		return p.parsePrimary()
	}
	p.advance()
	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return Not{Operand: operand}, nil
}

func (p *Parser) parsePrimary() (Node, error) {
	tok := p.current
	switch tok.Type {
	case TokenLParen:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, fmt.Errorf("expected ')' but found %s", p.current)
		}
		p.advance()
		return inner, nil

	case TokenString:
		p.advance()
		return Term{Value: tok.Value, Op: OpContains}, nil

	case TokenIdent:
		p.advance()
		switch p.current.Type {
		case TokenColon:
			p.advance()
			return p.parseLiteral(tok.Value, OpEq)
		case TokenNeq:
			p.advance()
			return p.parseLiteral(tok.Value, OpNeq)
		}
		return Term{Value: tok.Value, Op: OpContains}, nil

	default:
		return nil, fmt.Errorf("unexpected %s", tok)
	}
}

func (p *Parser) parseLiteral(column string, op Op) (Node, error) {
	tok := p.current
	if tok.Type != TokenIdent && tok.Type != TokenString {
		return nil, fmt.Errorf("expected a value after '%s%s' but found %s", column, op, tok)
	}
	p.advance()
	return Term{Column: column, Value: tok.Value, Op: op}, nil
}
