package entryql

import (
	"fmt"
	"strings"
)

// SyntaxError describes a malformed query.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("entryql: %s at offset %d", e.Msg, e.Pos)
}

// Parser parses queries into an AST.
type Parser struct {
	lexer   *Lexer
	current Token
}

// Parse parses the input string and returns the AST root node.
// A blank query yields a nil node, which matches every entry.
func Parse(input string) (Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	p := &Parser{lexer: NewLexer(input)}
	p.advance()

	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorf("unexpected %s", p.current.Type)
	}
	return node, nil
}

func (p *Parser) advance() {
	p.current = p.lexer.NextToken()
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Pos: p.current.Pos, Msg: fmt.Sprintf(format, args...)}
}

// parseOr handles OR expressions (lowest precedence).
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
		left = BinaryExpr{Op: "OR", Left: left, Right: right}
	}

	return left, nil
}

// parseAnd handles AND expressions.
func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenAnd {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: "AND", Left: left, Right: right}
	}

	return left, nil
}

// parseNot handles NOT expressions. NOT is right-associative.
func (p *Parser) parseNot() (Node, error) {
	if p.current.Type == TokenNot {
		p.advance()
		expr, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return NotExpr{Expr: expr}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles (expr), key:value, key!=value, "text" and bare words.
func (p *Parser) parsePrimary() (Node, error) {
	switch p.current.Type {
	case TokenLParen:
		p.advance()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, p.errorf("expected ')' but got %s", p.current.Type)
		}
		p.advance()
		return expr, nil

	case TokenString:
		value := p.current.Value
		p.advance()
		return MatchExpr{Value: value, Op: OpContains}, nil

	case TokenIdent:
		word := p.current.Value
		p.advance()

		switch p.current.Type {
		case TokenColon:
			key, err := p.fieldKey(word)
			if err != nil {
				return nil, err
			}
			p.advance()
			return p.parseValue(key, OpEqual)
		case TokenNeq:
			key, err := p.fieldKey(word)
			if err != nil {
				return nil, err
			}
			p.advance()
			return p.parseValue(key, OpNotEqual)
		}

		return MatchExpr{Value: word, Op: OpContains}, nil

	case TokenIllegal:
		return nil, p.errorf("illegal token %q", p.current.Value)

	default:
		return nil, p.errorf("unexpected %s", p.current.Type)
	}
}

// fieldKey normalizes a field name and rejects unknown ones.
func (p *Parser) fieldKey(word string) (string, error) {
	switch strings.ToLower(word) {
	case "value", "v":
		return "value", nil
	case "prefix":
		return "prefix", nil
	case "suffix":
		return "suffix", nil
	default:
		return "", p.errorf("unknown field %q", word)
	}
}

// parseValue parses the value part after key: or key!=
func (p *Parser) parseValue(key string, op Op) (Node, error) {
	switch p.current.Type {
	case TokenString, TokenIdent:
		value := p.current.Value
		p.advance()
		return MatchExpr{Key: key, Value: value, Op: op}, nil
	default:
		return nil, p.errorf("expected value after %s%s but got %s", key, op, p.current.Type)
	}
}
