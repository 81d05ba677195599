package parser

import (
	"errors"
	"fmt"

	"github.com/sexpcc/sexpcc/internal/ast"
	"github.com/sexpcc/sexpcc/internal/lexer"
)

var (
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrUnexpectedToken      = errors.New("unexpected token")
)

type Parser struct {
	tokens []lexer.Token
	pos    int
}

func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse consumes the whole token sequence and returns the program.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return NewParser(tokens).Parse()
}

func (p *Parser) Parse() (*ast.Program, error) {
	program := ast.Program{
		Body: make([]ast.Node, 0),
	}

	for p.pos < len(p.tokens) {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}

		program.Body = append(program.Body, node)
	}

	return &program, nil
}

func (p *Parser) parseNode() (ast.Node, error) {
	token, err := p.readToken()
	if err != nil {
		return nil, err
	}

	switch token.Type {
	case lexer.TokenTypeNumber:
		return &ast.NumberLiteral{Value: token.Value}, nil

	case lexer.TokenTypeString:
		return &ast.StringLiteral{Value: token.Value}, nil

	case lexer.TokenTypeOpenParen:
		return p.parseCallExpression()

	default:
		return nil, fmt.Errorf("%w: %s %q at %s", ErrUnexpectedToken, token.Type, token.Value, token.Position.Start)
	}
}

// parseCallExpression parses a call after its opening parenthesis has been
// consumed. Only the closing parenthesis ends the parameter list.
func (p *Parser) parseCallExpression() (ast.Node, error) {
	name, err := p.readToken()
	if err != nil {
		return nil, err
	}

	if name.Type != lexer.TokenTypeName {
		return nil, fmt.Errorf("%w: expected call name, got %s %q at %s", ErrUnexpectedToken, name.Type, name.Value, name.Position.Start)
	}

	call := ast.CallExpression{
		Name:   name.Value,
		Params: make([]ast.Node, 0),
	}

	for {
		token, err := p.peekToken()
		if err != nil {
			return nil, err
		}

		if token.Type == lexer.TokenTypeCloseParen {
			// consume the closing parenthesis
			_, _ = p.readToken()

			return &call, nil
		}

		param, err := p.parseNode()
		if err != nil {
			return nil, err
		}

		call.Params = append(call.Params, param)
	}
}

func (p *Parser) peekToken() (*lexer.Token, error) {
	if p.pos >= len(p.tokens) {
		return nil, ErrUnexpectedEndOfInput
	}

	return &p.tokens[p.pos], nil
}

func (p *Parser) readToken() (*lexer.Token, error) {
	if p.pos >= len(p.tokens) {
		return nil, ErrUnexpectedEndOfInput
	}

	token := &p.tokens[p.pos]
	p.pos++

	return token, nil
}
