package codegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sexpcc/sexpcc/internal/cast"
)

var ErrUnknownNodeKind = errors.New("unknown node kind")

// Generate renders a target tree as source text. Any node can be the root,
// rendering a full program joins its statements with newlines.
func Generate(node cast.Node) (string, error) {
	switch node := node.(type) {
	case *cast.CallExpression:
		return generateCallExpression(node)

	case *cast.ExpressionStatement:
		return generateExpressionStatement(node)

	case *cast.Identifier:
		return node.Name, nil

	case *cast.NumberLiteral:
		return node.Value, nil

	case *cast.Program:
		return generateProgram(node)

	case *cast.StringLiteral:
		return `"` + node.Value + `"`, nil

	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownNodeKind, node)
	}
}

func generateCallExpression(call *cast.CallExpression) (string, error) {
	callee, err := Generate(call.Callee)
	if err != nil {
		return "", err
	}

	arguments := make([]string, 0, len(call.Arguments))
	for _, argument := range call.Arguments {
		value, err := Generate(argument)
		if err != nil {
			return "", err
		}

		arguments = append(arguments, value)
	}

	return callee + "(" + strings.Join(arguments, ",") + ")", nil
}

func generateExpressionStatement(statement *cast.ExpressionStatement) (string, error) {
	expression, err := Generate(statement.Expression)
	if err != nil {
		return "", err
	}

	return expression + ";", nil
}

func generateProgram(program *cast.Program) (string, error) {
	statements := make([]string, 0, len(program.Body))
	for _, statement := range program.Body {
		value, err := Generate(statement)
		if err != nil {
			return "", err
		}

		statements = append(statements, value)
	}

	return strings.Join(statements, "\n"), nil
}
