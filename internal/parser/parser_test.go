package parser_test

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/sexpcc/sexpcc/internal/ast"
	"github.com/sexpcc/sexpcc/internal/lexer"
	"github.com/sexpcc/sexpcc/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser(t *testing.T) {
	t.Run("programs", func(t *testing.T) {
		type testCase struct {
			name          string
			inputTokens   []lexer.Token
			outputProgram *ast.Program
		}

		testCases := []testCase{
			{
				name:        "empty program",
				inputTokens: []lexer.Token{},
				outputProgram: &ast.Program{
					Body: []ast.Node{},
				},
			},
			{
				name: "number statement", // 2
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeNumber, "2"),
				},
				outputProgram: &ast.Program{
					Body: []ast.Node{
						&ast.NumberLiteral{Value: "2"},
					},
				},
			},
			{
				name: "string statement", // "hi"
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeString, "hi"),
				},
				outputProgram: &ast.Program{
					Body: []ast.Node{
						&ast.StringLiteral{Value: "hi"},
					},
				},
			},
			{
				name: "call without params", // (foo)
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeName, "foo"),
					token(lexer.TokenTypeCloseParen, ")"),
				},
				outputProgram: &ast.Program{
					Body: []ast.Node{
						&ast.CallExpression{
							Name:   "foo",
							Params: []ast.Node{},
						},
					},
				},
			},
			{
				name: "call with params", // (add 2 3)
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeName, "add"),
					token(lexer.TokenTypeNumber, "2"),
					token(lexer.TokenTypeNumber, "3"),
					token(lexer.TokenTypeCloseParen, ")"),
				},
				outputProgram: &ast.Program{
					Body: []ast.Node{
						&ast.CallExpression{
							Name: "add",
							Params: []ast.Node{
								&ast.NumberLiteral{Value: "2"},
								&ast.NumberLiteral{Value: "3"},
							},
						},
					},
				},
			},
			{
				name: "string param", // (foo "bar")
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeName, "foo"),
					token(lexer.TokenTypeString, "bar"),
					token(lexer.TokenTypeCloseParen, ")"),
				},
				outputProgram: &ast.Program{
					Body: []ast.Node{
						&ast.CallExpression{
							Name: "foo",
							Params: []ast.Node{
								&ast.StringLiteral{Value: "bar"},
							},
						},
					},
				},
			},
			{
				name: "nested calls", // (add 2 (subtract 4 2))
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeName, "add"),
					token(lexer.TokenTypeNumber, "2"),
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeName, "subtract"),
					token(lexer.TokenTypeNumber, "4"),
					token(lexer.TokenTypeNumber, "2"),
					token(lexer.TokenTypeCloseParen, ")"),
					token(lexer.TokenTypeCloseParen, ")"),
				},
				outputProgram: &ast.Program{
					Body: []ast.Node{
						&ast.CallExpression{
							Name: "add",
							Params: []ast.Node{
								&ast.NumberLiteral{Value: "2"},
								&ast.CallExpression{
									Name: "subtract",
									Params: []ast.Node{
										&ast.NumberLiteral{Value: "4"},
										&ast.NumberLiteral{Value: "2"},
									},
								},
							},
						},
					},
				},
			},
			{
				name: "multiple top level nodes", // (print 1) (print 2)
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeName, "print"),
					token(lexer.TokenTypeNumber, "1"),
					token(lexer.TokenTypeCloseParen, ")"),
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeName, "print"),
					token(lexer.TokenTypeNumber, "2"),
					token(lexer.TokenTypeCloseParen, ")"),
				},
				outputProgram: &ast.Program{
					Body: []ast.Node{
						&ast.CallExpression{
							Name: "print",
							Params: []ast.Node{
								&ast.NumberLiteral{Value: "1"},
							},
						},
						&ast.CallExpression{
							Name: "print",
							Params: []ast.Node{
								&ast.NumberLiteral{Value: "2"},
							},
						},
					},
				},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				t.Log("input tokens:")
				t.Log(pretty.Sprint(tc.inputTokens))

				t.Log("expected program:")
				t.Log(pretty.Sprint(tc.outputProgram))

				program, err := parser.Parse(tc.inputTokens)
				require.NoError(t, err)

				assert.Equal(t, tc.outputProgram, program)
			})
		}
	})

	t.Run("errors", func(t *testing.T) {
		type testCase struct {
			name        string
			inputTokens []lexer.Token
			expectedErr error
		}

		testCases := []testCase{
			{
				name: "stray closing parenthesis", // )
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeCloseParen, ")"),
				},
				expectedErr: parser.ErrUnexpectedToken,
			},
			{
				name: "name outside call", // add
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeName, "add"),
				},
				expectedErr: parser.ErrUnexpectedToken,
			},
			{
				name: "missing call name", // ()
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeCloseParen, ")"),
				},
				expectedErr: parser.ErrUnexpectedToken,
			},
			{
				name: "number as call name", // (2 3)
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeNumber, "2"),
					token(lexer.TokenTypeNumber, "3"),
					token(lexer.TokenTypeCloseParen, ")"),
				},
				expectedErr: parser.ErrUnexpectedToken,
			},
			{
				name: "unclosed call", // (add 2
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeName, "add"),
					token(lexer.TokenTypeNumber, "2"),
				},
				expectedErr: parser.ErrUnexpectedEndOfInput,
			},
			{
				name: "open parenthesis at end", // (
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeOpenParen, "("),
				},
				expectedErr: parser.ErrUnexpectedEndOfInput,
			},
			{
				name: "unclosed nested call", // (add (subtract 1
				inputTokens: []lexer.Token{
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeName, "add"),
					token(lexer.TokenTypeOpenParen, "("),
					token(lexer.TokenTypeName, "subtract"),
					token(lexer.TokenTypeNumber, "1"),
				},
				expectedErr: parser.ErrUnexpectedEndOfInput,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				t.Log("input tokens:")
				t.Log(pretty.Sprint(tc.inputTokens))

				_, err := parser.Parse(tc.inputTokens)
				require.ErrorIs(t, err, tc.expectedErr)
			})
		}
	})
}

func token(tokenType lexer.TokenType, value string) lexer.Token {
	return lexer.Token{
		Type:     tokenType,
		RawValue: value,
		Value:    value,
	}
}
