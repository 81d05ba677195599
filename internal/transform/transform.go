package transform

import (
	"github.com/sexpcc/sexpcc/internal/ast"
	"github.com/sexpcc/sexpcc/internal/cast"
)

// Transform rebuilds a source tree as a fresh C style tree. The source tree
// is never modified.
func Transform(program *ast.Program) (*cast.Program, error) {
	target := cast.Program{
		Body: make([]cast.Stmt, 0),
	}

	// appendTo maps a source node to the function that places a finished
	// child expression into the matching slot of the target tree. Entries
	// are registered on enter, before any child of the node is visited,
	// and the map only lives for this one pass.
	appendTo := make(map[ast.Node]func(cast.Expr))

	// children of the root each become their own statement
	appendTo[program] = func(expr cast.Expr) {
		target.Body = append(target.Body, &cast.ExpressionStatement{Expression: expr})
	}

	visitor := ast.Visitor{
		ast.KindCallExpression: ast.Callbacks{
			Enter: func(node ast.Node, parent ast.Node) {
				source := node.(*ast.CallExpression)

				call := cast.CallExpression{
					Callee: &cast.Identifier{
						Name: source.Name,
					},
					Arguments: make([]cast.Expr, 0),
				}

				appendTo[node] = func(expr cast.Expr) {
					call.Arguments = append(call.Arguments, expr)
				}

				destination(appendTo, parent)(&call)
			},
		},
		ast.KindNumberLiteral: ast.Callbacks{
			Enter: func(node ast.Node, parent ast.Node) {
				literal := node.(*ast.NumberLiteral)

				destination(appendTo, parent)(&cast.NumberLiteral{Value: literal.Value})
			},
		},
		ast.KindStringLiteral: ast.Callbacks{
			Enter: func(node ast.Node, parent ast.Node) {
				literal := node.(*ast.StringLiteral)

				destination(appendTo, parent)(&cast.StringLiteral{Value: literal.Value})
			},
		},
	}

	if err := ast.Walk(program, visitor); err != nil {
		return nil, err
	}

	return &target, nil
}

// destination returns the append function registered for parent. The walker
// enters a parent before any of its children, so the entry must exist.
func destination(appendTo map[ast.Node]func(cast.Expr), parent ast.Node) func(cast.Expr) {
	dest, ok := appendTo[parent]
	invariant(!ok, "transform: parent node has no destination")

	return dest
}

func invariant(assertion bool, message string) {
	if assertion {
		panic(message)
	}
}
