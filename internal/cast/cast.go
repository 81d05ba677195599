// Package cast defines the C style call syntax tree emitted by the compiler
// backend. Source nodes (package ast) and target nodes never mix in one tree.
package cast

var (
	_ Expr = (*CallExpression)(nil)
	_ Stmt = (*ExpressionStatement)(nil)
	_ Expr = (*Identifier)(nil)
	_ Expr = (*NumberLiteral)(nil)
	_ Node = (*Program)(nil)
	_ Expr = (*StringLiteral)(nil)
)

type Node interface {
	isNode()
}

type Stmt interface {
	Node
	isStmt()
}

type Expr interface {
	Node
	isExpr()
}

type (
	CallExpression struct {
		Callee    *Identifier
		Arguments []Expr
	}

	ExpressionStatement struct {
		Expression Expr
	}

	Identifier struct {
		Name string
	}

	NumberLiteral struct {
		Value string
	}

	Program struct {
		Body []Stmt
	}

	StringLiteral struct {
		Value string
	}
)

func (e CallExpression) isNode()      {}
func (e ExpressionStatement) isNode() {}
func (e Identifier) isNode()          {}
func (e NumberLiteral) isNode()       {}
func (e Program) isNode()             {}
func (e StringLiteral) isNode()       {}

func (e CallExpression) isExpr() {}
func (e Identifier) isExpr()     {}
func (e NumberLiteral) isExpr()  {}
func (e StringLiteral) isExpr()  {}

func (e ExpressionStatement) isStmt() {}
