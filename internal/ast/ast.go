package ast

var (
	_ Node = (*CallExpression)(nil)
	_ Node = (*NumberLiteral)(nil)
	_ Node = (*Program)(nil)
	_ Node = (*StringLiteral)(nil)
)

type Kind string

const (
	KindCallExpression Kind = "CallExpression"
	KindNumberLiteral  Kind = "NumberLiteral"
	KindProgram        Kind = "Program"
	KindStringLiteral  Kind = "StringLiteral"
)

type Node interface {
	Kind() Kind
	isNode()
}

type (
	CallExpression struct {
		Name   string
		Params []Node
	}

	NumberLiteral struct {
		Value string
	}

	Program struct {
		Body []Node
	}

	StringLiteral struct {
		Value string
	}
)

func (e CallExpression) Kind() Kind { return KindCallExpression }
func (e NumberLiteral) Kind() Kind  { return KindNumberLiteral }
func (e Program) Kind() Kind        { return KindProgram }
func (e StringLiteral) Kind() Kind  { return KindStringLiteral }

func (e CallExpression) isNode() {}
func (e NumberLiteral) isNode()  {}
func (e Program) isNode()        {}
func (e StringLiteral) isNode()  {}
