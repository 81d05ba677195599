package ast

import (
	"errors"
	"fmt"
)

var ErrUnknownNodeKind = errors.New("unknown node kind")

// VisitFunc is called with the visited node and its parent. The parent is
// nil for the root.
type VisitFunc func(node Node, parent Node)

// Callbacks holds the hooks for a single node kind. Either hook may be nil.
type Callbacks struct {
	Enter VisitFunc
	Exit  VisitFunc
}

// Visitor maps node kinds to callbacks. Kinds without an entry are walked
// without hooks.
type Visitor map[Kind]Callbacks

// Walk traverses the tree depth first. For every node it calls Enter, walks
// the children in source order, then calls Exit. The first error stops the
// walk.
func Walk(root Node, visitor Visitor) error {
	return walk(root, nil, visitor)
}

func walk(node Node, parent Node, visitor Visitor) error {
	children, err := childrenOf(node)
	if err != nil {
		return err
	}

	callbacks := visitor[node.Kind()]

	if callbacks.Enter != nil {
		callbacks.Enter(node, parent)
	}

	for _, child := range children {
		if err := walk(child, node, visitor); err != nil {
			return err
		}
	}

	if callbacks.Exit != nil {
		callbacks.Exit(node, parent)
	}

	return nil
}

// childrenOf returns the child nodes in source order. Unknown node shapes
// are rejected here, before any callback fires.
func childrenOf(node Node) ([]Node, error) {
	switch node := node.(type) {
	case *CallExpression:
		return node.Params, nil

	case *NumberLiteral, *StringLiteral:
		return nil, nil

	case *Program:
		return node.Body, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownNodeKind, node)
	}
}
