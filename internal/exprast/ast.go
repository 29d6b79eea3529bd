package exprast

import (
	"fmt"
	"strings"

	"github.com/tschaub/openlayers/internal/valuetype"
)

// Node is the base interface every expression tree node implements.
type Node interface {
	// Type is the declared result type of this node.
	Type() valuetype.Type
	// String renders the node for debugging; it is not a re-encoding of
	// the original expression.
	String() string
}

// Expression is any node that can appear as an argument or as the root of
// a parsed tree. The expression tree has exactly two variants.
type Expression interface {
	Node
	expressionNode()
}

// Literal is a value that already conforms to its declared type.
type Literal struct {
	ValueType valuetype.Type
	Value     any
}

func (l *Literal) expressionNode()         {}
func (l *Literal) Type() valuetype.Type    { return l.ValueType }
func (l *Literal) String() string          { return fmt.Sprintf("%v", l.Value) }

// IsLiteral reports whether e is a *Literal, used by operators like
// palette that require a literal (not a call) argument.
func IsLiteral(e Expression) bool {
	_, ok := e.(*Literal)
	return ok
}

// Call is an operator applied to already-typed argument nodes.
type Call struct {
	ValueType valuetype.Type
	Operator  string
	Args      []Expression
}

func (c *Call) expressionNode()      {}
func (c *Call) Type() valuetype.Type { return c.ValueType }

func (c *Call) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(c.Operator)
	for _, arg := range c.Args {
		sb.WriteString(", ")
		sb.WriteString(arg.String())
	}
	sb.WriteString("]")
	return sb.String()
}
