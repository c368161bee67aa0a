package ast

import (
	"fmt"
	"strings"
)

// NumberLit is a numeric literal. IsReal is true unless every character
// of the lexeme is a digit (spec §4.4: "type is int if all digits, else
// real").
type NumberLit struct {
	Value  string
	IsReal bool
}

func (n *NumberLit) expressionNode() {}
func (n *NumberLit) Dump() string    { return fmt.Sprintf("(NUM %s)", n.Value) }

// VarExpr is a bare identifier used as a value.
type VarExpr struct {
	Name string
}

func (v *VarExpr) expressionNode() {}
func (v *VarExpr) Dump() string    { return fmt.Sprintf("(VAR %s)", v.Name) }

// ArithExpr covers +, -, *, /, % in binary form and unary +/-, where the
// spec represents a unary operator as an arithmetic node with Left
// absent (nil).
type ArithExpr struct {
	Op    string
	Left  Expression // nil for unary +/-
	Right Expression
}

func (a *ArithExpr) expressionNode() {}
func (a *ArithExpr) Dump() string {
	if a.Left == nil {
		return fmt.Sprintf("(%s %s)", a.Op, a.Right.Dump())
	}
	return fmt.Sprintf("(%s %s %s)", a.Op, a.Left.Dump(), a.Right.Dump())
}

// RelExpr covers ==, !=, <, <=, >, >=.
type RelExpr struct {
	Op    string
	Left  Expression
	Right Expression
}

func (r *RelExpr) expressionNode() {}
func (r *RelExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", r.Op, r.Left.Dump(), r.Right.Dump())
}

// LogicalExpr covers short-circuit && and ||.
type LogicalExpr struct {
	Op    string // "&&" or "||"
	Left  Expression
	Right Expression
}

func (l *LogicalExpr) expressionNode() {}
func (l *LogicalExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", l.Op, l.Left.Dump(), l.Right.Dump())
}

// NotExpr is unary "!".
type NotExpr struct {
	Operand Expression
}

func (n *NotExpr) expressionNode() {}
func (n *NotExpr) Dump() string    { return fmt.Sprintf("(! %s)", n.Operand.Dump()) }

// CallExpr is a method call. It implements both Expression and
// Statement: the grammar allows a call to appear inside an expression
// or, followed by ";", as a statement on its own — the original source
// gives the same node both roles via multiple inheritance; here both
// marker methods live on the one struct instead.
type CallExpr struct {
	Name string
	Args []Expression
}

func (c *CallExpr) expressionNode() {}
func (c *CallExpr) statementNode()  {}
func (c *CallExpr) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(CALL %s", c.Name)
	for _, a := range c.Args {
		sb.WriteString(" ")
		sb.WriteString(a.Dump())
	}
	sb.WriteString(")")
	return sb.String()
}
