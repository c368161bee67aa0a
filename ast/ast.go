// Package ast defines the typed Abstract Syntax Tree node variants for
// decafc: expression nodes always represent a value, statement nodes
// never do (with the single exception of a method call, which is both),
// and the program owns the entire tree.
package ast

import (
	"fmt"
	"strings"

	"github.com/csssaz/decafc/internal/symtab"
)

// Node is the base interface every AST node implements: an S-expression
// dump in the format spec §6 fixes byte-for-byte.
type Node interface {
	Dump() string
}

// Expression is any node that produces a typed value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action and produces no value.
type Statement interface {
	Node
	statementNode()
}

// VarDecl is one "type var_list ;" declaration group, used both at
// class scope and inside a method body.
type VarDecl struct {
	Type  symtab.ValueType
	Names []string
}

func (d *VarDecl) Dump() string {
	var sb strings.Builder
	sb.WriteString("(DECLARE ")
	sb.WriteString(d.Type.String())
	for _, n := range d.Names {
		fmt.Fprintf(&sb, " (VAR %s)", n)
	}
	sb.WriteString(")")
	return sb.String()
}

// Param is one "type Ident" entry in a method's parameter list.
type Param struct {
	Type symtab.ValueType
	Name string
}

func (p *Param) Dump() string {
	return fmt.Sprintf("(PARAM %s (VAR %s))", p.Type, p.Name)
}

// Method is one "static ret_type Ident ( params ) { var_decls stmt_list }"
// declaration.
type Method struct {
	ReturnType symtab.ValueType
	Name       string
	Params     []*Param
	Locals     []*VarDecl
	Body       []Statement
}

func (m *Method) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(METHOD %s %s", m.ReturnType, m.Name)
	for _, p := range m.Params {
		sb.WriteString(" ")
		sb.WriteString(p.Dump())
	}
	for _, d := range m.Locals {
		sb.WriteString(" ")
		sb.WriteString(d.Dump())
	}
	for _, s := range m.Body {
		sb.WriteString(" ")
		sb.WriteString(s.Dump())
	}
	sb.WriteString(")")
	return sb.String()
}

// Program is the root node: a class name, its ordered variable
// declarations, and its ordered method declarations.
type Program struct {
	ClassName string
	Vars      []*VarDecl
	Methods   []*Method
}

func (p *Program) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(CLASS %s", p.ClassName)
	for _, d := range p.Vars {
		sb.WriteString(" ")
		sb.WriteString(d.Dump())
	}
	for _, m := range p.Methods {
		sb.WriteString(" ")
		sb.WriteString(m.Dump())
	}
	sb.WriteString(")")
	return sb.String()
}
