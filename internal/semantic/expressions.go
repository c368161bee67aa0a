package semantic

import (
	"github.com/csssaz/decafc/ast"
	"github.com/csssaz/decafc/internal/symtab"
	"github.com/csssaz/decafc/internal/tac"
)

// evalExpr lowers one expression node and returns its result name and
// declared type — the "(result-name, result-type)" pair the design
// notes restate in place of the source's shared mutable scratch
// register. Every case emits whatever TAC it needs as a side effect.
func (a *Analyzer) evalExpr(e ast.Expression) (string, symtab.ValueType) {
	switch n := e.(type) {
	case *ast.NumberLit:
		if n.IsReal {
			return n.Value, symtab.Real
		}
		return n.Value, symtab.Int
	case *ast.VarExpr:
		return a.evalVar(n)
	case *ast.ArithExpr:
		return a.evalArith(n)
	case *ast.RelExpr:
		return a.evalRel(n)
	case *ast.LogicalExpr:
		return a.evalLogical(n)
	case *ast.NotExpr:
		return a.evalNot(n)
	case *ast.CallExpr:
		return a.evalCall(n)
	default:
		a.diags.Errorf(0, "internal: unhandled expression node %T", e)
		return "0", symtab.Int
	}
}

func (a *Analyzer) evalVar(v *ast.VarExpr) (string, symtab.ValueType) {
	e := a.lookupVar(v.Name)
	if e == nil {
		a.diags.Errorf(0, "undeclared identifier %q", v.Name)
		return v.Name, symtab.Int
	}
	return v.Name, e.Type
}

// evalArith lowers +, -, *, /, % (binary) and unary +/- (Left == nil).
func (a *Analyzer) evalArith(n *ast.ArithExpr) (string, symtab.ValueType) {
	if n.Left == nil {
		rname, rtype := a.evalExpr(n.Right)
		if n.Op == "+" {
			return rname, rtype
		}
		t := a.names.temp()
		a.buf.Var(t)
		a.buf.UMinus(rname, t)
		return t, rtype
	}

	lname, ltype := a.evalExpr(n.Left)
	rname, rtype := a.evalExpr(n.Right)
	if ltype != rtype {
		a.diags.Warnf(0, "mixed int/real operands to %q", n.Op)
	}
	t := a.names.temp()
	a.buf.Var(t)
	a.buf.Arith(arithKind(n.Op), t, lname, rname)
	return t, ltype
}

var arithKinds = map[string]tac.Kind{"+": tac.ADD, "-": tac.SUB, "*": tac.MULT, "/": tac.DIVIDE, "%": tac.MOD}

func arithKind(op string) tac.Kind { return arithKinds[op] }

var relKinds = map[string]tac.Kind{
	"==": tac.EQ, "!=": tac.NE, "<": tac.LT, "<=": tac.LE, ">": tac.GT, ">=": tac.GE,
}

// evalRel lowers a relational comparison into the branch-and-assign
// shape spec §4.4 fixes: a conditional jump to rel_true_n, fall-through
// assigning 0, a goto past the true branch, the true label assigning 1,
// then the end label.
func (a *Analyzer) evalRel(n *ast.RelExpr) (string, symtab.ValueType) {
	lname, ltype := a.evalExpr(n.Left)
	rname, rtype := a.evalExpr(n.Right)
	if ltype != rtype {
		a.diags.Warnf(0, "cross-type comparison %q", n.Op)
	}
	trueLabel := a.names.label("rel_true")
	endLabel := a.names.label("rel_end")
	t := a.names.temp()
	a.buf.Var(t)
	a.buf.Rel(relKinds[n.Op], lname, rname, trueLabel)
	a.buf.Assign("0", t)
	a.buf.Goto(endLabel)
	a.buf.Label(trueLabel)
	a.buf.Assign("1", t)
	a.buf.Label(endLabel)
	return t, symtab.Int
}

// evalLogical lowers short-circuit && and || per spec §4.4.
func (a *Analyzer) evalLogical(n *ast.LogicalExpr) (string, symtab.ValueType) {
	if n.Op == "&&" {
		return a.evalAnd(n)
	}
	return a.evalOr(n)
}

func (a *Analyzer) evalAnd(n *ast.LogicalExpr) (string, symtab.ValueType) {
	falseLabel := a.names.label("and_false")
	endLabel := a.names.label("and_end")
	t := a.names.temp()
	a.buf.Var(t)

	lname, _ := a.evalExpr(n.Left)
	a.buf.Rel(tac.EQ, lname, "0", falseLabel)
	rname, _ := a.evalExpr(n.Right)
	a.buf.Rel(tac.EQ, rname, "0", falseLabel)
	a.buf.Assign("1", t)
	a.buf.Goto(endLabel)
	a.buf.Label(falseLabel)
	a.buf.Assign("0", t)
	a.buf.Label(endLabel)
	return t, symtab.Int
}

func (a *Analyzer) evalOr(n *ast.LogicalExpr) (string, symtab.ValueType) {
	trueLabel := a.names.label("or_true")
	endLabel := a.names.label("or_end")
	t := a.names.temp()
	a.buf.Var(t)

	lname, _ := a.evalExpr(n.Left)
	a.buf.Rel(tac.NE, lname, "0", trueLabel)
	rname, _ := a.evalExpr(n.Right)
	a.buf.Rel(tac.NE, rname, "0", trueLabel)
	a.buf.Assign("0", t)
	a.buf.Goto(endLabel)
	a.buf.Label(trueLabel)
	a.buf.Assign("1", t)
	a.buf.Label(endLabel)
	return t, symtab.Int
}

// evalNot lowers "!x".
func (a *Analyzer) evalNot(n *ast.NotExpr) (string, symtab.ValueType) {
	vname, vtype := a.evalExpr(n.Operand)
	if vtype != symtab.Int {
		a.diags.Warnf(0, "'!' applied to a non-integer")
	}
	trueLabel := a.names.label("not_true")
	endLabel := a.names.label("not_end")
	t := a.names.temp()
	a.buf.Var(t)
	a.buf.Rel(tac.NE, vname, "0", trueLabel)
	a.buf.Assign("1", t)
	a.buf.Goto(endLabel)
	a.buf.Label(trueLabel)
	a.buf.Assign("0", t)
	a.buf.Label(endLabel)
	return t, symtab.Int
}
