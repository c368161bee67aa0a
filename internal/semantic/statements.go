package semantic

import (
	"github.com/csssaz/decafc/ast"
	"github.com/csssaz/decafc/internal/symtab"
	"github.com/csssaz/decafc/internal/tac"
)

// analyzeStmt lowers one statement. Statements never leave an
// expression result behind — only TAC side effects.
func (a *Analyzer) analyzeStmt(s ast.Statement) {
	switch n := s.(type) {
	case *ast.AssignStmt:
		a.analyzeAssign(n)
	case *ast.IncrDecrStmt:
		a.analyzeIncrDecr(n)
	case *ast.ReturnStmt:
		a.analyzeReturn(n)
	case *ast.BreakStmt:
		a.analyzeBreak()
	case *ast.ContinueStmt:
		a.analyzeContinue()
	case *ast.BlockStmt:
		for _, inner := range n.Statements {
			a.analyzeStmt(inner)
		}
	case *ast.IfStmt:
		a.analyzeIf(n)
	case *ast.ForStmt:
		a.analyzeFor(n)
	case *ast.CallExpr:
		a.evalCall(n)
	default:
		a.diags.Errorf(0, "internal: unhandled statement node %T", s)
	}
}

func (a *Analyzer) analyzeAssign(n *ast.AssignStmt) {
	target := a.lookupVar(n.Target.Name)
	if target == nil {
		a.diags.Errorf(0, "undeclared identifier %q", n.Target.Name)
	}
	value, vtype := a.evalExpr(n.Value)
	if target != nil && target.Type != vtype {
		a.diags.Warnf(0, "assigning %s to %s variable %q", vtype, target.Type, n.Target.Name)
	}
	a.buf.Assign(value, n.Target.Name)
}

// analyzeIncrDecr lowers "v++"/"v--" to "ADD/SUB v (1|1.0) v".
func (a *Analyzer) analyzeIncrDecr(n *ast.IncrDecrStmt) {
	entry := a.lookupVar(n.Var.Name)
	if entry == nil {
		a.diags.Errorf(0, "undeclared identifier %q", n.Var.Name)
	}
	one := "1"
	if entry != nil && entry.Type == symtab.Real {
		one = "1.0"
	}
	kind := tac.ADD
	if n.Op == "--" {
		kind = tac.SUB
	}
	a.buf.Arith(kind, n.Var.Name, n.Var.Name, one)
}

// analyzeReturn lowers "return [expr] ;", checking the returned value's
// presence and type against the enclosing method's declared return type.
func (a *Analyzer) analyzeReturn(n *ast.ReturnStmt) {
	declared := symtab.Void
	if e := a.syms.Lookup("", a.method); e != nil {
		declared = e.Type
	}
	if n.Value == nil {
		if declared != symtab.Void {
			a.diags.Errorf(0, "method %q must return a value", a.method)
		}
		a.buf.Return()
		return
	}
	if declared == symtab.Void {
		a.diags.Errorf(0, "method %q must not return a value", a.method)
	}
	name, vtype := a.evalExpr(n.Value)
	if declared != symtab.Void && vtype != declared {
		a.diags.Warnf(0, "returning %s from method %q declared %s", vtype, a.method, declared)
	}
	a.buf.Assign(name, a.method)
	a.buf.Return()
}

// analyzeBreak lowers "break ;" to a jump to the enclosing loop's end
// label, or reports an error when there is no enclosing loop.
func (a *Analyzer) analyzeBreak() {
	f, ok := a.currentLoop()
	if !ok {
		a.diags.Errorf(0, "'break' outside a loop")
		return
	}
	a.buf.Goto(f.endLabel)
}

// analyzeContinue lowers "continue ;" to a jump to the enclosing loop's
// increment label.
func (a *Analyzer) analyzeContinue() {
	f, ok := a.currentLoop()
	if !ok {
		a.diags.Errorf(0, "'continue' outside a loop")
		return
	}
	a.buf.Goto(f.incrLabel)
}

// analyzeIf lowers "if (cond) then [else else]" per spec §4.4: branch
// to the then-block's label on a true condition, the else path (if any)
// runs as the fall-through, then a goto past the then-block to the end
// label — uniform whether or not an else is present.
func (a *Analyzer) analyzeIf(n *ast.IfStmt) {
	cond, ctype := a.evalExpr(n.Cond)
	if ctype != symtab.Int {
		a.diags.Warnf(0, "non-integer condition in 'if'")
	}
	thenLabel := a.names.label("true_block")
	endLabel := a.names.label("if_end")

	a.buf.Rel(tac.NE, cond, "0", thenLabel)
	if n.Else != nil {
		a.analyzeStmt(n.Else)
	}
	a.buf.Goto(endLabel)
	a.buf.Label(thenLabel)
	a.analyzeStmt(n.Then)
	a.buf.Label(endLabel)
}

// analyzeFor lowers "for (init; cond; step) body" per spec §4.4.
func (a *Analyzer) analyzeFor(n *ast.ForStmt) {
	a.analyzeAssign(n.Init)

	exprLabel := a.names.label("for_expr")
	incrLabel := a.names.label("for_incr")
	endLabel := a.names.label("for_end")

	a.buf.Label(exprLabel)
	cond, ctype := a.evalExpr(n.Cond)
	if ctype != symtab.Int {
		a.diags.Warnf(0, "non-integer condition in 'for'")
	}
	a.buf.Rel(tac.EQ, cond, "0", endLabel)

	a.pushLoop(loopFrame{endLabel: endLabel, incrLabel: incrLabel})
	a.analyzeStmt(n.Body)
	a.popLoop()

	a.buf.Label(incrLabel)
	a.analyzeIncrDecr(n.Step)
	a.buf.Goto(exprLabel)
	a.buf.Label(endLabel)
}
