// Package semantic is the single tree walk that populates the scoped
// symbol table and emits three-address code from an *ast.Program,
// per spec §4.4. It is the largest component: declaration/typing/
// return/flow checks live here, alongside the TAC lowering rules for
// every expression and statement shape.
package semantic

import (
	"github.com/csssaz/decafc/ast"
	"github.com/csssaz/decafc/internal/cerrors"
	"github.com/csssaz/decafc/internal/symtab"
	"github.com/csssaz/decafc/internal/tac"
)

// Analyzer carries all mutable walk state: the symbol table, the TAC
// buffer being appended to, the fresh-name counters, the enclosing
// method name (empty at class scope), and the enclosing-loop stack for
// break/continue.
type Analyzer struct {
	syms  *symtab.Table
	buf   *tac.Buffer
	names *namer
	diags *cerrors.Diagnostics

	method string // enclosing method name, "" at class scope
	loops  []loopFrame
}

// Result is what Analyze returns: the populated symbol table, the TAC
// listing, and every diagnostic raised during the walk.
type Result struct {
	Symbols     *symtab.Table
	TAC         *tac.Buffer
	Diagnostics *cerrors.Diagnostics
}

// Analyze runs the full semantic walk over prog and returns the symbol
// table, TAC listing, and diagnostics. It always completes the walk —
// callers check Diagnostics.HasErrors() to decide whether the TAC is
// usable, per spec §7 ("errors... abort compilation" means the overall
// compile fails, not that the walk stops early).
func Analyze(prog *ast.Program) *Result {
	a := &Analyzer{
		syms:  symtab.New(),
		buf:   tac.NewBuffer(),
		names: newNamer(),
		diags: &cerrors.Diagnostics{},
	}
	a.analyzeProgram(prog)
	return &Result{Symbols: a.syms, TAC: a.buf, Diagnostics: a.diags}
}

// analyzeProgram lowers the whole program: class-scope variables, the
// GOTO main entry jump, then every method in declaration order. Method
// calls resolve only against methods already installed by the time
// they're lowered — a strict single left-to-right walk, so a call to a
// method declared later in the file is reported as undeclared (see
// DESIGN.md).
func (a *Analyzer) analyzeProgram(prog *ast.Program) {
	for _, decl := range prog.Vars {
		a.declareVars(decl, "")
	}
	a.buf.Goto("main")
	for _, m := range prog.Methods {
		a.analyzeMethod(m)
	}
	if e := a.syms.Lookup("", "main"); e == nil || e.Kind != symtab.Method {
		a.diags.Errorf(0, "program has no main method")
	}
}

// declareVars installs each name in decl at scope and emits its VAR
// instruction; it serves both class-scope variables and method locals.
// Method parameters, which emit FPARAM instead, call declareOne
// directly.
func (a *Analyzer) declareVars(decl *ast.VarDecl, scope string) {
	for _, name := range decl.Names {
		a.declareOne(scope, name, decl.Type)
		a.buf.Var(name)
	}
}

// declareOne installs one (scope, name) entry, reporting a redeclaration
// error instead of overwriting if the key is already taken.
func (a *Analyzer) declareOne(scope, name string, vt symtab.ValueType) {
	if a.syms.Has(scope, name) {
		a.diags.Errorf(0, "%q already declared in this scope", name)
		return
	}
	a.syms.Add(symtab.Entry{Name: name, Scope: scope, Kind: symtab.Variable, Type: vt})
}

// lookupVar applies the analyzer's scope-fallback lookup policy:
// method scope first, then class scope.
func (a *Analyzer) lookupVar(name string) *symtab.Entry {
	if a.method != "" {
		if e := a.syms.Lookup(a.method, name); e != nil {
			return e
		}
	}
	return a.syms.Lookup("", name)
}

// analyzeMethod lowers one method declaration: install its global-scope
// signature entry and defensive self-shadow, emit FPARAM/VAR for
// parameters and locals, walk the body, and guarantee a trailing RETURN.
func (a *Analyzer) analyzeMethod(m *ast.Method) {
	paramTypes := make([]symtab.ValueType, len(m.Params))
	for i, p := range m.Params {
		paramTypes[i] = p.Type
	}
	sig := symtab.Signature(paramTypes)

	if a.syms.Has("", m.Name) {
		a.diags.Errorf(0, "method %q already declared", m.Name)
	} else {
		a.syms.Add(symtab.Entry{Name: m.Name, Scope: "", Kind: symtab.Method, Type: m.ReturnType, Sig: sig})
	}

	a.buf.Label(m.Name)

	prevMethod, prevLoops := a.method, a.loops
	a.method = m.Name
	a.loops = nil
	defer func() { a.method, a.loops = prevMethod, prevLoops }()

	if a.syms.Has(m.Name, m.Name) {
		a.diags.Errorf(0, "%q already declared in this scope", m.Name)
	} else {
		a.syms.Add(symtab.Entry{Name: m.Name, Scope: m.Name, Kind: symtab.Method, Type: m.ReturnType, Sig: sig})
	}

	for _, p := range m.Params {
		a.declareOne(m.Name, p.Name, p.Type)
		a.buf.FParam(p.Name)
	}
	for _, decl := range m.Locals {
		a.declareVars(decl, m.Name)
	}
	for _, s := range m.Body {
		a.analyzeStmt(s)
	}
	if k, ok := a.buf.LastKind(); !ok || k != tac.RETURN {
		a.buf.Return()
	}
}
