package semantic

import (
	"strings"

	"github.com/csssaz/decafc/ast"
	"github.com/csssaz/decafc/internal/symtab"
)

// evalCall lowers a method call, used both as an expression and (via
// analyzeStmt) as a standalone statement — the two syntactic roles
// spec §3 documents for the same node. Arguments are always evaluated
// left to right before any APARAM is emitted, so side effects happen
// even for the arguments write/writeln end up discarding.
func (a *Analyzer) evalCall(call *ast.CallExpr) (string, symtab.ValueType) {
	argNames := make([]string, len(call.Args))
	argTypes := make([]symtab.ValueType, len(call.Args))
	for i, arg := range call.Args {
		argNames[i], argTypes[i] = a.evalExpr(arg)
	}

	if call.Name == "write" || call.Name == "writeln" {
		if len(argNames) > 1 {
			a.diags.Warnf(0, "too many arguments to %q", call.Name)
		}
		if len(argNames) >= 1 {
			a.buf.AParam(argNames[0])
		}
		a.buf.Call(call.Name)
		return call.Name, symtab.Void
	}

	entry := a.syms.Lookup("", call.Name)
	retType := symtab.Void
	switch {
	case entry == nil:
		a.diags.Errorf(0, "call to undeclared method %q", call.Name)
	case entry.Kind != symtab.Method:
		a.diags.Errorf(0, "%q is not a method", call.Name)
	default:
		retType = entry.Type
		checkSignature(a, call.Name, entry.Sig, argTypes)
	}

	for _, n := range argNames {
		a.buf.AParam(n)
	}
	a.buf.Call(call.Name)
	return call.Name, retType
}

// checkSignature warns on arity or positional-type mismatch between the
// declared signature and the actual call-site arguments.
func checkSignature(a *Analyzer, name, sig string, argTypes []symtab.ValueType) {
	want := splitSignature(sig)
	if len(want) != len(argTypes) {
		a.diags.Warnf(0, "call to %q passes %d argument(s), expected %d", name, len(argTypes), len(want))
		return
	}
	for i, w := range want {
		if w != argTypes[i].String() {
			a.diags.Warnf(0, "call to %q: argument %d is %s, expected %s", name, i+1, argTypes[i], w)
		}
	}
}

func splitSignature(sig string) []string {
	if sig == "" {
		return nil
	}
	return strings.Split(sig, "::")
}
