package parser

import (
	"testing"

	"github.com/csssaz/decafc/ast"
	"github.com/csssaz/decafc/internal/lexer"
)

func parseSrc(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	rules, err := lexer.LoadMerged(lexer.DefaultRules())
	if err != nil {
		t.Fatalf("LoadMerged: %v", err)
	}
	l := lexer.New([]byte(src), rules)
	return Parse(l)
}

func TestParseSpecExample(t *testing.T) {
	const src = `class C {
	int x;
	static int main() {
		x = 1;
		return x;
	}
}`
	prog, err := parseSrc(t, src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := `(CLASS C (DECLARE int (VAR x)) (METHOD int main (= (VAR x) (NUM 1)) (RET (VAR x))))`
	if got := prog.Dump(); got != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	const src = `class C {
	static int main() {
		int x;
		x = 1 + 2 * 3;
		return x;
	}
}`
	prog, err := parseSrc(t, src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	assign := prog.Methods[0].Body[0].(*ast.AssignStmt)
	want := "(+ (NUM 1) (* (NUM 2) (NUM 3)))"
	if got := assign.Value.Dump(); got != want {
		t.Errorf("Dump() = %s, want %s", got, want)
	}
}

func TestParseLogicalAndRelational(t *testing.T) {
	const src = `class C {
	static int main() {
		int x;
		if (x < 1 && x > 0 || !(x == 2)) {
			return 1;
		}
		return 0;
	}
}`
	prog, err := parseSrc(t, src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ifStmt := prog.Methods[0].Body[0].(*ast.IfStmt)
	want := "(|| (&& (< (VAR x) (NUM 1)) (> (VAR x) (NUM 0))) (! (== (VAR x) (NUM 2))))"
	if got := ifStmt.Cond.Dump(); got != want {
		t.Errorf("Cond.Dump() = %s, want %s", got, want)
	}
}

func TestParseForLoopWithBreakContinue(t *testing.T) {
	const src = `class C {
	static int main() {
		int i;
		for (i = 0; i < 10; i++) {
			if (i == 5) {
				break;
			}
			continue;
		}
		return 0;
	}
}`
	prog, err := parseSrc(t, src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	forStmt := prog.Methods[0].Body[0].(*ast.ForStmt)
	if forStmt.Init.Target.Name != "i" {
		t.Errorf("Init.Target.Name = %q, want %q", forStmt.Init.Target.Name, "i")
	}
	if forStmt.Step.Op != "++" {
		t.Errorf("Step.Op = %q, want %q", forStmt.Step.Op, "++")
	}
	if len(forStmt.Body.Statements) != 2 {
		t.Fatalf("len(Body.Statements) = %d, want 2", len(forStmt.Body.Statements))
	}
	innerIf := forStmt.Body.Statements[0].(*ast.IfStmt)
	if _, ok := innerIf.Then.Statements[0].(*ast.BreakStmt); !ok {
		t.Errorf("innerIf.Then.Statements[0] = %T, want *ast.BreakStmt", innerIf.Then.Statements[0])
	}
	if _, ok := forStmt.Body.Statements[1].(*ast.ContinueStmt); !ok {
		t.Errorf("Body.Statements[1] = %T, want *ast.ContinueStmt", forStmt.Body.Statements[1])
	}
}

func TestParseMethodCall(t *testing.T) {
	const src = `class C {
	static int main() {
		int x;
		x = add(1, 2);
		writeln(x);
		return 0;
	}
}`
	prog, err := parseSrc(t, src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	assign := prog.Methods[0].Body[0].(*ast.AssignStmt)
	call, ok := assign.Value.(*ast.CallExpr)
	if !ok {
		t.Fatalf("assign.Value = %T, want *ast.CallExpr", assign.Value)
	}
	if call.Name != "add" || len(call.Args) != 2 {
		t.Errorf("call = %+v, want add(1, 2)", call)
	}
	if _, ok := prog.Methods[0].Body[1].(*ast.CallExpr); !ok {
		t.Errorf("Body[1] = %T, want *ast.CallExpr (call-as-statement)", prog.Methods[0].Body[1])
	}
}

func TestParseSyntaxErrorReportsLine(t *testing.T) {
	const src = `class C {
	static int main() {
		int x
		return x;
	}
}`
	_, err := parseSrc(t, src)
	if err == nil {
		t.Fatal("expected a syntax error, got nil")
	}
	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("err = %T, want *SyntaxError", err)
	}
	if synErr.Line != 4 {
		t.Errorf("Line = %d, want 4", synErr.Line)
	}
}

// TestParseIsDeterministic checks that re-lexing and re-parsing the same
// source twice yields byte-identical AST dumps, the determinism the
// analyzer's "two runs on the same AST produce byte-identical TAC"
// guarantee depends on.
func TestParseIsDeterministic(t *testing.T) {
	const src = `class C {
	int a, b;
	static int main() {
		int i;
		for (i = 0; i < a + b; i++) {
			if (i == a) {
				continue;
			}
			writeln(i);
		}
		return 0;
	}
}`
	first, err := parseSrc(t, src)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	second, err := parseSrc(t, src)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if first.Dump() != second.Dump() {
		t.Errorf("Dump() not stable across independent parses:\n%s\nvs\n%s", first.Dump(), second.Dump())
	}
}

func TestParseRealLiteral(t *testing.T) {
	const src = `class C {
	static real main() {
		real x;
		x = 3.14;
		return x;
	}
}`
	prog, err := parseSrc(t, src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	assign := prog.Methods[0].Body[0].(*ast.AssignStmt)
	lit, ok := assign.Value.(*ast.NumberLit)
	if !ok {
		t.Fatalf("assign.Value = %T, want *ast.NumberLit", assign.Value)
	}
	if !lit.IsReal || lit.Value != "3.14" {
		t.Errorf("lit = %+v, want IsReal=true Value=3.14", lit)
	}
}
