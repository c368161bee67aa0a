package semantic

import (
	"strings"
	"testing"

	"github.com/csssaz/decafc/internal/lexer"
	"github.com/csssaz/decafc/internal/parser"
)

func analyze(t *testing.T, src string) *Result {
	t.Helper()
	rules, err := lexer.LoadMerged(lexer.DefaultRules())
	if err != nil {
		t.Fatalf("LoadMerged: %v", err)
	}
	l := lexer.New([]byte(src), rules)
	prog, err := parser.Parse(l)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return Analyze(prog)
}

func tacText(t *testing.T, r *Result) string {
	t.Helper()
	var sb strings.Builder
	if err := r.TAC.WriteTo(&sb); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	return sb.String()
}

// TestAnalyzeSpecExample checks the worked example's TAC listing and
// symbol-table contents byte for byte.
func TestAnalyzeSpecExample(t *testing.T) {
	const src = `class C {
	int x;
	static int main() {
		x = 1;
		return x;
	}
}`
	r := analyze(t, src)
	if r.Diagnostics.HasErrors() {
		t.Fatalf("unexpected errors: %v", r.Diagnostics.All())
	}

	want := "VAR x\nGOTO main\nmain:\n1 = x\nx = main\nRETURN\n"
	if got := tacText(t, r); got != want {
		t.Errorf("TAC =\n%s\nwant\n%s", got, want)
	}

	wantEntries := []string{
		"(x,,Variable,int,)",
		"(main,,Method,int,)",
		"(main,main,Method,int,)",
	}
	entries := r.Symbols.Entries()
	if len(entries) != len(wantEntries) {
		t.Fatalf("got %d entries, want %d: %v", len(entries), len(wantEntries), entries)
	}
	for i, e := range entries {
		if got := e.Dump(); got != wantEntries[i] {
			t.Errorf("entries[%d] = %s, want %s", i, got, wantEntries[i])
		}
	}
}

// TestAnalyzeShortCircuitAnd checks the exact TAC shape of a short
// circuit "&&" inside an if-statement with no else branch.
func TestAnalyzeShortCircuitAnd(t *testing.T) {
	const src = `class C {
	int a, b;
	static int main() {
		if (a && b) {
			return 1;
		}
		return 0;
	}
}`
	r := analyze(t, src)
	if r.Diagnostics.HasErrors() {
		t.Fatalf("unexpected errors: %v", r.Diagnostics.All())
	}

	want := strings.Join([]string{
		"VAR a",
		"VAR b",
		"GOTO main",
		"main:",
		"VAR t0",
		"if a == 0 goto and_false_0",
		"if b == 0 goto and_false_0",
		"1 = t0",
		"GOTO and_end_1",
		"and_false_0:",
		"0 = t0",
		"and_end_1:",
		"if t0 != 0 goto true_block_2",
		"GOTO if_end_3",
		"true_block_2:",
		"1 = main",
		"RETURN",
		"if_end_3:",
		"0 = main",
		"RETURN",
		"",
	}, "\n")
	if got := tacText(t, r); got != want {
		t.Errorf("TAC =\n%s\nwant\n%s", got, want)
	}
}

// TestAnalyzeForBreak checks label numbering across a for-loop
// whose body breaks unconditionally.
func TestAnalyzeForBreak(t *testing.T) {
	const src = `class C {
	static int main() {
		int i;
		for (i = 0; i < 10; i++) {
			break;
		}
		return 0;
	}
}`
	r := analyze(t, src)
	if r.Diagnostics.HasErrors() {
		t.Fatalf("unexpected errors: %v", r.Diagnostics.All())
	}

	want := strings.Join([]string{
		"GOTO main",
		"main:",
		"VAR i",
		"0 = i",
		"for_expr_0:",
		"VAR t0",
		"if i < 10 goto rel_true_3",
		"0 = t0",
		"GOTO rel_end_4",
		"rel_true_3:",
		"1 = t0",
		"rel_end_4:",
		"if t0 == 0 goto for_end_2",
		"GOTO for_end_2",
		"for_incr_1:",
		"i = i + 1",
		"GOTO for_expr_0",
		"for_end_2:",
		"0 = main",
		"RETURN",
		"",
	}, "\n")
	if got := tacText(t, r); got != want {
		t.Errorf("TAC =\n%s\nwant\n%s", got, want)
	}
}

func TestAnalyzeMissingMainIsError(t *testing.T) {
	const src = `class C {
	static void setup() {
	}
}`
	r := analyze(t, src)
	if !r.Diagnostics.HasErrors() {
		t.Fatal("expected an error for a program with no main method")
	}
	found := false
	for _, d := range r.Diagnostics.All() {
		if strings.Contains(d.Message, "no main method") {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want one mentioning \"no main method\"", r.Diagnostics.All())
	}
}

func TestAnalyzeBreakOutsideLoopIsError(t *testing.T) {
	const src = `class C {
	static int main() {
		break;
		return 0;
	}
}`
	r := analyze(t, src)
	if !r.Diagnostics.HasErrors() {
		t.Fatal("expected an error for 'break' outside a loop")
	}
}

func TestAnalyzeContinueOutsideLoopIsError(t *testing.T) {
	const src = `class C {
	static int main() {
		continue;
		return 0;
	}
}`
	r := analyze(t, src)
	if !r.Diagnostics.HasErrors() {
		t.Fatal("expected an error for 'continue' outside a loop")
	}
}

func TestAnalyzeUndeclaredVariableIsError(t *testing.T) {
	const src = `class C {
	static int main() {
		return y;
	}
}`
	r := analyze(t, src)
	if !r.Diagnostics.HasErrors() {
		t.Fatal("expected an error for an undeclared variable")
	}
}

func TestAnalyzeForwardCallIsUndeclared(t *testing.T) {
	const src = `class C {
	static int main() {
		return helper();
	}
	static int helper() {
		return 1;
	}
}`
	r := analyze(t, src)
	if !r.Diagnostics.HasErrors() {
		t.Fatal("expected an error: helper is declared after main, a single left-to-right walk reports it as undeclared")
	}
}
