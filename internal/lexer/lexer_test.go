package lexer

import (
	"testing"

	"github.com/csssaz/decafc/internal/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	rules, err := LoadMerged(DefaultRules())
	if err != nil {
		t.Fatalf("LoadMerged: %v", err)
	}
	return Tokenize([]byte(src), rules)
}

func TestLongestMatchKeywordVsIdentifier(t *testing.T) {
	toks := tokenize(t, "int integer")
	if toks[0].Kind != token.KwInt {
		t.Errorf("toks[0].Kind = %v, want KwInt", toks[0].Kind)
	}
	if toks[1].Kind != token.Identifier || toks[1].Lexeme != "integer" {
		t.Errorf("toks[1] = %v, want Identifier(%q)", toks[1], "integer")
	}
}

func TestLongestMatchOperators(t *testing.T) {
	toks := tokenize(t, "++")
	if toks[0].Kind != token.Incr {
		t.Errorf("tokenize(\"++\")[0].Kind = %v, want Incr", toks[0].Kind)
	}
	if toks[1].Kind != token.EOI {
		t.Errorf("expected a single Incr token followed by EOI, got %v", toks)
	}

	toks = tokenize(t, ">=")
	if toks[0].Kind != token.Ge {
		t.Errorf("tokenize(\">=\")[0].Kind = %v, want Ge", toks[0].Kind)
	}
	if toks[1].Kind != token.EOI {
		t.Errorf("expected a single Ge token followed by EOI, got %v", toks)
	}
}

func TestLongestMatchGreedyIdentifier(t *testing.T) {
	toks := tokenize(t, "classstatic")
	if toks[0].Kind != token.Identifier || toks[0].Lexeme != "classstatic" {
		t.Errorf("toks[0] = %v, want Identifier(%q)", toks[0], "classstatic")
	}
	if toks[1].Kind != token.EOI {
		t.Errorf("expected a single Identifier token followed by EOI, got %v", toks)
	}
}

func TestCommentIsSkipped(t *testing.T) {
	toks := tokenize(t, "/* a comment */ x")
	if toks[0].Kind != token.Identifier || toks[0].Lexeme != "x" {
		t.Errorf("toks[0] = %v, want Identifier(%q)", toks[0], "x")
	}
	if toks[1].Kind != token.EOI {
		t.Errorf("expected exactly one token before EOI, got %v", toks)
	}
}

func TestUnterminatedCommentIsErrUnknown(t *testing.T) {
	src := "/* unterminated"
	toks := tokenize(t, src)
	if toks[0].Kind != token.ErrUnknown {
		t.Fatalf("toks[0].Kind = %v, want ErrUnknown", toks[0].Kind)
	}
	if toks[0].Lexeme != src {
		t.Errorf("toks[0].Lexeme = %q, want %q", toks[0].Lexeme, src)
	}
	if toks[1].Kind != token.EOI {
		t.Errorf("expected ErrUnknown then EOI, got %v", toks)
	}
}

func TestNestedCommentOpenerIsNotSpecial(t *testing.T) {
	// The first "*/" closes the comment regardless of an inner "/*";
	// decaf comments do not nest.
	toks := tokenize(t, "/* outer /* inner */ x")
	if toks[0].Kind != token.Identifier || toks[0].Lexeme != "x" {
		t.Errorf("toks[0] = %v, want Identifier(%q)", toks[0], "x")
	}
	if toks[1].Kind != token.EOI {
		t.Errorf("expected exactly one token before EOI, got %v", toks)
	}
}

func TestLineCounting(t *testing.T) {
	toks := tokenize(t, "a\n\nb")
	if toks[0].Line != 1 {
		t.Errorf("toks[0].Line = %d, want 1", toks[0].Line)
	}
	if toks[1].Line != 3 {
		t.Errorf("toks[1].Line = %d, want 3", toks[1].Line)
	}
}
