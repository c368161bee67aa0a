// Package lexer drives the regex engine over a buffered source and
// produces the token stream the parser consumes.
package lexer

import (
	_ "embed"
	"strings"

	"github.com/csssaz/decafc/internal/regexengine"
	"github.com/csssaz/decafc/internal/token"
)

//go:embed rules_default.txt
var defaultRules string

// DefaultRules returns the built-in rule file text (the regex-driven,
// longest-match rule set for the full token grammar). Embedded via
// go:embed so the binary never needs the rule file on disk, but still
// overridable with --rules for experimentation.
func DefaultRules() string { return defaultRules }

// Lexer tokenizes a single source buffer. It owns no file handle: the
// caller reads the source once at the top of a compile and hands the
// bytes in; the lexer is done with them once the stream is exhausted.
type Lexer struct {
	scanner *regexengine.Scanner
	intern  map[string]*token.SymRef
}

// New builds a Lexer over src using a merged rule set (typically the
// embedded default, loaded once per compile via LoadMerged).
func New(src []byte, rules *regexengine.Merged) *Lexer {
	return &Lexer{
		scanner: regexengine.NewScanner(rules, src),
		intern:  make(map[string]*token.SymRef),
	}
}

// LoadMerged compiles a rule-file string (the format accepted by
// regexengine.LoadRules) into a Merged rule set ready for New.
func LoadMerged(rulesText string) (*regexengine.Merged, error) {
	return regexengine.LoadRules(strings.NewReader(rulesText))
}

// symRef returns the single shared *token.SymRef for lexeme, creating it
// on first use. This is purely lexical interning — it has nothing to do
// with the semantic symbol table's scoped (scope, name) entries, which
// the analyzer populates once it knows whether an identifier names a
// variable or a method.
func (l *Lexer) symRef(lexeme string) *token.SymRef {
	if ref, ok := l.intern[lexeme]; ok {
		return ref
	}
	ref := &token.SymRef{Name: lexeme}
	l.intern[lexeme] = ref
	return ref
}

// NextToken returns the next token, skipping whitespace and comments
// (handled inside the scanner) and reporting EOI at end of input.
func (l *Lexer) NextToken() token.Token {
	res := l.scanner.Next()
	// The scanner's line is past the lexeme; step back over its newlines
	// so the token carries the line it started on.
	line := l.scanner.Line() - strings.Count(res.Lexeme, "\n")

	switch res.Kind {
	case regexengine.EOF:
		return token.Token{Kind: token.EOI, Line: line}
	case regexengine.Unknown:
		return token.Token{Kind: token.ErrUnknown, Lexeme: res.Lexeme, Line: line}
	default:
		kind := token.Kind(res.Code)
		t := token.Token{Kind: kind, Lexeme: res.Lexeme, Line: line}
		if kind == token.Identifier || kind == token.Number {
			t.Sym = l.symRef(res.Lexeme)
		}
		return t
	}
}

// Tokenize drains the lexer to EOI (inclusive) and returns the stream,
// used by the `lex` CLI command and by tests that want the whole list
// at once instead of pulling tokens one at a time.
func Tokenize(src []byte, rules *regexengine.Merged) []token.Token {
	l := New(src, rules)
	var out []token.Token
	for {
		t := l.NextToken()
		out = append(out, t)
		if t.Kind == token.EOI {
			return out
		}
	}
}
