package regexengine

import "strings"

// ResultKind classifies what one Scanner.Next call produced.
type ResultKind int

const (
	Matched ResultKind = iota
	Unknown
	EOF
)

// Result is what the scanner hands back after committing a lexeme (or
// deciding none of the rules could ever match, or running out of
// input). Code is only meaningful when Kind == Matched.
type Result struct {
	Kind   ResultKind
	Lexeme string
	Code   int
}

// Scanner runs the longest-match algorithm over a fixed input buffer
// using a merged rule NFA. It tracks the forward cursor and 1-based
// line number described in spec §4.1 itself, so the lexer on top of it
// never has to re-derive line/column bookkeeping.
type Scanner struct {
	merged *Merged
	buf    []byte
	forward int
	line    int
}

// NewScanner returns a scanner positioned at the start of input.
func NewScanner(merged *Merged, input []byte) *Scanner {
	return &Scanner{merged: merged, buf: input, line: 1}
}

// Line returns the 1-based line number of the cursor's current position.
func (s *Scanner) Line() int { return s.line }

// Pos returns the byte offset of the cursor.
func (s *Scanner) Pos() int { return s.forward }

// matchOnce runs a single longest-match pass starting at s.forward and
// reports the longest accepting prefix found, if any.
func (s *Scanner) matchOnce() (lexeme string, code int, nonGreedy bool, matched bool) {
	nfa := s.merged.NFA
	pos := s.forward
	current := nfa.epsilonClosure([]int{nfa.Start})

	bestLen := -1
	bestCode := 0
	bestNonGreedy := false

	checkAccept := func(length int) bool {
		for _, st := range sortedStates(current) {
			if nfa.States[st].Accept != -1 {
				bestLen = length
				bestCode = nfa.States[st].Accept
				bestNonGreedy = s.merged.NonGreedy[st]
				return bestNonGreedy
			}
		}
		return false
	}

	if checkAccept(0) && bestNonGreedy {
		return string(s.buf[pos:pos]), bestCode, true, true
	}

	for i := 0; pos+i < len(s.buf); {
		c := s.buf[pos+i]
		var next []int
		for _, st := range sortedStates(current) {
			next = append(next, nfa.States[st].Edges[c]...)
		}
		if len(next) == 0 {
			break
		}
		current = nfa.epsilonClosure(next)
		i++
		if checkAccept(i) && bestNonGreedy {
			break
		}
	}

	if bestLen < 0 {
		return "", 0, false, false
	}
	return string(s.buf[pos : pos+bestLen]), bestCode, bestNonGreedy, true
}

// Next performs one match starting at the cursor, committing the
// longest accepting prefix, updating the cursor and line number, and
// transparently skipping whitespace/comment matches by looping instead
// of recursing again (same externally observable behavior as the
// recursive "skip, then NextToken again" description in spec §4.1).
func (s *Scanner) Next() Result {
	for {
		if s.forward >= len(s.buf) {
			return Result{Kind: EOF}
		}

		lexeme, code, _, matched := s.matchOnce()
		if !matched {
			ch := s.buf[s.forward]
			s.forward++
			if ch == '\n' {
				s.line++
			}
			return Result{Kind: Unknown, Lexeme: string(ch)}
		}

		s.forward += len(lexeme)
		s.line += strings.Count(lexeme, "\n")

		if code == CodeWhitespace || code == CodeComment {
			continue
		}
		return Result{Kind: Matched, Lexeme: lexeme, Code: code}
	}
}
