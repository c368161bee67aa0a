package regexengine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reserved accept codes a merged rule set understands specially. Any
// other code is reported verbatim as the matched token's kind.
const (
	CodeWhitespace = -2 // skipped, never returned as a token
	CodeComment    = -3 // skipped, never returned as a token, matched non-greedily
)

// recipeBodyLo/Hi bound the printable body a `/* ... */` comment (or
// an unterminated one) may contain.
const (
	recipeBodyLo byte = 9
	recipeBodyHi byte = 126
)

// Merged is a single NFA folding together every rule of a loaded rule
// file, tagged per-state with the originating rule's accept code and
// (for the "comments" recipe) a non-greedy flag.
type Merged struct {
	NFA       *NFA
	NonGreedy map[int]bool // state index -> stop scanning as soon as entered
}

// literalFrag builds the concatenation of single-byte edges for s.
func literalFrag(n *NFA, s string) frag {
	start := n.addState()
	cur := start
	for i := 0; i < len(s); i++ {
		next := n.addState()
		n.addEdge(cur, s[i], next)
		cur = next
	}
	return frag{start: start, end: cur}
}

// anyByteFrag builds a single edge pair matching any byte in [lo, hi].
func anyByteFrag(n *NFA, lo, hi byte) frag {
	start, end := n.addState(), n.addState()
	for b := int(lo); b <= int(hi); b++ {
		n.addEdge(start, byte(b), end)
	}
	return frag{start: start, end: end}
}

// concatFrag wires a's exit to b's entry by epsilon, as the postfix
// concatenation operator does.
func concatFrag(n *NFA, a, b frag) frag {
	n.addEpsilon(a.end, b.start)
	return frag{start: a.start, end: b.end}
}

// starFrag wraps a in the standard Kleene-star construction.
func starFrag(n *NFA, a frag) frag {
	start, end := n.addState(), n.addState()
	n.addEpsilon(start, a.start)
	n.addEpsilon(start, end)
	n.addEpsilon(a.end, a.start)
	n.addEpsilon(a.end, end)
	return frag{start: start, end: end}
}

// commentRecipe builds "/*" (anyByte)* "*/", the balanced-comment
// pattern. The caller marks its exit state non-greedy so the scanner
// stops at the first "*/" instead of hunting for a longer match.
func commentRecipe(n *NFA) frag {
	open := literalFrag(n, "/*")
	body := starFrag(n, anyByteFrag(n, recipeBodyLo, recipeBodyHi))
	close := literalFrag(n, "*/")
	return concatFrag(n, concatFrag(n, open, body), close)
}

// unclosedRecipe builds "/*" (anyByte)*, with no closing delimiter, so
// it keeps matching greedily to end-of-input when a comment is never
// terminated.
func unclosedRecipe(n *NFA) frag {
	open := literalFrag(n, "/*")
	body := starFrag(n, anyByteFrag(n, recipeBodyLo, recipeBodyHi))
	return concatFrag(n, open, body)
}

// MergeRules compiles each (pattern, code) rule into a shared NFA with a
// synthetic start state epsilon-linked to every rule's entry. Rules are
// compiled in file order, so the scanner's lowest-state-index tie-break
// makes earlier rules win over later ones on an equal-length match.
func MergeRules(rules []Rule) (*Merged, error) {
	n := newNFA()
	start := n.addState()
	m := &Merged{NFA: n, NonGreedy: make(map[int]bool)}

	for _, r := range rules {
		var f frag
		var err error

		switch r.Pattern {
		case "comments":
			f = commentRecipe(n)
			m.NonGreedy[f.end] = true
		case "unclosed":
			f = unclosedRecipe(n)
		case "whitespace":
			f, err = compilePatternInto(n, "(\n|\t|\r| )")
		default:
			f, err = compilePatternInto(n, r.Pattern)
		}
		if err != nil {
			return nil, fmt.Errorf("regexengine: rule %q: %w", r.Pattern, err)
		}

		n.States[f.end].Accept = r.Code
		n.addEpsilon(start, f.start)
	}

	n.Start = start
	return m, nil
}

// Rule is one line of a lexer rule file: a pattern (or "comments" /
// "unclosed" / "whitespace" recipe keyword) and the token-kind code its
// match should be tagged with.
type Rule struct {
	Pattern string
	Code    int
}

// LoadRules parses a rule file, one "pattern code" pair per line (blank
// lines and lines starting with '#' are ignored), and merges the
// resulting patterns into a single NFA.
func LoadRules(r io.Reader) (*Merged, error) {
	var rules []Rule
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.LastIndexByte(line, ' ')
		if idx < 0 {
			return nil, fmt.Errorf("regexengine: rule file line %d: missing token-kind code in %q", lineNo, line)
		}
		pattern := line[:idx]
		codeStr := strings.TrimSpace(line[idx+1:])
		code, err := strconv.Atoi(codeStr)
		if err != nil {
			return nil, fmt.Errorf("regexengine: rule file line %d: bad code %q: %w", lineNo, codeStr, err)
		}
		rules = append(rules, Rule{Pattern: pattern, Code: code})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return MergeRules(rules)
}
