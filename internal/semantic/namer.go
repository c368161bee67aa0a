package semantic

import "fmt"

// namer hands out the fresh temporary and label names the TAC emitter
// needs. Per spec §4.4, the label counter is shared across every base
// name ("and_false", "rel_true", "for_end", ...) so every generated
// label is globally unique regardless of which construct produced it.
type namer struct {
	tempCounter  int
	labelCounter int
}

func newNamer() *namer {
	return &namer{}
}

func (n *namer) temp() string {
	t := fmt.Sprintf("t%d", n.tempCounter)
	n.tempCounter++
	return t
}

func (n *namer) label(base string) string {
	l := fmt.Sprintf("%s_%d", base, n.labelCounter)
	n.labelCounter++
	return l
}
