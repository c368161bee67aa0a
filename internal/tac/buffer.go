package tac

import (
	"fmt"
	"io"
)

// Buffer is the ordered instruction list the analyzer appends to. A
// label attached via Label applies to the next instruction emitted,
// never to an already-emitted one. Multiple labels can pend at once
// (e.g. an empty then-block leaves its label and the if's end label
// both pointing at the same following instruction); all of them attach.
type Buffer struct {
	instrs  []*Instr
	pending []string
}

// NewBuffer returns an empty instruction list.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Label attaches name to the next instruction appended to the buffer.
func (b *Buffer) Label(name string) {
	b.pending = append(b.pending, name)
}

func (b *Buffer) append(kind Kind, op1, op2, op3 string) *Instr {
	in := &Instr{Kind: kind, Op1: op1, Op2: op2, Op3: op3, Labels: b.pending}
	b.pending = nil
	b.instrs = append(b.instrs, in)
	return in
}

// Var emits "VAR x".
func (b *Buffer) Var(name string) { b.append(VAR, name, "", "") }

// FParam emits "FPARAM x".
func (b *Buffer) FParam(name string) { b.append(FPARAM, name, "", "") }

// AParam emits "APARAM x".
func (b *Buffer) AParam(name string) { b.append(APARAM, name, "", "") }

// Assign emits "value = target", target is the second operand.
func (b *Buffer) Assign(value, target string) { b.append(ASSIGN, value, target, "") }

// Arith emits "target = a op b" for one of ADD/SUB/MULT/DIVIDE/MOD.
func (b *Buffer) Arith(kind Kind, target, a, c string) { b.append(kind, target, a, c) }

// UMinus emits "UMINUS a target".
func (b *Buffer) UMinus(a, target string) { b.append(UMINUS, a, target, "") }

// Rel emits "if a op b goto label" for one of EQ/NE/LT/LE/GT/GE.
func (b *Buffer) Rel(kind Kind, a, bOperand, label string) { b.append(kind, a, bOperand, label) }

// Goto emits "GOTO label".
func (b *Buffer) Goto(label string) { b.append(GOTO, label, "", "") }

// Call emits "CALL name".
func (b *Buffer) Call(name string) { b.append(CALL, name, "", "") }

// Return emits "RETURN".
func (b *Buffer) Return() { b.append(RETURN, "", "", "") }

// LastKind reports the kind of the most recently appended instruction
// and whether the buffer is non-empty.
func (b *Buffer) LastKind() (Kind, bool) {
	if len(b.instrs) == 0 {
		return 0, false
	}
	return b.instrs[len(b.instrs)-1].Kind, true
}

// Instructions returns the instruction list in emission order. The
// caller must not mutate it.
func (b *Buffer) Instructions() []*Instr {
	return b.instrs
}

// WriteTo renders the listing in the fixed text format spec §6 defines:
// one instruction per line, a standalone "label:" line immediately
// before any instruction it labels.
func (b *Buffer) WriteTo(w io.Writer) error {
	for _, in := range b.instrs {
		for _, label := range in.Labels {
			if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, in.Text()); err != nil {
			return err
		}
	}
	return nil
}
