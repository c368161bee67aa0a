// Package symtab implements the scoped (scope, name) symbol table the
// semantic analyzer populates, plus the value-type enumeration the
// parser and AST share. The lexer's interning does not use it.
package symtab

import (
	"fmt"
	"sort"
	"strings"
)

// Kind distinguishes a variable entry from a method entry.
type Kind int

const (
	Variable Kind = iota
	Method
)

func (k Kind) String() string {
	if k == Method {
		return "Method"
	}
	return "Variable"
}

// ValueType is the three-element type enumeration. Void is only a valid
// declared type for a method's return type.
type ValueType int

const (
	Void ValueType = iota
	Int
	Real
)

func (v ValueType) String() string {
	switch v {
	case Int:
		return "int"
	case Real:
		return "real"
	default:
		return "void"
	}
}

// Entry is one symbol-table row. Scope is the empty string for
// class/global scope, or the enclosing method's name. Sig is only
// populated for Method entries: parameter types joined by "::".
type Entry struct {
	Name  string
	Scope string
	Kind  Kind
	Type  ValueType
	Sig   string
}

// key packs (scope, name) into the table's single map key. The composite
// struct key is an implementation choice, not part of the data model:
// callers never see it.
type key struct {
	scope string
	name  string
}

// Table is a scope-qualified symbol table. Insertion is last-writer-wins;
// lookup never implicitly falls back between scopes — that policy lives
// in the analyzer, which tries the method scope and then the class scope.
type Table struct {
	data map[key]*Entry
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{data: make(map[key]*Entry)}
}

// Add inserts entry, overwriting any existing entry with the same
// (scope, name). Returns the stored entry.
func (t *Table) Add(entry Entry) *Entry {
	e := entry
	k := key{scope: e.Scope, name: e.Name}
	t.data[k] = &e
	return &e
}

// Lookup returns the entry for (scope, name), or nil if absent.
func (t *Table) Lookup(scope, name string) *Entry {
	if e, ok := t.data[key{scope: scope, name: name}]; ok {
		return e
	}
	return nil
}

// Has reports whether an entry already exists at exactly (scope, name),
// used by the analyzer to detect redeclaration before inserting.
func (t *Table) Has(scope, name string) bool {
	_, ok := t.data[key{scope: scope, name: name}]
	return ok
}

// Entries returns all entries ordered by (scope, name) for a stable dump.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, 0, len(t.data))
	for _, e := range t.data {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Signature joins parameter value types with "::", the encoding used to
// check call-site arity and types against a method's declared signature.
func Signature(paramTypes []ValueType) string {
	parts := make([]string, len(paramTypes))
	for i, t := range paramTypes {
		parts[i] = t.String()
	}
	return strings.Join(parts, "::")
}

// Dump renders one entry the way the `-s` CLI flag prints it:
// (name,scope,Kind,type,sig).
func (e *Entry) Dump() string {
	return fmt.Sprintf("(%s,%s,%s,%s,%s)", e.Name, e.Scope, e.Kind, e.Type, e.Sig)
}
