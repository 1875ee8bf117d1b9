// Package sexp is a small streaming S-expression reader for Circe schematic
// scripts. Atoms are kept as text; typed access goes through the helpers in
// query.go.
package sexp

import "strings"

// Node is an atom or a list.
type Node interface {
	IsLeaf() bool
	// LeafCount returns the number of elements of a list, 1 for atoms.
	LeafCount() int
	String() string
}

// Symbol is a bare atom: an identifier or a number.
type Symbol string

// Quoted is an atom written as a double-quoted string.
type Quoted string

// List is a parenthesized sequence.
type List struct {
	Items []Node
	Line  int // line of the opening parenthesis
}

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) LeafCount() int { return 1 }
func (s Symbol) String() string { return string(s) }

func (q Quoted) IsLeaf() bool   { return true }
func (q Quoted) LeafCount() int { return 1 }
func (q Quoted) String() string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(string(q)) + `"`
}

func (l *List) IsLeaf() bool   { return false }
func (l *List) LeafCount() int { return len(l.Items) }

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, n := range l.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Get returns the element at index, or nil.
func (l *List) Get(index int) Node {
	if index < 0 || index >= len(l.Items) {
		return nil
	}
	return l.Items[index]
}
