package sexp

import (
	"fmt"
	"strconv"
)

// Name returns the leading symbol of a list, or the text of an atom.
func Name(n Node) (string, error) {
	switch n := n.(type) {
	case Symbol:
		return string(n), nil
	case *List:
		if sym, ok := n.Get(0).(Symbol); ok {
			return string(sym), nil
		}
		return "", fmt.Errorf("line %d: list has no leading symbol", n.Line)
	}
	return "", fmt.Errorf("expected symbol, got %T", n)
}

// FindNode returns the first child list whose leading symbol is key.
// Example: FindNode(dev, "at") finds (at 4 6).
func FindNode(n Node, key string) (*List, bool) {
	l, ok := n.(*List)
	if !ok {
		return nil, false
	}
	for _, item := range l.Items {
		if child, ok := item.(*List); ok {
			if sym, ok := child.Get(0).(Symbol); ok && string(sym) == key {
				return child, true
			}
		}
	}
	return nil, false
}

// FindAllNodes returns every child list whose leading symbol is key.
func FindAllNodes(n Node, key string) []*List {
	var out []*List
	l, ok := n.(*List)
	if !ok {
		return out
	}
	for _, item := range l.Items {
		if child, ok := item.(*List); ok {
			if sym, ok := child.Get(0).(Symbol); ok && string(sym) == key {
				out = append(out, child)
			}
		}
	}
	return out
}

// Text returns the atom at index, quoted or not.
func Text(l *List, index int) (string, error) {
	switch a := l.Get(index).(type) {
	case Symbol:
		return string(a), nil
	case Quoted:
		return string(a), nil
	case nil:
		return "", fmt.Errorf("line %d: (%s ...) has no element %d", l.Line, head(l), index)
	default:
		return "", fmt.Errorf("line %d: (%s ...) element %d is a list", l.Line, head(l), index)
	}
}

// Int returns the integer atom at index.
func Int(l *List, index int) (int, error) {
	s, err := Text(l, index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: failed to parse int %q: %w", l.Line, s, err)
	}
	return v, nil
}

// Float returns the numeric atom at index.
func Float(l *List, index int) (float64, error) {
	s, err := Text(l, index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: failed to parse float %q: %w", l.Line, s, err)
	}
	return v, nil
}

func head(l *List) string {
	if sym, ok := l.Get(0).(Symbol); ok {
		return string(sym)
	}
	return "?"
}
