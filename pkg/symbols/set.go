// Package symbols scans a source tree for the fully-qualified symbols it imports.
package symbols

import "sort"

// Set is a set of fully-qualified symbol references, unique by exact string.
type Set map[string]struct{}

// NewSet creates a Set holding the given symbols.
func NewSet(symbols ...string) Set {
	s := make(Set, len(symbols))
	for _, symbol := range symbols {
		s.Add(symbol)
	}
	return s
}

// Add adds a symbol to the set.
func (s Set) Add(symbol string) {
	s[symbol] = struct{}{}
}

// Contains reports whether the symbol is in the set.
func (s Set) Contains(symbol string) bool {
	_, ok := s[symbol]
	return ok
}

// Len returns the number of symbols.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the symbols in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for symbol := range s {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}
