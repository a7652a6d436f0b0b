package extract

import "golang.org/x/text/cases"

// orderedSet keeps the first occurrence of each value in insertion order.
type orderedSet struct {
	key   func(string) string
	seen  map[string]struct{}
	items []string
}

func newOrderedSet(key func(string) string) *orderedSet {
	return &orderedSet{key: key, seen: make(map[string]struct{})}
}

// newFoldedSet compares values under Unicode case folding.
func newFoldedSet() *orderedSet {
	fold := cases.Fold()
	return newOrderedSet(fold.String)
}

// add inserts v and reports whether it was new.
func (s *orderedSet) add(v string) bool {
	k := s.key(v)
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet) len() int {
	return len(s.items)
}

func (s *orderedSet) values() []string {
	return s.items
}
