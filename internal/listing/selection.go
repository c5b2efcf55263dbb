package listing

import (
	"cmp"
	"slices"
	"strings"
)

// Selection is the set of rows ticked for a bulk action.
type Selection[K cmp.Ordered] struct {
	keys map[K]struct{}
}

// NewSelection returns a selection holding keys.
func NewSelection[K cmp.Ordered](keys ...K) *Selection[K] {
	s := &Selection[K]{keys: make(map[K]struct{}, len(keys))}
	s.Select(keys...)
	return s
}

// Toggle flips k and reports whether it is selected afterwards.
func (s *Selection[K]) Toggle(k K) bool {
	if _, ok := s.keys[k]; ok {
		delete(s.keys, k)
		return false
	}
	s.keys[k] = struct{}{}
	return true
}

// Select adds keys.
func (s *Selection[K]) Select(keys ...K) {
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
}

// SelectAll replaces the selection with keys, typically every visible row.
func (s *Selection[K]) SelectAll(keys []K) {
	s.Clear()
	s.Select(keys...)
}

// Clear empties the selection.
func (s *Selection[K]) Clear() {
	clear(s.keys)
}

// Contains reports whether k is selected.
func (s *Selection[K]) Contains(k K) bool {
	_, ok := s.keys[k]
	return ok
}

// Keys returns the selected keys in ascending order.
func (s *Selection[K]) Keys() []K {
	out := make([]K, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of selected keys.
func (s *Selection[K]) Len() int {
	return len(s.keys)
}

// ParseSelection cleans checkbox values posted by a form: trims, drops blanks
// and duplicates, keeps first-seen order.
func ParseSelection(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
