package listing

import (
	"sort"
	"strings"
	"time"
)

// Predicate reports whether an item stays in a filtered list.
type Predicate[T any] func(T) bool

// Filter returns the items matching every predicate. Nil predicates are skipped.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, p := range preds {
			if p != nil && !p(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// ContainsFold is a case-insensitive substring match. An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Equals is a case-insensitive exact match. An empty want matches everything.
func Equals(value, want string) bool {
	if want == "" {
		return true
	}
	return strings.EqualFold(value, want)
}

// Between reports whether t lies in [from, to]. A zero bound is open.
func Between(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

// SortBy returns a stably sorted copy of items.
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
