package common

import "sort"

// UnknownStr is the fallback name for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// AppendUnique appends v unless it is already present, preserving first-seen
// order.
func AppendUnique[S ~[]E, E comparable](s S, v E) S {
	for _, e := range s {
		if e == v {
			return s
		}
	}

	return append(s, v)
}

// SortedUnique returns the distinct strings in sorted order.
func SortedUnique(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(ss))
	out := make([]string, 0, len(ss))

	for _, s := range ss {
		if _, ok := seen[s]; ok {
			continue
		}

		seen[s] = struct{}{}
		out = append(out, s)
	}

	sort.Strings(out)

	return out
}
