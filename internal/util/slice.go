package util

/**
 * Generic shared utilities
 */

// SliceIncludes returns true is slice includes value
func SliceIncludes[T comparable](s []T, val T) bool {
	for _, v := range s {
		if v == val {
			return true
		}
	}
	return false
}

// AppendUnique appends each value not already present in the slice
func AppendUnique[T comparable](s []T, vals ...T) []T {
	for _, v := range vals {
		if !SliceIncludes(s, v) {
			s = append(s, v)
		}
	}
	return s
}
