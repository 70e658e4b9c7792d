package utils

import "strings"

// FindIndex returns the index of item in slice, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// FindFold is FindIndex for strings under case folding, ignoring
// surrounding space in s.
func FindFold(slice []string, s string) int {
	folded := make([]string, len(slice))
	for i, v := range slice {
		folded[i] = strings.ToLower(v)
	}
	return FindIndex(folded, strings.ToLower(strings.TrimSpace(s)))
}
