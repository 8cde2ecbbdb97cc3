// Package utils provides small helpers independent of domain logic.
package utils

import "strconv"

// AtoiDefault parses s as an int, returning def when s is empty or not a
// valid integer.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// ClampLimit bounds a list limit to [1, max]; values <= 0 become def.
func ClampLimit(n, def, max int) int {
	if n <= 0 {
		n = def
	}
	if n > max {
		n = max
	}
	return n
}
