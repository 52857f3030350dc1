// Package utils contains small conversion helpers shared by the API layer.
package utils

import (
	"strconv"
)

// ConvertToInt parses s as a base-10 integer, returning 0 when s is not a
// valid number.
func ConvertToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}

// ConvertToUint parses s as an unsigned base-10 integer. The second return
// value reports whether s was a valid non-negative number that fits uint.
func ConvertToUint(s string) (uint, bool) {
	value, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}
