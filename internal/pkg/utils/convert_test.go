//go:build unit
// +build unit

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"ValidNumber", "42", 42},
		{"Zero", "0", 0},
		{"Negative", "-7", -7},
		{"NotANumber", "abc", 0},
		{"Empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertToInt(tt.input))
		})
	}
}

func TestConvertToUint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint
		ok       bool
	}{
		{"ValidNumber", "42", 42, true},
		{"Zero", "0", 0, true},
		{"Negative", "-1", 0, false},
		{"NotANumber", "abc", 0, false},
		{"Empty", "", 0, false},
		// a value past the platform's uint range must fail the parse
		// instead of wrapping around
		{"Overflow", "18446744073709551616", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := ConvertToUint(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}
