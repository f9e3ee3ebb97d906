package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "unix newlines", input: "a\nb\nc", expected: []string{"a", "b", "c"}},
		{name: "windows newlines", input: "a\r\nb\r\nc", expected: []string{"a", "b", "c"}},
		{name: "blank trailing line dropped", input: "a\nb\n", expected: []string{"a", "b"}},
		{name: "empty input", input: "", expected: nil},
		{name: "whitespace only", input: "  \n  ", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SplitLines(tc.input))
		})
	}
}

func TestParseLine(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "plain fields",
			input:    "Widget,Gadgets,Available",
			expected: []string{"Widget", "Gadgets", "Available"},
		},
		{
			name:     "quoted field with comma",
			input:    `"Widget, Deluxe",Gadgets,Available`,
			expected: []string{"Widget, Deluxe", "Gadgets", "Available"},
		},
		{
			name:     "escaped quote inside quoted field",
			input:    `"Pro Book 16""",Laptops,Available`,
			expected: []string{`Pro Book 16"`, "Laptops", "Available"},
		},
		{
			name:     "fields are trimmed",
			input:    "  Widget ,  Gadgets ",
			expected: []string{"Widget", "Gadgets"},
		},
		{
			name:     "empty fields preserved",
			input:    "Widget,,Available,,",
			expected: []string{"Widget", "", "Available", "", ""},
		},
		{
			name:     "unquoted field is not malformed",
			input:    "Widget,Gadgets",
			expected: []string{"Widget", "Gadgets"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLine(tc.input))
		})
	}
}
