package cstdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldSkip(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected bool
	}{
		{"c compiler", "requirements:\n  build:\n    - {{ compiler('c') }}\n", false},
		{"cxx compiler with selector", "  - {{ compiler(\"cxx\") }}  # [linux]\n", false},
		{"fortran cross compiler", "  - {{ compiler('m2w64_fortran') }}\n", false},
		{"already migrated", "  - {{ compiler('c') }}\n  - {{ stdlib('c') }}\n", true},
		{"stdlib before compiler", "  - {{ stdlib(\"c\") }}\n  - {{ compiler('c') }}\n", true},
		{"no compiler", "requirements:\n  host:\n    - python\n", true},
		{"other language only", "  - {{ compiler('rust') }}\n", true},
		{"not a list item", "build: {{ compiler('c') }}\n", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldSkip(tt.raw))
		})
	}
}
