package recipe

import "strings"

// SplitLines splits text into lines, each keeping its "\n" terminator.
// A final line without terminator is kept as is.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// JoinLines concatenates lines produced by SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}
