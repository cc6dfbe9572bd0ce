package cstdlib

import "stdlib-migrator/internal/recipe"

// ShouldSkip reports whether a recipe can be left alone: it already
// references the C stdlib anywhere, or it references no compiler at all.
func ShouldSkip(raw string) bool {
	var hasCompiler bool

	for _, line := range recipe.SplitLines(raw) {
		if stdlibRe.MatchString(line) {
			return true
		}

		if !hasCompiler {
			hasCompiler = compilerAnyRe.MatchString(line)
		}
	}

	return !hasCompiler
}
