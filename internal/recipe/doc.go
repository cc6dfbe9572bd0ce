// Package recipe provides the raw-line and parsed views of a conda-style
// meta.yaml recipe.
//
// The two views are deliberately independent: edits are applied to the raw
// lines only and are never reconciled back into the parsed form.
//
// # Parsed view
//
// Recipes are Jinja templates over YAML. Parse renders the template layer
// just far enough for the YAML to be decodable and for compiler references
// to survive as stub tokens:
//
//	{% set name = "foo" %}             -> (removed, defines name)
//	- {{ compiler('c') }}              -> - c_compiler_stub
//	- {{ stdlib("c") }}                -> - c_stdlib_stub
//	- {{ pin_subpackage('lib' ~ name) }} -> - libfoo
//
// Control statements ({% if %}, {% for %}) are dropped so every branch is
// kept, which matches an all-variants reading of the recipe. Only the
// requirements of the recipe and of each output are decoded; keys repeated
// under different selectors are merged.
//
// # Raw view
//
// SplitLines keeps each line's terminator so that JoinLines(SplitLines(s))
// reproduces s byte for byte.
package recipe
