// Package section slices the raw lines of a recipe into per-output sections.
//
// The first section is always "global" and holds everything before the first
// output. Each following section starts at an output's "- name:" list item
// and runs up to the next one; the last output also receives any trailing
// lines. Section names come from the parsed outputs, in order, because the
// raw names may still be template expressions.
package section
