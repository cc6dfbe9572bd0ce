// Package cstdlib adds the C standard library dependency to recipes that
// use a compiler.
//
// Every recipe section (global and each output) whose build requirements
// contain a c, cxx or fortran compiler, or that has no build requirements of
// its own while the global ones contain a compiler, receives a
//
//	- {{ stdlib("c") }}
//
// line. The edit is purely line based: the parsed recipe decides whether a
// section needs the line, the raw lines decide where it goes.
//
// # Insertion point
//
// A section is scanned top to bottom until its test: header. The line is
// inserted directly after the compiler reference (preferring the c compiler),
// copying its indentation and selector comment:
//
//	build:
//	  - {{ compiler('c') }}  # [win]
//	  - {{ stdlib("c") }}  # [win]
//
// Without a compiler reference the line goes before the first host:, run:,
// run_constrained: or test: header, one level deeper than the section root,
// preceded by a new build: header when the section has none.
//
// # Errors
//
// ErrOutputNotFound and ErrNoInsertionPoint abort the whole file; Migrate
// writes nothing unless every section was processed.
package cstdlib
