package cstdlib

import "errors"

var (
	// ErrOutputNotFound is returned when a section names an output that is
	// not part of the parsed recipe.
	ErrOutputNotFound = errors.New("could not find output")

	// ErrNoInsertionPoint is returned when a section needs the stdlib
	// dependency but has no compiler reference and no requirement headers.
	ErrNoInsertionPoint = errors.New("don't know where to insert build section")
)
