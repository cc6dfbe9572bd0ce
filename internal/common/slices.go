package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// FirstFunc returns the first element satisfying pred and true,
// or the zero value and false if none does.
func FirstFunc[S ~[]E, E any](s S, pred func(E) bool) (E, bool) {
	for _, e := range s {
		if pred(e) {
			return e, true
		}
	}

	var zero E

	return zero, false
}

// AnyFunc reports whether at least one element satisfies pred.
func AnyFunc[S ~[]E, E any](s S, pred func(E) bool) bool {
	_, ok := FirstFunc(s, pred)
	return ok
}
