package cstdlib

// lineRef is an optional line index. The zero value means "not seen", so a
// header on the very first line of a section is still a valid reference.
type lineRef struct {
	index int
	found bool
}

func (r *lineRef) set(i int) {
	r.index = i
	r.found = true
}

// scanState records the last line of each kind seen in a section.
type scanState struct {
	build          lineRef
	compilerC      compilerRef
	compilerOther  compilerRef
	host           lineRef
	run            lineRef
	runConstrained lineRef
	test           lineRef
}

// scan walks lines once, stopping at the test: header since test
// requirements are unrelated. Each line is classified by the first
// category it matches; later lines of the same category win.
func scan(lines []string) scanState {
	var st scanState

	for i, line := range lines {
		switch {
		case buildHeaderRe.MatchString(line):
			// requirements.build follows build.{number,...}, keep the last
			st.build.set(i)
		case matchCompiler(compilerCRe, line, i, &st.compilerC):
		case matchCompiler(compilerOtherRe, line, i, &st.compilerOther):
		case hostHeaderRe.MatchString(line):
			st.host.set(i)
		case runHeaderRe.MatchString(line):
			st.run.set(i)
		case runConstrainedHeaderRe.MatchString(line):
			st.runConstrained.set(i)
		case testHeaderRe.MatchString(line):
			st.test.set(i)
			return st
		}
	}

	return st
}

// compiler returns the preferred compiler reference: c over cxx/fortran.
func (st *scanState) compiler() (compilerRef, bool) {
	switch {
	case st.compilerC.line.found:
		return st.compilerC, true
	case st.compilerOther.line.found:
		return st.compilerOther, true
	default:
		return compilerRef{}, false
	}
}

// header returns the first present of the host, run, run_constrained and
// test headers, in that order of preference.
func (st *scanState) header() (lineRef, bool) {
	for _, ref := range []lineRef{st.host, st.run, st.runConstrained, st.test} {
		if ref.found {
			return ref, true
		}
	}

	return lineRef{}, false
}
