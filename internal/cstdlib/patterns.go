package cstdlib

import (
	"regexp"
	"strings"

	"stdlib-migrator/internal/common"
)

// StdlibDependency is the dependency line body inserted into recipes.
const StdlibDependency = `- {{ stdlib("c") }}`

// Building blocks of a compiler reference line such as
//
//	    - {{ compiler('c') }}  # [win]
const (
	rgxIndent   = `(?P<indent>\s*)-\s*`
	rgxPre      = `(?P<compiler>\{\{\s*compiler\(["']`
	rgxPost     = `["']\)\s*\}\})`
	rgxSelector = `(?P<selector>\s*#\s+\[[\w\s()<>!=.,\-'"]+\])?`
)

var (
	compilerStubRe  = regexp.MustCompile(`(c|cxx|fortran)_compiler_stub`)
	compilerCRe     = compilerPattern("^", "c")
	compilerOtherRe = compilerPattern("^", "cxx", "fortran")
	compilerAnyRe   = compilerPattern("", "c", "cxx", "fortran")
	stdlibRe        = regexp.MustCompile(`\{\{\s*stdlib\(["']c["']\)\s*\}\}`)

	buildHeaderRe          = regexp.MustCompile(`build:`)
	hostHeaderRe           = regexp.MustCompile(`host:`)
	runHeaderRe            = regexp.MustCompile(`run:`)
	runConstrainedHeaderRe = regexp.MustCompile(`run_constrained:`)
	testHeaderRe           = regexp.MustCompile(`test:`)
)

// compilerPattern matches a compiler reference for any of langs, optionally
// with the m2w64_ cross-compiler prefix. The scan patterns are anchored with
// "^" so the captured indentation is the line's own; the filter pattern is
// not, and also sees commented-out references.
func compilerPattern(anchor string, langs ...string) *regexp.Regexp {
	lang := "(?:m2w64_)?(?:" + strings.Join(langs, "|") + ")"
	return regexp.MustCompile(anchor + rgxIndent + rgxPre + lang + rgxPost + rgxSelector)
}

// compilerRef is a matched compiler reference line.
type compilerRef struct {
	line     lineRef
	indent   string
	selector string
}

// matchCompiler records line i in ref if it is a compiler reference for re.
func matchCompiler(re *regexp.Regexp, line string, i int, ref *compilerRef) bool {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return false
	}

	ref.line.set(i)
	ref.indent = m[re.SubexpIndex("indent")]
	ref.selector = m[re.SubexpIndex("selector")]

	return true
}

// hasCompilerStub reports whether any dependency is a compiler stub.
func hasCompilerStub(deps []string) bool {
	return common.AnyFunc(deps, compilerStubRe.MatchString)
}
