package cstdlib

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"stdlib-migrator/internal/common"
	"stdlib-migrator/internal/recipe"
	"stdlib-migrator/internal/section"
)

// nestingIndent is added to a section root's indentation when no compiler
// reference provides one.
const nestingIndent = "    "

// insertion describes the lines to splice into a section.
type insertion struct {
	indent   string
	selector string
	at       int
	header   bool
}

// lines renders the inserted lines: an optional build: header followed by
// the stdlib dependency.
func (ins insertion) lines() []string {
	dep := ins.indent + StdlibDependency + ins.selector + "\n"
	if !ins.header {
		return []string{dep}
	}

	headerIndent := ""
	if len(ins.indent) > 2 {
		headerIndent = ins.indent[:len(ins.indent)-2]
	}

	return []string{headerIndent + "build:\n", dep}
}

// ProcessSection returns the lines of the named section with the stdlib
// dependency inserted, or lines unchanged if the section does not need it.
func ProcessSection(name string, meta *recipe.Meta, lines []string) ([]string, error) {
	reqs, err := sectionRequirements(name, meta)
	if err != nil {
		return nil, err
	}

	return processLines(name, reqs, meta, lines)
}

// processSection is ProcessSection for a section produced by section.Split,
// whose output is resolved by position so repeated output names stay apart.
func processSection(s section.Section, meta *recipe.Meta) ([]string, error) {
	reqs, err := splitSectionRequirements(s, meta)
	if err != nil {
		return nil, err
	}

	return processLines(s.Name, reqs, meta, s.Lines)
}

func processLines(name string, reqs *recipe.Requirements, meta *recipe.Meta, lines []string) ([]string, error) {
	if !needsStdlib(reqs, &meta.Requirements) {
		return lines, nil
	}

	ins, err := locate(lines)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", name, err)
	}

	return slices.Concat(lines[:ins.at], ins.lines(), lines[ins.at:]), nil
}

// SectionNeedsStdlib reports whether a section produced by section.Split
// needs the stdlib dependency.
func SectionNeedsStdlib(s section.Section, meta *recipe.Meta) (bool, error) {
	reqs, err := splitSectionRequirements(s, meta)
	if err != nil {
		return false, err
	}

	return needsStdlib(reqs, &meta.Requirements), nil
}

// splitSectionRequirements resolves a split section's requirements by
// output position, falling back to the name when the position does not
// belong to an output of that name.
func splitSectionRequirements(s section.Section, meta *recipe.Meta) (*recipe.Requirements, error) {
	if s.Output >= 0 && s.Output < len(meta.Outputs) && meta.Outputs[s.Output].Name == s.Name {
		return &meta.Outputs[s.Output].Requirements, nil
	}

	return sectionRequirements(s.Name, meta)
}

// sectionRequirements resolves the requirements of a section by name.
func sectionRequirements(name string, meta *recipe.Meta) (*recipe.Requirements, error) {
	if name == section.GlobalName {
		return &meta.Requirements, nil
	}

	out, ok := meta.FindOutput(name)
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrOutputNotFound, name)
	}

	return &out.Requirements, nil
}

// needsStdlib reports whether a section with the given requirements needs
// the stdlib dependency. Sections without build requirements inherit the
// global ones.
func needsStdlib(reqs, global *recipe.Requirements) bool {
	if hasCompilerStub(reqs.Build) {
		return true
	}

	return common.IsEmpty(reqs.Build) && hasCompilerStub(global.Build)
}

// locate computes where and how the stdlib dependency goes into lines.
func locate(lines []string) (insertion, error) {
	st := scan(lines)

	var ins insertion

	compiler, hasCompiler := st.compiler()
	if hasCompiler {
		ins.indent = compiler.indent
		ins.selector = compiler.selector
		ins.at = compiler.line.index + 1
	} else {
		header, ok := st.header()
		if !ok {
			return insertion{}, ErrNoInsertionPoint
		}

		ins.indent = rootIndent(lines[0]) + nestingIndent
		ins.at = header.index
	}

	ins.header = !st.build.found

	return ins, nil
}

// rootIndent returns the leading whitespace and list dashes of a section's
// first line, with dashes turned into spaces:
//
//	"  - name: foo\n" -> "    "
func rootIndent(line string) string {
	line = strings.TrimSuffix(line, "\n")

	end := strings.IndexFunc(line, func(r rune) bool {
		return !unicode.IsSpace(r) && r != '-'
	})
	if end < 0 {
		end = len(line)
	}

	return strings.ReplaceAll(line[:end], "-", " ")
}
