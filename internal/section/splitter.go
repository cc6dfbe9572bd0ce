package section

import (
	"errors"
	"fmt"
	"regexp"

	"stdlib-migrator/internal/recipe"
)

// GlobalName names the section holding everything before the first output.
const GlobalName = "global"

// ErrSectionMismatch is returned when the raw lines do not contain one
// output boundary per parsed output.
var ErrSectionMismatch = errors.New("could not determine all output sections")

var (
	outputsKeyRe  = regexp.MustCompile(`^\s*outputs:`)
	outputStartRe = regexp.MustCompile(`^(\s*)-\s*name:`)
)

// Section is a named, contiguous slice of recipe lines.
type Section struct {
	Name   string
	// Output is the index into Meta.Outputs, or -1 for the global section.
	Output int
	Lines  []string
}

// Split divides lines into the global section followed by one section per
// output of meta. Concatenating the Lines of all sections yields lines.
func Split(lines []string, meta *recipe.Meta) ([]Section, error) {
	names := meta.OutputNames()
	if len(names) == 0 {
		return []Section{{Name: GlobalName, Output: -1, Lines: lines}}, nil
	}

	starts := outputStarts(lines)
	if len(starts) != len(names) {
		return nil, fmt.Errorf("%w: found %d output entries, expected %d",
			ErrSectionMismatch, len(starts), len(names))
	}

	sections := make([]Section, 0, len(names)+1)
	sections = append(sections, Section{Name: GlobalName, Output: -1, Lines: lines[:starts[0]]})

	for i, start := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}

		sections = append(sections, Section{Name: names[i], Output: i, Lines: lines[start:end]})
	}

	return sections, nil
}

// outputStarts returns the indices of the "- name:" items that open an
// output. Only items after the outputs key and at the indentation of the
// first such item count, so nested "- name:" lists are ignored.
func outputStarts(lines []string) []int {
	var (
		starts    []int
		inOutputs bool
		indent    string
	)

	for i, line := range lines {
		if !inOutputs {
			inOutputs = outputsKeyRe.MatchString(line)
			continue
		}

		m := outputStartRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		if len(starts) == 0 {
			indent = m[1]
		}

		if m[1] == indent {
			starts = append(starts, i)
		}
	}

	return starts
}
