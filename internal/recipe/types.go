package recipe

// MetaFileName is the recipe file looked up inside a recipe directory.
const MetaFileName = "meta.yaml"

// Attrs bundles the parsed recipe with the raw text it was parsed from.
type Attrs struct {
	// Meta is the parsed structure of the recipe.
	Meta Meta
	// Raw is the unrendered recipe text.
	Raw string
}

// Meta is the subset of a recipe needed to decide where dependencies go.
type Meta struct {
	// Requirements are the top-level (global) requirements.
	Requirements Requirements
	// Outputs are the named sub-packages, in document order.
	Outputs []Output
}

// Output is a named sub-package of a multi-output recipe.
type Output struct {
	Name         string
	Requirements Requirements
}

// Requirements holds the dependency lists of one scope.
type Requirements struct {
	Build          DependencyList
	Host           DependencyList
	Run            DependencyList
	RunConstrained DependencyList
}

// DependencyList is a sequence of free-text dependency specifiers.
// Empty (null) list entries are kept as "".
type DependencyList []string

// OutputNames returns the output names in document order.
func (m *Meta) OutputNames() []string {
	names := make([]string, 0, len(m.Outputs))
	for _, o := range m.Outputs {
		names = append(names, o.Name)
	}

	return names
}

// FindOutput returns the first output with the given name.
func (m *Meta) FindOutput(name string) (*Output, bool) {
	for i := range m.Outputs {
		if m.Outputs[i].Name == name {
			return &m.Outputs[i], true
		}
	}

	return nil, false
}

// merge appends the lists of other to r.
func (r *Requirements) merge(other Requirements) {
	r.Build = append(r.Build, other.Build...)
	r.Host = append(r.Host, other.Host...)
	r.Run = append(r.Run, other.Run...)
	r.RunConstrained = append(r.RunConstrained, other.RunConstrained...)
}
