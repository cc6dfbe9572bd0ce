package recipe

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Recipes routinely repeat keys under different selectors, e.g.
//
//	requirements:          # [unix]
//	  ...
//	requirements:          # [win]
//
// so mappings are walked by hand instead of decoded into maps, which would
// reject the duplicate keys. Repeated keys merge.

// --- Meta YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Meta.
// Only the top-level requirements and outputs keys are decoded.
func (m *Meta) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping at the top level of the recipe, got %v", node.Kind)
	}

	return eachPair(node, func(key string, value *yaml.Node) error {
		switch key {
		case "requirements":
			var reqs Requirements

			err := value.Decode(&reqs)
			if err != nil {
				return fmt.Errorf("requirements: %w", err)
			}

			m.Requirements.merge(reqs)

		case "outputs":
			if value.Kind != yaml.SequenceNode {
				return fmt.Errorf("outputs: expected a list, got %v", value.Kind)
			}

			for i, item := range value.Content {
				var out Output

				err := item.Decode(&out)
				if err != nil {
					return fmt.Errorf("outputs[%d]: %w", i, err)
				}

				m.Outputs = append(m.Outputs, out)
			}
		}

		return nil
	})
}

// --- Output YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Output.
// A requirements list (instead of a mapping) is read as run requirements.
func (o *Output) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping, got %v", node.Kind)
	}

	err := eachPair(node, func(key string, value *yaml.Node) error {
		switch key {
		case "name":
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("name: expected a string, got %v", value.Kind)
			}

			o.Name = value.Value

		case "requirements":
			if value.Kind == yaml.SequenceNode {
				var run DependencyList

				err := value.Decode(&run)
				if err != nil {
					return fmt.Errorf("requirements: %w", err)
				}

				o.Requirements.Run = append(o.Requirements.Run, run...)

				return nil
			}

			var reqs Requirements

			err := value.Decode(&reqs)
			if err != nil {
				return fmt.Errorf("requirements: %w", err)
			}

			o.Requirements.merge(reqs)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if o.Name == "" {
		return errors.New("output has no name")
	}

	return nil
}

// --- Requirements YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Requirements.
func (r *Requirements) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping, got %v", node.Kind)
	}

	return eachPair(node, func(key string, value *yaml.Node) error {
		var target *DependencyList

		switch key {
		case "build":
			target = &r.Build
		case "host":
			target = &r.Host
		case "run":
			target = &r.Run
		case "run_constrained":
			target = &r.RunConstrained
		default:
			return nil
		}

		var deps DependencyList

		err := value.Decode(&deps)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}

		*target = append(*target, deps...)

		return nil
	})
}

// --- DependencyList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for DependencyList.
// Accepts a list of scalars or a single scalar. Nested collections inside
// the list are not dependency specifiers and are skipped.
func (l *DependencyList) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		if isNull(node) || node.Value == "" {
			*l = DependencyList{}
		} else {
			*l = DependencyList{node.Value}
		}

		return nil

	case yaml.SequenceNode:
		deps := make(DependencyList, 0, len(node.Content))

		for _, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				continue
			}

			if isNull(item) {
				deps = append(deps, "")
				continue
			}

			deps = append(deps, item.Value)
		}

		*l = deps

		return nil

	default:
		return fmt.Errorf("expected string or list, got %v", node.Kind)
	}
}

// eachPair calls fn for every key/value pair of a mapping node, in order.
func eachPair(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolveAlias(node.Content[i])
		value := resolveAlias(node.Content[i+1])

		if isNull(value) {
			continue
		}

		err := fn(key.Value, value)
		if err != nil {
			return err
		}
	}

	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
