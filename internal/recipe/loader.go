package recipe

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDir loads and parses the meta.yaml of the given recipe directory.
func LoadDir(dir string) (*Attrs, error) {
	return LoadFile(filepath.Join(dir, MetaFileName))
}

// LoadFile loads and parses a recipe file from the given path.
func LoadFile(path string) (*Attrs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse renders and parses recipe text into Attrs.
func Parse(data []byte) (*Attrs, error) {
	attrs := &Attrs{Raw: string(data)}

	err := yaml.Unmarshal([]byte(Render(attrs.Raw)), &attrs.Meta)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipe YAML: %w", err)
	}

	return attrs, nil
}
