package recipe

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	raw := `{% set name = "foo" %}
package:
  name: {{ name }}

requirements:
  build:
    - {{ compiler('c') }}
    - {{ compiler('cxx') }}  # [unix]
    - make
  host:
    - zlib
  run:

outputs:
  - name: lib{{ name }}
    requirements:
      build:
        - {{ compiler("fortran") }}
      host:
        -
        - openssl
      run_constrained:
        - foo-cli >=1
  - name: {{ name }}-cli
    requirements:
      - python
`

	attrs, err := Parse([]byte(raw))
	require.NoError(t, err)
	require.NotNil(t, attrs)

	assert.Equal(t, raw, attrs.Raw)

	global := attrs.Meta.Requirements
	assert.Equal(t, DependencyList{"c_compiler_stub", "cxx_compiler_stub", "make"}, global.Build)
	assert.Equal(t, DependencyList{"zlib"}, global.Host)
	assert.Empty(t, global.Run)

	require.Len(t, attrs.Meta.Outputs, 2)
	assert.Equal(t, []string{"libfoo", "foo-cli"}, attrs.Meta.OutputNames())

	lib := attrs.Meta.Outputs[0]
	assert.Equal(t, DependencyList{"fortran_compiler_stub"}, lib.Requirements.Build)
	assert.Equal(t, DependencyList{"", "openssl"}, lib.Requirements.Host)
	assert.Equal(t, DependencyList{"foo-cli >=1"}, lib.Requirements.RunConstrained)

	cli, ok := attrs.Meta.FindOutput("foo-cli")
	require.True(t, ok)
	assert.Empty(t, cli.Requirements.Build)
	assert.Equal(t, DependencyList{"python"}, cli.Requirements.Run)

	_, ok = attrs.Meta.FindOutput("missing")
	assert.False(t, ok)
}

func TestParse_DuplicateKeysMerge(t *testing.T) {
	raw := `requirements:  # [unix]
  build:
    - {{ compiler('c') }}
requirements:  # [win]
  build:
    - {{ compiler('m2w64_c') }}
  build:
    - m2-make
`

	attrs, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t,
		DependencyList{"c_compiler_stub", "m2w64_c_compiler_stub", "m2-make"},
		attrs.Meta.Requirements.Build)
}

func TestParse_NoRequirements(t *testing.T) {
	attrs, err := Parse([]byte("package:\n  name: foo\n"))
	require.NoError(t, err)

	assert.Empty(t, attrs.Meta.Requirements.Build)
	assert.Empty(t, attrs.Meta.Outputs)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not a mapping", "- a\n- b\n"},
		{"outputs not a list", "outputs:\n  name: foo\n"},
		{"output without name", "outputs:\n  - requirements:\n      run:\n        - a\n"},
		{"invalid yaml", "requirements: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	content := "requirements:\n  build:\n    - {{ compiler('c') }}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetaFileName), []byte(content), 0o644))

	attrs, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, content, attrs.Raw)
	assert.Equal(t, DependencyList{"c_compiler_stub"}, attrs.Meta.Requirements.Build)
}
