package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"stdlib-migrator/internal/diagnostic"
	"stdlib-migrator/internal/recipe"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const needsMigration = `requirements:
  build:
    - {{ compiler('c') }}
  host:
    - zlib
`

const alreadyMigrated = `requirements:
  build:
    - {{ compiler('c') }}
    - {{ stdlib('c') }}
`

const noInsertionPoint = `requirements:
  build:
    - {{ compiler('c') }}
outputs:
  - name: foo
    script: install.sh
`

type fixture struct {
	root string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{root: t.TempDir()}
}

// recipe creates a recipe directory; empty content leaves it without meta.yaml.
func (f *fixture) recipe(t *testing.T, name, content string) string {
	t.Helper()

	dir := filepath.Join(f.root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, recipe.MetaFileName), []byte(content), 0o644))
	}

	return dir
}

func read(t *testing.T, dir string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, recipe.MetaFileName))
	require.NoError(t, err)

	return string(data)
}

func TestRunner_Run(t *testing.T) {
	f := newFixture(t)
	migrate := f.recipe(t, "migrate", needsMigration)
	skip := f.recipe(t, "skip", alreadyMigrated)
	missing := f.recipe(t, "missing", "")
	broken := f.recipe(t, "broken", "requirements: [\n  - {{ compiler('c') }}\n")
	stuck := f.recipe(t, "stuck", noInsertionPoint)

	runner := NewRunner(zap.NewNop(), Options{Jobs: 4})

	report, err := runner.Run(context.Background(), []string{migrate, skip, missing, broken, stuck, migrate + "/"})
	require.NoError(t, err)
	require.Len(t, report.Results, 5)

	outcomes := map[string]Outcome{}
	for _, res := range report.Results {
		outcomes[res.Recipe] = res.Outcome
	}

	assert.Equal(t, OutcomeMigrated, outcomes[migrate])
	assert.Equal(t, OutcomeSkipped, outcomes[skip])
	assert.Equal(t, OutcomeMissing, outcomes[missing])
	assert.Equal(t, OutcomeFailed, outcomes[broken])
	assert.Equal(t, OutcomeFailed, outcomes[stuck])

	assert.Contains(t, read(t, migrate), `    - {{ stdlib("c") }}`)
	assert.Equal(t, alreadyMigrated, read(t, skip))
	assert.Equal(t, noInsertionPoint, read(t, stuck))

	require.Len(t, report.Diagnostics.Errors, 2)
	assert.Equal(t, diagnostic.CodeLoadFailed, report.Diagnostics.Errors[0].Code)
	assert.Equal(t, broken, report.Diagnostics.Errors[0].Recipe)
	assert.Equal(t, diagnostic.CodeNoInsertionPoint, report.Diagnostics.Errors[1].Code)
	require.Len(t, report.Diagnostics.Infos, 1)
	assert.Equal(t, diagnostic.CodeMissingRecipe, report.Diagnostics.Infos[0].Code)

	assert.Equal(t, 2, report.Count(OutcomeFailed))
	assert.Equal(t, 1, report.Count(OutcomeMigrated))
}

func TestRunner_SecondRunIsNoop(t *testing.T) {
	f := newFixture(t)
	dir := f.recipe(t, "r", needsMigration)

	runner := NewRunner(nil, Options{})

	_, err := runner.Run(context.Background(), []string{dir})
	require.NoError(t, err)

	migrated := read(t, dir)

	report, err := runner.Run(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, report.Results[0].Outcome)
	assert.Equal(t, migrated, read(t, dir))
}

func TestRunner_DryRun(t *testing.T) {
	f := newFixture(t)
	dir := f.recipe(t, "r", needsMigration)

	report, err := NewRunner(zap.NewNop(), Options{DryRun: true}).Run(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)

	res := report.Results[0]
	assert.Equal(t, OutcomeMigrated, res.Outcome)
	assert.Contains(t, res.Diff, "+++ "+filepath.Join(dir, recipe.MetaFileName))
	assert.Contains(t, res.Diff, "+    - {{ stdlib(\"c\") }}\n")
	assert.Equal(t, needsMigration, read(t, dir))
}

func TestRunner_CheckOnly(t *testing.T) {
	f := newFixture(t)
	pending := f.recipe(t, "pending", needsMigration)
	done := f.recipe(t, "done", alreadyMigrated)

	report, err := NewRunner(zap.NewNop(), Options{CheckOnly: true}).Run(context.Background(), []string{pending, done})
	require.NoError(t, err)

	assert.Equal(t, OutcomePending, report.Results[0].Outcome)
	assert.Equal(t, OutcomeSkipped, report.Results[1].Outcome)
	require.Len(t, report.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeNeedsMigration, report.Diagnostics.Warnings[0].Code)
	assert.Equal(t, needsMigration, read(t, pending))
}

func TestRunner_Cancelled(t *testing.T) {
	f := newFixture(t)
	dir := f.recipe(t, "r", needsMigration)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(zap.NewNop(), Options{}).Run(ctx, []string{dir})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, needsMigration, read(t, dir))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "migrated", OutcomeMigrated.String())
	assert.Equal(t, "pending", OutcomePending.String())
	assert.Equal(t, "unknown", Outcome(0).String())
}

func TestUniqueDirs(t *testing.T) {
	assert.Equal(t, []string{"a", "b/"}, uniqueDirs([]string{"a", "b/", "a/", "./a", "b"}))
}
