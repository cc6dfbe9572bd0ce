package cstdlib

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"stdlib-migrator/internal/recipe"
	"stdlib-migrator/internal/section"
)

// MigrateLines splits lines into sections, processes each in document order
// and returns the concatenation. The first failing section aborts.
func MigrateLines(lines []string, meta *recipe.Meta) ([]string, error) {
	sections, err := section.Split(lines, meta)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(lines)+2*len(sections))

	for _, s := range sections {
		processed, err := processSection(s, meta)
		if err != nil {
			return nil, err
		}

		out = append(out, processed...)
	}

	return out, nil
}

// Migrate rewrites the meta.yaml in recipeDir with the stdlib dependency
// added where needed. A missing file is not an error. The file is only
// written once every section has been processed, and only if its content
// changed; the returned bool reports whether it was.
func Migrate(recipeDir string, attrs *recipe.Attrs) (bool, error) {
	path := filepath.Join(recipeDir, recipe.MetaFileName)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to stat recipe file %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read recipe file %s: %w", path, err)
	}

	content, err := Rewrite(string(data), &attrs.Meta)
	if err != nil {
		return false, fmt.Errorf("failed to migrate %s: %w", path, err)
	}

	if content == string(data) {
		return false, nil
	}

	// Replace the link target, not the link.
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve recipe file %s: %w", path, err)
	}

	err = writeFileAtomic(target, []byte(content), info.Mode().Perm())
	if err != nil {
		return false, err
	}

	return true, nil
}

// Rewrite returns the migrated form of raw recipe text.
func Rewrite(raw string, meta *recipe.Meta) (string, error) {
	lines, err := MigrateLines(recipe.SplitLines(raw), meta)
	if err != nil {
		return "", err
	}

	return recipe.JoinLines(lines), nil
}

// writeFileAtomic replaces path with data through a temporary file in the
// same directory, so readers never observe a partially written recipe.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}

	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	_, err = tmp.Write(data)
	if err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	err = os.Chmod(tmpName, perm)
	if err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}

	err = os.Rename(tmpName, path)
	if err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
