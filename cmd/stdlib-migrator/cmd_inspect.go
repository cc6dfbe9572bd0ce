package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stdlib-migrator/internal/cstdlib"
	"stdlib-migrator/internal/recipe"
	"stdlib-migrator/internal/section"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func runInspect(cmd *cobra.Command, args []string) error {
	dir := args[0]
	w := cmd.OutOrStdout()

	attrs, err := recipe.LoadDir(dir)
	if err != nil {
		return err
	}

	logger.Debug("recipe loaded", zap.String("recipe", dir), zap.Int("outputs", len(attrs.Meta.Outputs)))

	fmt.Fprintln(w, "parsed recipe:")
	dumpConfig.Fdump(w, attrs.Meta)

	sections, err := section.Split(recipe.SplitLines(attrs.Raw), &attrs.Meta)
	if err != nil {
		return fmt.Errorf("failed to split %s: %w", dir, err)
	}

	fmt.Fprintf(w, "\nsections (skip whole recipe: %t):\n", cstdlib.ShouldSkip(attrs.Raw))

	start := 1

	for _, s := range sections {
		needed, err := cstdlib.SectionNeedsStdlib(s, &attrs.Meta)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "  %-20s lines %d-%d  needs stdlib: %t\n", s.Name, start, start+len(s.Lines)-1, needed)
		start += len(s.Lines)
	}

	return nil
}
