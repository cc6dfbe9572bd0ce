// Package main provides the CLI entrypoint for stdlib-migrator.
//
// stdlib-migrator adds the C standard library dependency to conda-style
// recipes that use a compiler:
//   - migrate rewrites meta.yaml files in place (or shows diffs with --dry-run)
//   - check lists recipes that still need the migration
//   - inspect shows how a recipe is parsed and split into sections
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	noColor bool
	jobs    int

	// migrate flags
	dryRun bool

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stdlib-migrator",
	Short: "Add {{ stdlib(\"c\") }} to recipes that use a compiler",
	Long: `stdlib-migrator inserts the C standard library dependency next to every
c, cxx or fortran compiler reference of a conda-style meta.yaml recipe.

Each argument is a recipe directory containing a meta.yaml. Recipes that
already reference the stdlib, or that use no compiler, are left alone.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error

		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [recipe-dir...]",
	Short: "Insert the stdlib dependency into recipes",
	Long: `Rewrites each recipe's meta.yaml in place. A recipe is either fully
migrated or left untouched; failures are reported and the remaining recipes
are still processed.

With --dry-run nothing is written and a unified diff is printed instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMigrate,
}

var checkCmd = &cobra.Command{
	Use:   "check [recipe-dir...]",
	Short: "List recipes that still need the stdlib dependency",
	Long:  `Evaluates the migration filter only. Exits non-zero if any recipe needs migration or cannot be loaded.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [recipe-dir]",
	Short: "Show the parsed requirements and section split of a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Number of recipes processed concurrently")

	migrateCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print diffs instead of writing files")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
