package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stdlib-migrator/internal/batch"
	"stdlib-migrator/internal/diagnostic"
)

var (
	migratedColor = color.New(color.FgGreen, color.Bold)
	pendingColor  = color.New(color.FgYellow, color.Bold)
	failedColor   = color.New(color.FgRed, color.Bold)
	quietColor    = color.New(color.Faint)
)

func runMigrate(cmd *cobra.Command, args []string) error {
	runner := batch.NewRunner(logger, batch.Options{Jobs: jobs, DryRun: dryRun})

	report, err := runner.Run(commandContext(cmd), args)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)

	return report.Diagnostics.Error()
}

func runCheck(cmd *cobra.Command, args []string) error {
	runner := batch.NewRunner(logger, batch.Options{Jobs: jobs, CheckOnly: true})

	report, err := runner.Run(commandContext(cmd), args)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)

	if err := report.Diagnostics.Error(); err != nil {
		return err
	}

	if n := report.Count(batch.OutcomePending); n > 0 {
		return fmt.Errorf("%d recipe(s) need migration", n)
	}

	return nil
}

// printReport writes one status line per recipe, dry-run diffs, the
// diagnostics and a summary.
func printReport(w io.Writer, report *batch.Report) {
	for _, res := range report.Results {
		statusColor(res.Outcome).Fprintf(w, "%-9s", res.Outcome)
		fmt.Fprintf(w, " %s\n", res.Recipe)

		if res.Diff != "" {
			fmt.Fprint(w, res.Diff)
		}
	}

	if diags := report.Diagnostics.All(); len(diags) > 0 {
		fmt.Fprintln(w)

		for _, d := range diags {
			severityColor(d.Severity).Fprintf(w, "%-7s", d.Severity)
			fmt.Fprintf(w, " %s\n", d)
		}
	}

	fmt.Fprintf(w, "\n%d migrated, %d unchanged, %d skipped, %d pending, %d missing, %d failed\n",
		report.Count(batch.OutcomeMigrated),
		report.Count(batch.OutcomeUnchanged),
		report.Count(batch.OutcomeSkipped),
		report.Count(batch.OutcomePending),
		report.Count(batch.OutcomeMissing),
		report.Count(batch.OutcomeFailed))
}

func statusColor(o batch.Outcome) *color.Color {
	switch o {
	case batch.OutcomeMigrated:
		return migratedColor
	case batch.OutcomePending:
		return pendingColor
	case batch.OutcomeFailed:
		return failedColor
	default:
		return quietColor
	}
}

func severityColor(s diagnostic.DiagnosticSeverity) *color.Color {
	switch s {
	case diagnostic.DiagnosticError:
		return failedColor
	case diagnostic.DiagnosticWarning:
		return pendingColor
	default:
		return quietColor
	}
}

// commandContext returns the command's context, which is unset when a
// command function is called directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
