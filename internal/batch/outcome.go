package batch

import "stdlib-migrator/internal/common"

// Outcome is the result of processing one recipe.
type Outcome int

const (
	_ Outcome = iota // zero value is not a valid outcome

	// OutcomeMigrated means the recipe was (or, in a dry run, would be) rewritten.
	OutcomeMigrated
	// OutcomeUnchanged means the migration ran but produced identical content.
	OutcomeUnchanged
	// OutcomeSkipped means the filter gate ruled the recipe out.
	OutcomeSkipped
	// OutcomePending means the recipe needs migration (check mode only).
	OutcomePending
	// OutcomeMissing means the directory has no meta.yaml.
	OutcomeMissing
	// OutcomeFailed means loading or migrating the recipe failed.
	OutcomeFailed
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMigrated:
		return "migrated"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeSkipped:
		return "skipped"
	case OutcomePending:
		return "pending"
	case OutcomeMissing:
		return "missing"
	case OutcomeFailed:
		return "failed"
	default:
		return common.UnknownStr
	}
}
