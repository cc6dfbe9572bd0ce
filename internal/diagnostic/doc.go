// Package diagnostic provides structured per-recipe warnings and errors
// collected while migrating a batch of recipes.
//
// Key capabilities:
//   - Per-recipe failure records that do not stop the batch
//   - Stable codes for each kind of failure
//   - A combined error for callers that need a single result
package diagnostic
