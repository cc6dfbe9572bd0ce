// Package batch runs the stdlib migration over many recipe directories.
//
// Each recipe is handled inside its own failure boundary: a recipe that
// cannot be loaded or migrated is recorded in the report and the run goes
// on with the others. Recipes are processed concurrently, but a directory
// listed twice is only processed once, so no file is ever migrated by two
// workers at the same time.
package batch
