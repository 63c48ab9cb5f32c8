// Package pipeline drives a run: it gathers sources, plans work units,
// prepares the output root, and converts each unit in order.
//
// Types:
//   - Runner (runner.go): RunChapters and RunEpisodes entry points
//   - RunStats (stats.go): counters and output byte totals
//
// Functions:
//   - Discover(inputDir) (discover.go): files exactly two levels deep, split
//     into media and skipped; symlinks followed, dotfiles ignored
//   - PrepareOutputRoot(root, force) (runner.go): the conflict check
//
// A run is strictly sequential and stops at the first failing unit.
package pipeline
