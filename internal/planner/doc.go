// Package planner turns parsed sources into an ordered list of work units.
//
// Implemented:
//   - WorkUnit, Plan (types.go)
//   - PlanChapters: selector filtering, chapter file names, chapter tags (planner.go)
//   - PlanEpisodes: filename parsing, per-season track totals, mirrored paths (planner.go)
//
// Every output path is claimed through a naming.CollisionResolver, so a plan
// never contains two units writing the same file.
package planner
