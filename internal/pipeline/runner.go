package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/backmassage/splitmux/internal/config"
	"github.com/backmassage/splitmux/internal/display"
	apperrors "github.com/backmassage/splitmux/internal/errors"
	"github.com/backmassage/splitmux/internal/logging"
	"github.com/backmassage/splitmux/internal/planner"
	"github.com/backmassage/splitmux/internal/probe"
)

// ChapterLister lists the chapters of a media file.
type ChapterLister interface {
	ListChapters(ctx context.Context, path string) ([]probe.Chapter, error)
}

// Converter produces the output file for one unit.
type Converter interface {
	Convert(ctx context.Context, unit *planner.WorkUnit) error
}

// Runner holds the collaborators for one run.
type Runner struct {
	Cfg       *config.Config
	Log       *logging.Logger
	Lister    ChapterLister // Chapter mode only.
	Converter Converter
}

// RunChapters splits cfg.Input by its chapter markers.
func (r *Runner) RunChapters(ctx context.Context) (RunStats, error) {
	r.Log.Info("Input: %s", r.Cfg.Input)
	chapters, err := r.Lister.ListChapters(ctx, r.Cfg.Input)
	if err != nil {
		return RunStats{}, fmt.Errorf("list chapters of %s: %w", r.Cfg.Input, err)
	}
	r.Log.Info("Found chapters: %d", len(chapters))

	plan, err := planner.PlanChapters(r.Cfg, chapters)
	if err != nil {
		return RunStats{}, err
	}
	return r.execute(ctx, plan)
}

// RunEpisodes retags every episode file under cfg.Input.
func (r *Runner) RunEpisodes(ctx context.Context) (RunStats, error) {
	r.Log.Info("Input: %s", r.Cfg.Input)
	found, err := Discover(r.Cfg.Input)
	if err != nil {
		return RunStats{}, fmt.Errorf("discover files in %s: %w", r.Cfg.Input, err)
	}
	for _, path := range found.Skipped {
		r.Log.Warn("Skipping non-media file: %s", path)
	}
	if n := len(found.Skipped); n > 0 {
		r.Log.Warn("Skipped %d non-media files", n)
	}

	plan, err := planner.PlanEpisodes(r.Cfg, found.Files)
	if err != nil {
		return RunStats{}, err
	}
	r.Log.Info("Found %d files", plan.Found)
	return r.execute(ctx, plan)
}

// execute prepares the output root and converts every unit in order,
// stopping at the first failure.
func (r *Runner) execute(ctx context.Context, plan *planner.Plan) (RunStats, error) {
	stats := RunStats{Found: plan.Found, Total: len(plan.Units)}
	start := time.Now()

	if r.Cfg.DryRun || r.Log.Verbose() {
		display.PrintPlan(r.Log.Writer(), plan)
	}
	if r.Cfg.DryRun {
		r.Log.Success("[DRY] %d of %d planned into %s; nothing written", stats.Total, stats.Found, plan.OutputRoot)
		return stats, nil
	}

	if err := PrepareOutputRoot(plan.OutputRoot, r.Cfg.Force); err != nil {
		return stats, err
	}
	r.Log.Info("Output: %s", plan.OutputRoot)

	for i := range plan.Units {
		unit := &plan.Units[i]
		stats.Current = unit.Index

		if err := ctx.Err(); err != nil {
			r.Log.Warn("Interrupted")
			return stats, err
		}

		r.Log.Info("processing %d/%d: %s", stats.Current, stats.Total, unit.Name)
		if err := os.MkdirAll(unit.OutputDir, 0o755); err != nil {
			return stats, fmt.Errorf("create output directory %s: %w", unit.OutputDir, err)
		}

		unitStart := time.Now()
		if err := r.Converter.Convert(ctx, unit); err != nil {
			r.Log.Error("Failed: %s", unit.Name)
			return stats, fmt.Errorf("%s: %w", unit.Name, err)
		}

		stats.Converted++
		if info, err := os.Stat(unit.OutputPath); err == nil {
			stats.TotalOutputBytes += info.Size()
		}
		r.Log.Debug("  done in %s -> %s", display.FormatElapsed(time.Since(unitStart)), unit.OutputPath)
	}

	stats.Elapsed = time.Since(start)
	r.logSummary(&stats)
	return stats, nil
}

// PrepareOutputRoot creates root. An existing root is a conflict unless
// force is set, in which case it is reused as-is.
func PrepareOutputRoot(root string, force bool) error {
	info, err := os.Stat(root)
	switch {
	case err == nil && !info.IsDir():
		return apperrors.Conflictf("output path %s exists and is not a directory", root)
	case err == nil && !force:
		return apperrors.Conflictf("output directory %s already exists, use -f option to force overwrite", root)
	case err == nil:
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("stat output directory %s: %w", root, err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", root, err)
	}
	return nil
}

func (r *Runner) logSummary(stats *RunStats) {
	r.Log.Info("==============================")
	r.Log.Success("Done: %d of %d converted in %s", stats.Converted, stats.Total, display.FormatElapsed(stats.Elapsed))
	r.Log.Info("  Total output size: %s", display.FormatBytes(stats.TotalOutputBytes))
}
