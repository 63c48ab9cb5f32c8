package planner

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/backmassage/splitmux/internal/config"
	apperrors "github.com/backmassage/splitmux/internal/errors"
	"github.com/backmassage/splitmux/internal/metadata"
	"github.com/backmassage/splitmux/internal/naming"
	"github.com/backmassage/splitmux/internal/probe"
	"github.com/backmassage/splitmux/internal/selection"
)

// PlanChapters builds one unit per selected chapter of cfg.Input.
//
// Flow:
//  1. Parse cfg.OnlyChapters against the chapter count
//  2. Keep allowed chapters in probe order
//  3. Name, tag and claim an output path for each
func PlanChapters(cfg *config.Config, chapters []probe.Chapter) (*Plan, error) {
	total := len(chapters)
	whitelist, err := selection.Parse(cfg.OnlyChapters, total)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Mode: config.ModeChapters, OutputRoot: cfg.OutputDir, Found: total}
	ext := cfg.OutputExtension(filepath.Ext(cfg.Input))
	resolver := naming.NewCollisionResolver()

	for i, c := range chapters {
		if !whitelist.Allows(c.Number) {
			continue
		}
		name := naming.ChapterFileName(c.Number, total, c.Title, ext)
		output := filepath.Join(cfg.OutputDir, name)
		owner := fmt.Sprintf("chapter %d (%s)", i+1, c.Title)
		if err := resolver.Claim(owner, output); err != nil {
			return nil, err
		}
		plan.Units = append(plan.Units, WorkUnit{
			Index:      len(plan.Units) + 1,
			Name:       name,
			InputPath:  cfg.Input,
			OutputPath: output,
			OutputDir:  cfg.OutputDir,
			Tags:       metadata.ForChapter(c, total, cfg.Input, cfg.Meta),
			Trim:       true,
			Start:      c.Start,
			End:        c.End,
		})
	}

	if len(plan.Units) == 0 {
		return nil, apperrors.Validationf("no chapters to be processed in %s", cfg.Input)
	}
	return plan, nil
}

// PlanEpisodes builds one unit per episode file, sorted by input path.
// The first filename that does not parse aborts planning.
func PlanEpisodes(cfg *config.Config, files []string) (*Plan, error) {
	type parsed struct {
		path string
		ep   naming.Episode
	}

	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	seasons := metadata.NewSeasons()
	eps := make([]parsed, 0, len(sorted))
	for _, f := range sorted {
		ep, err := naming.ParseEpisode(f)
		if err != nil {
			return nil, err
		}
		seasons.Add(ep)
		eps = append(eps, parsed{path: f, ep: ep})
	}

	if len(eps) == 0 {
		return nil, apperrors.Validationf("no files found in the input dir %s", cfg.Input)
	}

	plan := &Plan{Mode: config.ModeEpisodes, OutputRoot: cfg.OutputDir, Found: len(eps)}
	resolver := naming.NewCollisionResolver()
	for _, p := range eps {
		output, err := naming.EpisodeOutputPath(cfg.Input, cfg.OutputDir, p.path, cfg.OutputExtension(filepath.Ext(p.path)))
		if err != nil {
			return nil, err
		}
		if err := resolver.Claim(p.path, output); err != nil {
			return nil, err
		}
		plan.Units = append(plan.Units, WorkUnit{
			Index:      len(plan.Units) + 1,
			Name:       filepath.Base(output),
			InputPath:  p.path,
			OutputPath: output,
			OutputDir:  filepath.Dir(output),
			Tags:       metadata.ForEpisode(p.ep, seasons, cfg.Meta),
		})
	}
	return plan, nil
}
