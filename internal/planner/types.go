package planner

import (
	"github.com/backmassage/splitmux/internal/config"
	"github.com/backmassage/splitmux/internal/metadata"
)

// WorkUnit is one input segment or file mapped to one output file. It is
// produced by PlanChapters/PlanEpisodes and consumed by the ffmpeg converter.
type WorkUnit struct {
	Index int    // 1-based position within the plan.
	Name  string // Output file name, for progress lines.

	InputPath  string
	OutputPath string
	OutputDir  string

	Tags metadata.Tags

	// Trim points (chapter mode only). Passed to ffmpeg as -ss/-to.
	Trim  bool
	Start string
	End   string
}

// Plan is the ordered list of units for one run.
type Plan struct {
	Mode       config.Mode
	OutputRoot string
	Units      []WorkUnit
	Found      int // Chapters or episode files found before filtering.
}
