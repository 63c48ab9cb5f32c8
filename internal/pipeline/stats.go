package pipeline

import "time"

// RunStats tracks aggregate counters and byte totals across a run.
type RunStats struct {
	Found            int // Chapters or files found before filtering.
	Total            int // Units planned.
	Current          int // 1-based index of the unit in progress.
	Converted        int
	TotalOutputBytes int64
	Elapsed          time.Duration
}

// Remaining returns the number of planned units not yet converted.
func (s *RunStats) Remaining() int {
	return s.Total - s.Converted
}
