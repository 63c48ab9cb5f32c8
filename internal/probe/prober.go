package probe

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"unicode/utf8"

	apperrors "github.com/backmassage/splitmux/internal/errors"
)

// Lister lists chapters using a configured ffprobe binary.
type Lister struct {
	FFprobe string // Binary name or path; "ffprobe" when empty.
}

// ListChapters runs ffprobe against path and returns its chapters.
func (l Lister) ListChapters(ctx context.Context, path string) ([]Chapter, error) {
	bin := l.FFprobe
	if bin == "" {
		bin = "ffprobe"
	}
	cmd := exec.CommandContext(ctx, bin, Args(path)...)

	// ffprobe can exit non-zero and still print a complete document.
	out, runErr := cmd.CombinedOutput()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if runErr != nil && len(out) == 0 {
		return nil, apperrors.Parsef("%s produced no output for %s", bin, path).WithCause(runErr)
	}
	return ParseChapters(out)
}

// Args returns the ffprobe argument vector for listing path's chapters.
func Args(path string) []string {
	return []string{"-i", path, "-print_format", "json", "-show_chapters", "-loglevel", "error"}
}

// ParseChapters converts raw ffprobe JSON into numbered chapters.
// Invalid JSON and chapters without a title tag are parse errors.
func ParseChapters(data []byte) ([]Chapter, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Parsef("unable to parse ffprobe JSON %q", truncate(string(data), 200)).WithCause(err)
	}

	chapters := make([]Chapter, 0, len(raw.Chapters))
	for i, c := range raw.Chapters {
		title, ok := c.Tags["title"]
		if !ok {
			return nil, apperrors.Parsef("chapter %d has no title tag", i+1)
		}
		chapters = append(chapters, Chapter{
			Number: i + 1,
			Title:  strings.TrimSpace(title),
			Start:  c.StartTime,
			End:    c.EndTime,
		})
	}
	return chapters, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Chapters []ffprobeChapter `json:"chapters"`
}

type ffprobeChapter struct {
	ID        int64             `json:"id"`
	TimeBase  string            `json:"time_base"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Tags      map[string]string `json:"tags"`
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
