package naming

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/backmassage/splitmux/internal/errors"
)

// reEpisode matches "<show> S<season>E<episode>[-<episode2>] <title>".
// The second episode number of multi-episode files is ignored.
var reEpisode = regexp.MustCompile(`^(.*) S(\d+)E(\d+)(?:-\d+)? (.*)$`)

// Episode holds the fields parsed from an episode filename.
type Episode struct {
	Show    string
	Season  int
	Episode int
	Title   string
}

// ParseEpisode parses the base name of path (extension removed).
// A name that does not match the expected shape is a parse error naming
// the file.
func ParseEpisode(path string) (Episode, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	m := reEpisode.FindStringSubmatch(stem)
	if m == nil {
		return Episode{}, apperrors.Parsef("%s: filename does not match \"<show> SxxExx <title>\"", path)
	}
	season, err := strconv.Atoi(m[2])
	if err != nil {
		return Episode{}, apperrors.Parsef("%s: bad season number %q", path, m[2]).WithCause(err)
	}
	episode, err := strconv.Atoi(m[3])
	if err != nil {
		return Episode{}, apperrors.Parsef("%s: bad episode number %q", path, m[3]).WithCause(err)
	}
	return Episode{
		Show:    strings.TrimRight(m[1], " -"),
		Season:  season,
		Episode: episode,
		Title:   strings.TrimLeft(m[4], " -"),
	}, nil
}
