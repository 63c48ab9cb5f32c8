// Package metadata builds the per-unit tag record and serializes it as an
// ffmpeg FFMETADATA1 sidecar.
package metadata

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/backmassage/splitmux/internal/config"
	"github.com/backmassage/splitmux/internal/naming"
	"github.com/backmassage/splitmux/internal/probe"
)

// Header is the first line of every sidecar file.
const Header = ";FFMETADATA1"

// Tags is the metadata written for one output file. Empty fields other
// than Title are omitted from the sidecar.
type Tags struct {
	Title       string
	Track       string
	Artist      string
	AlbumArtist string
	Composer    string
	Album       string
	Genre       string
	Date        string
}

// Pair is one key=value sidecar entry.
type Pair struct {
	Key   string
	Value string
}

// Pairs returns the set fields in sidecar order. title is always present,
// even when empty.
func (t Tags) Pairs() []Pair {
	fields := []Pair{
		{"title", t.Title},
		{"track", t.Track},
		{"artist", t.Artist},
		{"album_artist", t.AlbumArtist},
		{"composer", t.Composer},
		{"album", t.Album},
		{"genre", t.Genre},
		{"date", t.Date},
	}
	out := fields[:0]
	for _, p := range fields {
		if p.Key == "title" || p.Value != "" {
			out = append(out, p)
		}
	}
	return out
}

// WriteSidecar writes the header line followed by one key=value line per
// set field. Values are written as-is.
func (t Tags) WriteSidecar(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header)
	for _, p := range t.Pairs() {
		fmt.Fprintf(bw, "%s=%s\n", p.Key, p.Value)
	}
	return bw.Flush()
}

// Track renders "<index>/<total>".
func Track(index, total int) string {
	return strconv.Itoa(index) + "/" + strconv.Itoa(total)
}

// ForChapter builds the tags for chapter c of total chapters in input.
//
// title and track always come from the chapter. An artist override seeds
// artist, album_artist and composer; composer and album_artist can then be
// overridden individually. album falls back to the input's base name.
func ForChapter(c probe.Chapter, total int, input string, meta config.Metadata) Tags {
	t := Tags{
		Title: c.Title,
		Track: Track(c.Number, total),
		Genre: meta.Genre,
		Date:  meta.Date,
	}
	if meta.Artist != "" {
		t.Artist = meta.Artist
		t.AlbumArtist = meta.Artist
		t.Composer = meta.Artist
	}
	if meta.Composer != "" {
		t.Composer = meta.Composer
	}
	if meta.AlbumArtist != "" {
		t.AlbumArtist = meta.AlbumArtist
	}
	t.Album = meta.Album
	if t.Album == "" {
		base := filepath.Base(input)
		t.Album = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return t
}

// Seasons tracks the highest episode number per season and the largest
// season number across a batch.
type Seasons struct {
	maxEpisode map[int]int
	maxSeason  int
}

// NewSeasons returns an empty tracker.
func NewSeasons() *Seasons {
	return &Seasons{maxEpisode: make(map[int]int)}
}

// Add records ep. A season's maximum is at least 1, so an E00 special
// alone in its season renders as track 0/1.
func (s *Seasons) Add(ep naming.Episode) {
	s.maxEpisode[ep.Season] = max(s.maxEpisode[ep.Season], ep.Episode, 1)
	s.maxSeason = max(s.maxSeason, ep.Season)
}

// MaxEpisode returns the highest episode number seen in season, or 0 for
// a season never added.
func (s *Seasons) MaxEpisode(season int) int {
	return s.maxEpisode[season]
}

// Album renders "Season <n>" padded to the width of the largest season
// number seen.
func (s *Seasons) Album(season int) string {
	return "Season " + naming.PadIndex(season, s.maxSeason)
}

// ForEpisode builds the tags for ep. Show name fills artist, album_artist
// and composer; only genre and date are taken from meta.
func ForEpisode(ep naming.Episode, seasons *Seasons, meta config.Metadata) Tags {
	return Tags{
		Title:       ep.Title,
		Track:       Track(ep.Episode, seasons.MaxEpisode(ep.Season)),
		Artist:      ep.Show,
		AlbumArtist: ep.Show,
		Composer:    ep.Show,
		Album:       seasons.Album(ep.Season),
		Genre:       meta.Genre,
		Date:        meta.Date,
	}
}
