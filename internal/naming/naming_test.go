package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/backmassage/splitmux/internal/errors"
)

func TestParseEpisode(t *testing.T) {
	cases := []struct {
		name string
		path string
		want Episode
	}{
		{
			name: "dash separated", path: "Show Name - S01E02 - Episode Title.mkv",
			want: Episode{Show: "Show Name", Season: 1, Episode: 2, Title: "Episode Title"},
		},
		{
			name: "space separated", path: "/media/Show/Season 3/Show S03E11 The Return.mp4",
			want: Episode{Show: "Show", Season: 3, Episode: 11, Title: "The Return"},
		},
		{
			name: "multi-episode suffix ignored", path: "Show - S02E05-06 - Two Parter.mkv",
			want: Episode{Show: "Show", Season: 2, Episode: 5, Title: "Two Parter"},
		},
		{
			name: "three digit episode", path: "Long Runner S10E123 Finale.avi",
			want: Episode{Show: "Long Runner", Season: 10, Episode: 123, Title: "Finale"},
		},
		{
			name: "title keeps inner dashes", path: "Show - S01E01 - Part 1 - Arrival.mkv",
			want: Episode{Show: "Show", Season: 1, Episode: 1, Title: "Part 1 - Arrival"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseEpisode(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseEpisode_NoMatch(t *testing.T) {
	for _, path := range []string{
		"Show.S01E02.Title.mkv",
		"Show Name - 1x02 - Title.mkv",
		"S01E02 Title.mkv",
		"random.mkv",
	} {
		t.Run(path, func(t *testing.T) {
			_, err := ParseEpisode(path)
			require.ErrorIs(t, err, apperrors.ErrParse)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Weird/Name: Part*1?", "Weird-Name Part1"},
		{"Back\\Slash", "Back-Slash"},
		{"Keep -_.() 09 az AZ", "Keep -_.() 09 az AZ"},
		{"Café Résumé", "Cafe Resume"},
		{`Quote "this" <now> | & ; '`, "Quote this now    "},
		{"日本語", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.in))
		})
	}
}

func TestSanitize_DropsDisallowed(t *testing.T) {
	got := Sanitize("Weird/Name: Part*1?")
	for _, bad := range []string{"/", ":", "*", "?"} {
		assert.NotContains(t, got, bad)
	}
	for _, keep := range []string{"Weird", "Name", " Part", "1"} {
		assert.Contains(t, got, keep)
	}
}

func TestPadIndex(t *testing.T) {
	cases := []struct {
		n, total int
		want     string
	}{
		{3, 12, "03"},
		{12, 12, "12"},
		{3, 9, "3"},
		{7, 100, "007"},
		{1, 1, "1"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PadIndex(tc.n, tc.total), "PadIndex(%d, %d)", tc.n, tc.total)
	}
}

func TestChapterFileName(t *testing.T) {
	assert.Equal(t, "03 - Chapter 3 The Fall.m4b", ChapterFileName(3, 12, "Chapter 3: The Fall", ".m4b"))
	assert.Equal(t, "1 - Intro-Outro.mka", ChapterFileName(1, 5, "Intro/Outro", ".mka"))
}

func TestEpisodeOutputPath(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ext   string
		want  string
	}{
		{"keeps extension", "/in/Season 1/Show S01E01 Pilot.mkv", ".mkv", "/out/Season 1/Show S01E01 Pilot.mkv"},
		{"overrides extension", "/in/Season 1/Show S01E01 Pilot.mkv", ".mp4", "/out/Season 1/Show S01E01 Pilot.mp4"},
		{"no sanitizing", "/in/S2/Show S02E01 What?.mkv", ".mkv", "/out/S2/Show S02E01 What?.mkv"},
		{"top level file", "/in/Show S01E01 Pilot.mkv", ".mkv", "/out/Show S01E01 Pilot.mkv"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EpisodeOutputPath("/in", "/out", tc.input, tc.ext)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCollisionResolver(t *testing.T) {
	cr := NewCollisionResolver()

	require.NoError(t, cr.Claim("book.m4b#1", "/out/01 - Intro.m4b"))
	require.NoError(t, cr.Claim("book.m4b#1", "/out/01 - Intro.m4b"), "same owner may re-claim")
	require.NoError(t, cr.Claim("book.m4b#2", "/out/02 - Intro.m4b"))

	err := cr.Claim("book.m4b#3", "/out/01 - Intro.m4b")
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.True(t, strings.Contains(err.Error(), "book.m4b#1"), "error names the earlier owner: %v", err)
	require.NoError(t, cr.Claim("book.m4b#2", "/out/02 - Intro.m4b"), "the second claim still belongs to its owner")
}
