package metadata

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/splitmux/internal/config"
	"github.com/backmassage/splitmux/internal/naming"
	"github.com/backmassage/splitmux/internal/probe"
)

func TestForChapter(t *testing.T) {
	ch := probe.Chapter{Number: 3, Title: "The Fall", Start: "10.0", End: "20.0"}
	input := "/media/books/Great Book.m4b"

	cases := []struct {
		name string
		meta config.Metadata
		want Tags
	}{
		{
			name: "no overrides",
			want: Tags{Title: "The Fall", Track: "3/12", Album: "Great Book"},
		},
		{
			name: "artist seeds three fields",
			meta: config.Metadata{Artist: "Author"},
			want: Tags{Title: "The Fall", Track: "3/12", Artist: "Author", AlbumArtist: "Author", Composer: "Author", Album: "Great Book"},
		},
		{
			name: "specific overrides win",
			meta: config.Metadata{Artist: "Author", Composer: "Narrator", AlbumArtist: "Publisher", Album: "Series 1"},
			want: Tags{Title: "The Fall", Track: "3/12", Artist: "Author", AlbumArtist: "Publisher", Composer: "Narrator", Album: "Series 1"},
		},
		{
			name: "composer without artist",
			meta: config.Metadata{Composer: "Narrator", Genre: "Audiobook", Date: "2021"},
			want: Tags{Title: "The Fall", Track: "3/12", Composer: "Narrator", Album: "Great Book", Genre: "Audiobook", Date: "2021"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ForChapter(ch, 12, input, tc.meta))
		})
	}
}

func TestForEpisode(t *testing.T) {
	eps := []naming.Episode{
		{Show: "Show", Season: 1, Episode: 1, Title: "Pilot"},
		{Show: "Show", Season: 1, Episode: 9, Title: "Finale"},
		{Show: "Show", Season: 12, Episode: 4, Title: "Late"},
	}
	seasons := NewSeasons()
	for _, ep := range eps {
		seasons.Add(ep)
	}

	got := ForEpisode(eps[0], seasons, config.Metadata{Genre: "Drama", Artist: "ignored"})
	assert.Equal(t, Tags{
		Title:       "Pilot",
		Track:       "1/9",
		Artist:      "Show",
		AlbumArtist: "Show",
		Composer:    "Show",
		Album:       "Season 01",
		Genre:       "Drama",
	}, got)

	assert.Equal(t, "4/4", ForEpisode(eps[2], seasons, config.Metadata{}).Track)
	assert.Equal(t, "Season 12", seasons.Album(12))
}

func TestSeasons_SingleDigit(t *testing.T) {
	seasons := NewSeasons()
	seasons.Add(naming.Episode{Season: 2, Episode: 3})
	seasons.Add(naming.Episode{Season: 2, Episode: 1})
	assert.Equal(t, "Season 2", seasons.Album(2))
	assert.Equal(t, 3, seasons.MaxEpisode(2))
}

func TestWriteSidecar(t *testing.T) {
	tags := Tags{Title: "A=B; #1", Track: "1/2", Album: "Book", Date: "2020"}

	var buf bytes.Buffer
	require.NoError(t, tags.WriteSidecar(&buf))
	assert.Equal(t, ";FFMETADATA1\ntitle=A=B; #1\ntrack=1/2\nalbum=Book\ndate=2020\n", buf.String())
}

func TestPairsOrder(t *testing.T) {
	tags := Tags{Date: "d", Genre: "g", Album: "a", Composer: "c", AlbumArtist: "aa", Artist: "ar", Track: "1/1", Title: "t"}
	var keys []string
	for _, p := range tags.Pairs() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"title", "track", "artist", "album_artist", "composer", "album", "genre", "date"}, keys)
}

func TestWriteSidecar_EmptyTitleKept(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tags{Track: "4/9"}.WriteSidecar(&buf))
	assert.Equal(t, ";FFMETADATA1\ntitle=\ntrack=4/9\n", buf.String())
}

func TestSeasons_SpecialOnly(t *testing.T) {
	seasons := NewSeasons()
	special := naming.Episode{Show: "Show", Season: 0, Episode: 0, Title: "Behind the Scenes"}
	seasons.Add(special)

	assert.Equal(t, 1, seasons.MaxEpisode(0))
	assert.Equal(t, "0/1", ForEpisode(special, seasons, config.Metadata{}).Track)
}
