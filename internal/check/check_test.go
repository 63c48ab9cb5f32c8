package check

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/splitmux/internal/config"
)

type recordLogger struct {
	lines []string
}

func (r *recordLogger) add(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}
func (r *recordLogger) Info(f string, a ...interface{})    { r.add("INFO", f, a...) }
func (r *recordLogger) Success(f string, a ...interface{}) { r.add("SUCCESS", f, a...) }
func (r *recordLogger) Warn(f string, a ...interface{})    { r.add("WARN", f, a...) }
func (r *recordLogger) Error(f string, a ...interface{})   { r.add("ERROR", f, a...) }

func TestCheckDeps_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	cfg := config.DefaultConfig(config.ModeChapters)
	cfg.Tools.FFmpeg = missing
	assert.ErrorIs(t, CheckDeps(&cfg), ErrFfmpegNotFound)

	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not found in PATH")
	}
	cfg.Tools.FFmpeg = "ffmpeg"
	cfg.Tools.FFprobe = missing
	assert.ErrorIs(t, CheckDeps(&cfg), ErrFfprobeNotFound)

	cfg.Mode = config.ModeEpisodes
	assert.NoError(t, CheckDeps(&cfg), "episode mode does not need ffprobe")
}

func TestRunCheck_Missing(t *testing.T) {
	cfg := config.DefaultConfig(config.ModeChapters)
	cfg.Tools.FFmpeg = filepath.Join(t.TempDir(), "nope")
	cfg.Tools.FFprobe = cfg.Tools.FFmpeg

	log := &recordLogger{}
	assert.False(t, RunCheck(context.Background(), &cfg, log))
	require.NotEmpty(t, log.lines)
	assert.Contains(t, log.lines[1], "ERROR ffmpeg not found")
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "ffmpeg version 6.1.1", FirstLine("\nffmpeg version 6.1.1\nbuilt with gcc\n"))
	assert.Equal(t, "single", FirstLine("single"))
	assert.Equal(t, "", FirstLine(""))
}

func TestHasDemuxer(t *testing.T) {
	listing := `File formats:
 D. = Demuxing supported
 .E = Muxing supported
 --
 D  ffmetadata      FFmpeg metadata in text
 D  mov,mp4,m4a,3gp,3g2,mj2 QuickTime / MOV
  E mp3             MP3 (MPEG audio layer 3)
`
	assert.True(t, HasDemuxer(listing, "ffmetadata"))
	assert.True(t, HasDemuxer(listing, "m4a"))
	assert.False(t, HasDemuxer(listing, "mp3"), "mux-only formats do not count")
	assert.False(t, HasDemuxer(listing, "matroska"))
}
