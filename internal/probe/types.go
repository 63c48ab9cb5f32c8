package probe

// Chapter is one chapter marker reported by ffprobe, numbered from 1 in the
// order ffprobe lists them. Start and End are decimal seconds, kept as text
// so they reach ffmpeg's -ss/-to unchanged.
type Chapter struct {
	Number int
	Title  string
	Start  string
	End    string
}
