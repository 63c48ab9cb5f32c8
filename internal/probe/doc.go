// Package probe lists the chapters of a media file with ffprobe.
//
// One JSON call per file:
//
//	ffprobe -i <file> -print_format json -show_chapters -loglevel error
//
// ffprobe may exit non-zero while still printing a usable document, so the
// combined output is parsed regardless of exit status. [ParseChapters] is
// exported so the wire handling can be tested without a real binary.
package probe
