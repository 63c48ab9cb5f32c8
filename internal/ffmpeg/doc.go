// Package ffmpeg builds and executes the per-unit ffmpeg command.
//
// Every command shares one skeleton:
//
//	ffmpeg -hwaccel auto -v quiet -y -i <input> -i <sidecar>
//	       -map_chapters -1 -map_metadata -1 -map_metadata 1
//	       <user flags | -vcodec copy -acodec copy>
//	       [-ss <start> -to <end>] <output>
//
// The sidecar is an FFMETADATA1 file written to a temporary path for the
// duration of one invocation. See builder.go for the argument vector and
// executor.go for sidecar handling and failure reporting.
package ffmpeg
