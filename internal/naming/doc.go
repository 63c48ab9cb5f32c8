// Package naming turns parsed sources into output file names.
//
// It covers four concerns, one file each:
//   - parser.go: episode filename parsing ("<show> SxxExx <title>")
//   - sanitize.go: reducing a title to a single safe path segment
//   - outputpath.go: chapter file names and mirrored episode paths
//   - collision.go: in-run detection of two units claiming one output path
package naming
