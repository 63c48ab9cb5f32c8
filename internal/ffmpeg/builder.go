package ffmpeg

import (
	"strconv"
	"strings"

	"github.com/google/shlex"

	apperrors "github.com/backmassage/splitmux/internal/errors"
	"github.com/backmassage/splitmux/internal/planner"
)

// DefaultOutputArgs copies every stream without re-encoding.
var DefaultOutputArgs = []string{"-vcodec", "copy", "-acodec", "copy"}

// ParseFlags tokenizes the user's --flags value with shell quoting rules.
// When the flag was not given at all, DefaultOutputArgs is returned; an
// explicitly empty value yields no output arguments.
func ParseFlags(raw string, given bool) ([]string, error) {
	if !given {
		return append([]string(nil), DefaultOutputArgs...), nil
	}
	args, err := shlex.Split(raw)
	if err != nil {
		return nil, apperrors.Validationf("invalid --flags %q", raw).WithCause(err)
	}
	return args, nil
}

// Build constructs the complete ffmpeg argument slice for unit, including
// the binary name at index 0.
func Build(bin string, unit *planner.WorkUnit, sidecar string, outputArgs []string) []string {
	args := make([]string, 0, 24+len(outputArgs))

	// --- Preamble ---
	args = append(args, bin, "-hwaccel", "auto", "-v", "quiet", "-y")

	// --- Inputs: media, then metadata sidecar ---
	args = append(args, "-i", unit.InputPath, "-i", sidecar)

	// --- Drop inherited chapters/metadata, import the sidecar's ---
	args = append(args,
		"-map_chapters", "-1",
		"-map_metadata", "-1",
		"-map_metadata", "1",
	)

	// --- Codec / user flags ---
	args = append(args, outputArgs...)

	// --- Trim (chapter mode) ---
	if unit.Trim {
		args = append(args, "-ss", unit.Start, "-to", unit.End)
	}

	return append(args, unit.OutputPath)
}

// CommandLine renders args as a single shell-like line for logging.
// Arguments containing whitespace or shell metacharacters are double-quoted.
func CommandLine(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'\\$`;&|<>*?()") {
			quoted[i] = strconv.Quote(a)
		} else {
			quoted[i] = a
		}
	}
	return strings.Join(quoted, " ")
}
