package naming

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// PadIndex zero-pads n to the number of digits in total.
//
//	PadIndex(3, 12)  -> "03"
//	PadIndex(3, 9)   -> "3"
//	PadIndex(7, 100) -> "007"
func PadIndex(n, total int) string {
	return fmt.Sprintf("%0*d", len(strconv.Itoa(total)), n)
}

// ChapterFileName builds the sanitized file name for a chapter:
//
//	<number padded to width of total> - <title><ext>
func ChapterFileName(number, total int, title, ext string) string {
	return Sanitize(PadIndex(number, total) + " - " + title + ext)
}

// EpisodeOutputPath mirrors inputPath from inputRoot into outputRoot,
// keeping its relative directory and stem and using ext (with dot) as the
// new extension. The name is not sanitized.
//
//	/in/Show/Season 1/Show S01E01 Pilot.mkv -> /out/Season 1/Show S01E01 Pilot<ext>
func EpisodeOutputPath(inputRoot, outputRoot, inputPath, ext string) (string, error) {
	relDir, err := filepath.Rel(inputRoot, filepath.Dir(inputPath))
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", inputPath, err)
	}
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputRoot, relDir, stem+ext), nil
}
