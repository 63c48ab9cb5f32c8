package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents decomposes characters and drops combining marks, so "é"
// becomes "e" instead of disappearing.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Sanitize reduces name to a single path segment. Path separators become
// "-", accents are folded, and every remaining character outside ASCII
// letters, digits, space and "-_.()" is dropped.
func Sanitize(name string) string {
	name = strings.NewReplacer("/", "-", `\`, "-").Replace(name)
	name = foldAccents(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isAllowed(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(" -_.()", r)
}
