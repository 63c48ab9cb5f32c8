// Package selection parses chapter selector expressions such as "1,3,5-7"
// into a whitelist and answers membership queries against it.
package selection

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/backmassage/splitmux/internal/errors"
)

var rangePattern = regexp.MustCompile(`^(\d+)-(\d+)$`)

// Kind tags a Selector variant.
type Kind int

const (
	KindIndex Kind = iota // A single chapter number.
	KindRange             // An inclusive Low..High span.
)

// Selector is one comma-separated token of a selector expression.
// For KindIndex, Low and High are equal.
type Selector struct {
	Kind Kind
	Low  int
	High int
}

// Index returns a single-chapter selector.
func Index(n int) Selector { return Selector{Kind: KindIndex, Low: n, High: n} }

// Range returns an inclusive range selector.
func Range(low, high int) Selector { return Selector{Kind: KindRange, Low: low, High: high} }

// Contains reports whether chapter number n is covered by s.
func (s Selector) Contains(n int) bool {
	return s.Low <= n && n <= s.High
}

func (s Selector) String() string {
	if s.Kind == KindRange {
		return fmt.Sprintf("%d-%d", s.Low, s.High)
	}
	return strconv.Itoa(s.Low)
}

// Whitelist is an ordered list of selectors. A nil Whitelist allows every
// chapter.
type Whitelist []Selector

// Parse splits expr on commas and validates every token against total.
// An empty expression returns a nil Whitelist.
func Parse(expr string, total int) (Whitelist, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}

	var wl Whitelist
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		sel, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		if sel.Low < 1 || sel.High > total || sel.Low > sel.High {
			return nil, apperrors.Validationf("chapter selector %q out of range (1-%d)", sel.String(), total)
		}
		wl = append(wl, sel)
	}
	return wl, nil
}

func parseToken(token string) (Selector, error) {
	if isDigits(token) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return Selector{}, apperrors.Validationf("invalid chapter selector %q", token).WithCause(err)
		}
		return Index(n), nil
	}
	if m := rangePattern.FindStringSubmatch(token); m != nil {
		low, errLow := strconv.Atoi(m[1])
		high, errHigh := strconv.Atoi(m[2])
		if err := apperrors.Join(errLow, errHigh); err != nil {
			return Selector{}, apperrors.Validationf("invalid chapter selector %q", token).WithCause(err)
		}
		return Range(low, high), nil
	}
	return Selector{}, apperrors.Validationf("invalid chapter selector %q", token)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Allows reports whether chapter number n matches any selector.
func (w Whitelist) Allows(n int) bool {
	if w == nil {
		return true
	}
	for _, sel := range w {
		if sel.Contains(n) {
			return true
		}
	}
	return false
}
