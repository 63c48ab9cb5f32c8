package display

import (
	"fmt"
	"io"

	"github.com/backmassage/splitmux/internal/term"
)

// PrintBanner writes the name banner in magenta, then the version, to w.
func PrintBanner(w io.Writer, p term.Palette, version string) {
	fmt.Fprint(w, p.Magenta)
	fmt.Fprint(w, `           _ _ _
 ___ _ __ | (_) |_ _ __ ___  _   ___  __
/ __| '_ \| | | __| '_ `+"`"+` _ \| | | \ \/ /
\__ \ |_) | | | |_| | | | | | |_| |>  <
|___/ .__/|_|_|\__|_| |_| |_|\__,_/_/\_\
    |_|
`)
	fmt.Fprint(w, p.Reset)
	fmt.Fprintf(w, "splitmux %s\n", version)
}
