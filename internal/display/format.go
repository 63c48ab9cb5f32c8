package display

import (
	"fmt"
	"time"
)

var byteUnits = []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// FormatBytes renders n in binary units with one decimal ("1.5 MiB").
// Values below 1 KiB are printed exactly.
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n) / 1024
	i := 0
	for v >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", v, byteUnits[i])
}

// FormatElapsed renders d rounded to whole seconds ("1m5s"); sub-second
// durations render as "<1s".
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	return d.Round(time.Second).String()
}

// FormatTimestamp renders an ffprobe seconds value ("3600.500000") as
// h:mm:ss.mmm. Unparseable input is returned unchanged.
func FormatTimestamp(seconds string) string {
	var f float64
	if _, err := fmt.Sscanf(seconds, "%g", &f); err != nil || f < 0 {
		return seconds
	}
	ms := int64(f*1000 + 0.5)
	h := ms / 3_600_000
	m := ms / 60_000 % 60
	s := ms / 1000 % 60
	return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, ms%1000)
}
