// Package format renders counters, rates and durations for human output.
package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Rate renders a hashes-per-second figure with SI tiers.
func Rate(hashesPerSec float64) string {
	switch {
	case hashesPerSec >= 1e9:
		return fmt.Sprintf("%.2f GH/s", hashesPerSec/1e9)
	case hashesPerSec >= 1e6:
		return fmt.Sprintf("%.2f MH/s", hashesPerSec/1e6)
	case hashesPerSec >= 1e3:
		return fmt.Sprintf("%.2f kH/s", hashesPerSec/1e3)
	default:
		return fmt.Sprintf("%.2f H/s", hashesPerSec)
	}
}

// Duration renders whole seconds as "1h 2m 3s", dropping leading zero units.
func Duration(d time.Duration) string {
	return secondsString(int64(d.Seconds()))
}

// Seconds is Duration for spans counted in float seconds. Estimates over a
// large search space can exceed the nanosecond range of time.Duration, so
// they never pass through it.
func Seconds(secs float64) string {
	if secs < 0 {
		secs = 0
	}
	return secondsString(int64(secs))
}

func secondsString(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// Count renders an attempt or space count with comma grouping.
func Count(n uint64) string {
	return humanize.Comma(int64(n))
}
