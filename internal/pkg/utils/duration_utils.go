package utils

import (
	"fmt"
	"strings"
)

// FormatSeconds converts a number of seconds to a compact human-readable
// duration. Example: 604800 => "7d", 90061 => "1d 1h 1m 1s", 0 => "0s".
func FormatSeconds(seconds int64) string {
	if seconds == 0 {
		return "0s"
	}
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	units := []struct {
		suffix string
		size   int64
	}{
		{"d", 86400},
		{"h", 3600},
		{"m", 60},
		{"s", 1},
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		if n := seconds / u.size; n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.suffix))
			seconds -= n * u.size
		}
	}
	return sign + strings.Join(parts, " ")
}
