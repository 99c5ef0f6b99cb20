package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// secondsPerMinute is used by Format and Parse.
const secondsPerMinute = 60

// errBadClock is returned by Parse for strings that are not MM:SS.
var errBadClock = errors.New("clock must look like MM:SS")

// Format renders seconds as MM:SS. Minutes are not rolled over into hours,
// so 3600 renders as "60:00". Negative input is treated as zero.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%02d:%02d", seconds/secondsPerMinute, seconds%secondsPerMinute)
}

// Parse converts a MM:SS string produced by Format back into seconds.
func Parse(s string) (int, error) {
	minutesPart, secondsPart, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(minutesPart) < 2 || len(secondsPart) != 2 || !isDigits(minutesPart) || !isDigits(secondsPart) {
		return 0, fmt.Errorf("%w: %q", errBadClock, s)
	}

	minutes, err := strconv.Atoi(minutesPart)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadClock, s)
	}

	secs, err := strconv.Atoi(secondsPart)
	if err != nil || secs >= secondsPerMinute {
		return 0, fmt.Errorf("%w: %q", errBadClock, s)
	}

	return minutes*secondsPerMinute + secs, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}
