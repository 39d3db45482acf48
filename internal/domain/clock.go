package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrClockFormat = errors.New("invalid clock string, expected HH:MM:SS")

// FormatSeconds renders seconds from session start as a zero-padded HH:MM:SS
// clock string. Values of 100 hours and more overflow the hour field; sessions
// never get close to that.
func FormatSeconds(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds%60)
}

// ParseClock converts an HH:MM:SS clock string back into seconds.
func ParseClock(text string) (int, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrClockFormat, text)
	}

	total := 0
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrClockFormat, text)
		}
		total = total*60 + value
	}

	return total, nil
}
