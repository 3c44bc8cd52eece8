// utils/timeutil.go
package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ClockToMinutes converts an "HH:MM" clock string to minutes since midnight.
// The second return value is false when the string is not a valid clock.
func ClockToMinutes(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// MinutesToClock renders minutes since midnight as zero-padded "HH:MM",
// wrapping past midnight.
func MinutesToClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ComputeEndTime adds a fractional-hour duration to a departure clock and
// returns the arrival clock. Only the wall-clock time wraps past midnight;
// no day rollover is tracked because tours never span multiple days.
func ComputeEndTime(startTime string, durationHours float64) string {
	start, ok := ClockToMinutes(startTime)
	if !ok {
		return startTime
	}
	return MinutesToClock(start + int(math.Round(durationHours*60)))
}

// IsISODate reports whether s looks like a "YYYY-MM-DD" date. Selection keys
// and plan dates stay in this format so lexicographic order is chronological.
func IsISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
