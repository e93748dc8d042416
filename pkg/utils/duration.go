package utils

import (
	"fmt"
	"regexp"
	"strconv"

	"flightsearch-service/internal/domain/entity"
)

// isoDurationRegex matches the provider's compact duration notation,
// e.g. "PT2H30M", "PT45M", "PT11H".
var isoDurationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// ParseISODuration parses an ISO 8601 duration string into a Duration.
// A missing hour or minute component defaults to zero.
func ParseISODuration(raw string) (entity.Duration, error) {
	matches := isoDurationRegex.FindStringSubmatch(raw)
	if matches == nil {
		return entity.Duration{}, fmt.Errorf("invalid duration %q", raw)
	}

	hours := atoiOrZero(matches[1])
	minutes := atoiOrZero(matches[2])

	return NewDuration(hours, minutes), nil
}

// NewDuration builds a Duration from hour and minute components.
func NewDuration(hours, minutes int) entity.Duration {
	return entity.Duration{
		Hours:        hours,
		Minutes:      minutes,
		TotalMinutes: hours*60 + minutes,
		Formatted:    FormatDuration(hours, minutes),
	}
}

// FormatDuration renders hour and minute components as "2h 30m". Durations
// under an hour render as "45m".
func FormatDuration(hours, minutes int) string {
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}
