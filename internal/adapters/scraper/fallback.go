package scraper

import (
	"strings"

	"go.trai.ch/lunchcal/internal/core/domain"
)

// ParseMarkdownFallback scans rendered page markdown line by line. A line
// mentioning a weekday opens that day; the first following non-heading,
// non-empty line becomes its meal. Nutrition never survives this path.
func ParseMarkdownFallback(markdown string) domain.RawWeek {
	week := make(domain.RawWeek)

	var currentDay string
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		matched := false
		for _, day := range domain.Weekdays {
			if strings.Contains(lower, day) {
				currentDay = day
				week[day] = domain.RawDay{}
				matched = true
			}
		}
		if matched {
			continue
		}

		if currentDay == "" || line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if day := week[currentDay]; day.Meal == "" {
			day.Meal = line
			week[currentDay] = day
		}
	}

	return week
}
