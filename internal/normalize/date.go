package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type relativePattern struct {
	re   *regexp.Regexp
	unit time.Duration
}

// German first, then English, matching the boards the extractors visit.
// Months are approximated as 30 days.
var relativePatterns = []relativePattern{
	{regexp.MustCompile(`vor (\d+) stunde`), time.Hour},
	{regexp.MustCompile(`vor (\d+) tag`), 24 * time.Hour},
	{regexp.MustCompile(`vor (\d+) woche`), 7 * 24 * time.Hour},
	{regexp.MustCompile(`vor (\d+) monat`), 30 * 24 * time.Hour},
	{regexp.MustCompile(`(\d+) hour.*ago`), time.Hour},
	{regexp.MustCompile(`(\d+) day.*ago`), 24 * time.Hour},
	{regexp.MustCompile(`(\d+) week.*ago`), 7 * 24 * time.Hour},
	{regexp.MustCompile(`(\d+) month.*ago`), 30 * 24 * time.Hour},
}

// ParseRelativeDate resolves phrases like "vor 2 Stunden", "3 days ago",
// "gestern" or "today" against now. The boolean is false for text that
// is not a recognized relative date.
func ParseRelativeDate(text string, now time.Time) (time.Time, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return time.Time{}, false
	}
	if strings.Contains(text, "heute") || strings.Contains(text, "today") {
		return now, true
	}
	if strings.Contains(text, "gestern") || strings.Contains(text, "yesterday") {
		return now.AddDate(0, 0, -1), true
	}
	for _, p := range relativePatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return now.Add(-time.Duration(n) * p.unit), true
		}
	}
	return time.Time{}, false
}
