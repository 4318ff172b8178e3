package normalize

import "regexp"

// Checked in priority order; the first pattern with a match wins.
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?(?:\s*-\s*\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?)?`),
	regexp.MustCompile(`€\d{1,3}(?:,\d{3})*(?:\.\d{2})?(?:\s*-\s*€\d{1,3}(?:,\d{3})*(?:\.\d{2})?)?`),
	regexp.MustCompile(`(?i)\d{1,3}(?:,\d{3})*\s*(?:USD|EUR|GBP)`),
}

// ExtractSalary pulls the first recognizable salary figure out of free
// text, e.g. "$50,000 - $70,000" out of "Salary: $50,000 - $70,000 per
// year". The boolean is false when no known currency pattern matches.
func ExtractSalary(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, pattern := range salaryPatterns {
		if match := pattern.FindString(text); match != "" {
			return match, true
		}
	}
	return "", false
}
