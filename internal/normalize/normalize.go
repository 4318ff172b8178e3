// Field cleanup applied between raw extraction and the output document.

package normalize

import (
	"strings"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"

	"go-crystal-scraper/internal/models"
)

// CleanText collapses every whitespace run (spaces, tabs, newlines) to a
// single space and trims the ends. Idempotent.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate caps s at max bytes, backing up so a multi-byte rune is never
// cut in half. max <= 0 means unbounded.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Validate reports whether a record carries the minimum viable field
// set: title, company, url and source. Everything else may be empty.
func Validate(job models.Job) bool {
	return job.Title != "" && job.Company != "" && job.URL != "" && job.Source != ""
}

// Deduplicate drops records whose URL was already seen, keeping the
// first occurrence and the original order.
func Deduplicate(jobs []models.Job) []models.Job {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if !seen.Add(job.URL) {
			continue
		}
		out = append(out, job)
	}
	return out
}
