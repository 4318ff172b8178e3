package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-crystal-scraper/internal/models"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already clean", "Embedded Engineer", "Embedded Engineer"},
		{"leading and trailing", "  Embedded Engineer  ", "Embedded Engineer"},
		{"newlines and tabs", "Embedded\n\tSystems\r\nEngineer", "Embedded Systems Engineer"},
		{"internal runs", "a   b     c", "a b c"},
		{"whitespace only", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"", "  x  ", "a\nb\tc", "multi   space", "ümlaut   täxt\n",
	}
	for _, input := range inputs {
		once := CleanText(input)
		assert.Equal(t, once, CleanText(once), "input %q", input)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "abcdef", Truncate("abcdef", 0), "zero max means unbounded")

	//never cut a rune in half: "ü" is two bytes
	got := Truncate("aü", 2)
	assert.True(t, strings.HasPrefix("aü", got))
	assert.Equal(t, "a", got)
}

func TestValidate(t *testing.T) {
	complete := models.Job{
		Title:   "Firmware Developer",
		Company: "Acme",
		URL:     "https://example.com/jobs/1",
		Source:  "stepstone",
	}
	assert.True(t, Validate(complete), "empty optional fields are fine")

	missing := []func(models.Job) models.Job{
		func(j models.Job) models.Job { j.Title = ""; return j },
		func(j models.Job) models.Job { j.Company = ""; return j },
		func(j models.Job) models.Job { j.URL = ""; return j },
		func(j models.Job) models.Job { j.Source = ""; return j },
	}
	for i, strip := range missing {
		assert.False(t, Validate(strip(complete)), "case %d", i)
	}
}

func TestDeduplicate(t *testing.T) {
	jobs := []models.Job{
		{URL: "a", Company: "first"},
		{URL: "a", Company: "second"},
		{URL: "b", Company: "third"},
	}

	got := Deduplicate(jobs)

	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].URL)
	assert.Equal(t, "first", got[0].Company, "first occurrence wins")
	assert.Equal(t, "b", got[1].URL)
}

func TestDeduplicate_Empty(t *testing.T) {
	assert.Empty(t, Deduplicate(nil))
}
