package scraper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"
)

// JSONLD holds what a schema.org JobPosting block can contribute when
// the CSS selector chains come up empty. Boards render these for search
// engines even when the visible markup shifts.
type JSONLD struct {
	Title       string
	Company     string
	Location    string
	Description string
	Salary      string
	JobType     string
	DatePosted  string
}

// PageJSONLD parses the current page content for a JobPosting block.
// Any failure yields the zero value; this is strictly a fallback.
func PageJSONLD(page playwright.Page) JSONLD {
	content, err := page.Content()
	if err != nil {
		return JSONLD{}
	}
	return ParseJSONLD(content)
}

// ParseJSONLD scans <script type="application/ld+json"> blocks in html
// for the first schema.org JobPosting object.
func ParseJSONLD(html string) JSONLD {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return JSONLD{}
	}

	var out JSONLD
	doc.Find(`script[type='application/ld+json']`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return true
		}
		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return true
		}
		posting, ok := findJobPosting(data)
		if !ok {
			return true
		}
		out = postingFields(posting)
		return false
	})
	return out
}

func findJobPosting(data any) (map[string]any, bool) {
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			if posting, ok := findJobPosting(item); ok {
				return posting, true
			}
		}
	case map[string]any:
		if typ, _ := v["@type"].(string); strings.EqualFold(typ, "JobPosting") {
			return v, true
		}
		if graph, ok := v["@graph"]; ok {
			return findJobPosting(graph)
		}
	}
	return nil, false
}

func postingFields(v map[string]any) JSONLD {
	ld := JSONLD{
		Title:       stringField(v["title"]),
		Description: stringField(v["description"]),
		JobType:     stringField(v["employmentType"]),
		DatePosted:  stringField(v["datePosted"]),
	}
	if org, ok := v["hiringOrganization"].(map[string]any); ok {
		ld.Company = stringField(org["name"])
	}
	ld.Location = locationField(v["jobLocation"])
	ld.Salary = salaryField(v["baseSalary"])
	return ld
}

func stringField(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	}
	return ""
}

func locationField(value any) string {
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if loc := locationField(item); loc != "" {
				return loc
			}
		}
	case map[string]any:
		address, ok := v["address"].(map[string]any)
		if !ok {
			address = v
		}
		parts := []string{
			stringField(address["addressLocality"]),
			stringField(address["addressRegion"]),
			stringField(address["addressCountry"]),
		}
		var nonEmpty []string
		for _, part := range parts {
			if part != "" {
				nonEmpty = append(nonEmpty, part)
			}
		}
		return strings.Join(nonEmpty, ", ")
	case string:
		return strings.TrimSpace(v)
	}
	return ""
}

func salaryField(value any) string {
	v, ok := value.(map[string]any)
	if !ok {
		return ""
	}
	currency := stringField(v["currency"])
	amount, ok := v["value"].(map[string]any)
	if !ok {
		return ""
	}
	if single := stringField(amount["value"]); single != "" {
		return strings.TrimSpace(single + " " + currency)
	}
	min := stringField(amount["minValue"])
	max := stringField(amount["maxValue"])
	switch {
	case min != "" && max != "":
		return strings.TrimSpace(min + " - " + max + " " + currency)
	case min != "":
		return strings.TrimSpace(min + " " + currency)
	}
	return ""
}
