package scraper

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

// element probes stay short; the page is already loaded when chains run
const textProbeTimeoutMs = 1500

// Strategy is one way of pulling a text field off the current page.
type Strategy func() string

// First evaluates strategies in order and returns the first non-empty
// trimmed result. An exhausted chain yields "", not an error: a missing
// field never aborts a listing.
func First(strategies ...Strategy) string {
	for _, strategy := range strategies {
		if text := strings.TrimSpace(strategy()); text != "" {
			return text
		}
	}
	return ""
}

// Text probes selector and returns its inner text, or "" when the
// element is missing, hidden or stale.
func Text(page playwright.Page, selector string) Strategy {
	return func() string {
		text, err := page.Locator(selector).First().InnerText(playwright.LocatorInnerTextOptions{
			Timeout: playwright.Float(textProbeTimeoutMs),
		})
		if err != nil {
			return ""
		}
		return text
	}
}

// Fixed wraps an already-computed value, typically a JSON-LD field used
// as the tail of a chain.
func Fixed(value string) Strategy {
	return func() string { return value }
}
