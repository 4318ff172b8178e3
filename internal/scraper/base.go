// Define an interface for all site extractors
// Ensure consistency

package scraper

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// RawJob is the field set pulled straight off one listing page. No
// invariants yet: any field may be empty, text is untrimmed.
type RawJob struct {
	Title       string
	Company     string
	Location    string
	URL         string
	Description string
	Salary      string
	JobType     string
	PostedDate  string
}

// CollectOptions bound one collection run. MaxJobs is a per-source
// discovery budget; the aggregator applies the authoritative global cap
// after merging.
type CollectOptions struct {
	Keyword  string
	MaxJobs  int
	MaxPages int
}

//Extractor defines the interface that all site extractors must implement
type Extractor interface {
	//Collect discovers listing links for keyword and visits each one.
	//Per-listing failures are logged and skipped, never returned: an
	//error means the source as a whole could not be scraped.
	Collect(ctx context.Context, page playwright.Page, opts CollectOptions) ([]RawJob, error)

	//Name is the source identifier carried into normalized records
	//("linkedin", "stepstone")
	Name() string
}
