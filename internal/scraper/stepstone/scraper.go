// Stepstone job search: explicit page parameter, cookie-consent
// dismissal, one detail page per listing.

package stepstone

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"go-crystal-scraper/internal/browser"
	"go-crystal-scraper/internal/config"
	"go-crystal-scraper/internal/normalize"
	"go-crystal-scraper/internal/scraper"
)

const (
	baseURL       = "https://www.stepstone.de"
	searchURLBase = baseURL + "/stellenangebote"

	detailReadySelector = "h1, .job-ad--title, .job-detail"
)

// German boards show the consent wall before anything else; these are
// tried as exact button texts first, then as CSS selectors.
var (
	cookieButtonTexts = []string{
		"Alle ablehnen", "Alles ablehnen", "Ablehnen", "Reject all", "Reject",
	}
	cookieSelectors = []string{
		"button[data-testid='cookie-decline']",
		"button[data-testid='opt-out-button']",
		"button#onetrust-reject-all-handler",
		"button[aria-label='Ablehnen']",
		".cookie-banner .btn-reject",
	}
)

var jobTypeKeywords = []string{"vollzeit", "full-time", "teilzeit", "part-time", "befristet", "contract"}

type Scraper struct {
	cfg   *config.Config
	log   zerolog.Logger
	shots *browser.ScreenshotDebugger
}

func New(cfg *config.Config, log zerolog.Logger) *Scraper {
	return &Scraper{
		cfg:   cfg,
		log:   log.With().Str("source", "stepstone").Logger(),
		shots: browser.NewScreenshotDebugger(cfg.ScreenshotDir, log),
	}
}

func (s *Scraper) Name() string {
	return "stepstone"
}

func (s *Scraper) Collect(ctx context.Context, page playwright.Page, opts scraper.CollectOptions) ([]scraper.RawJob, error) {
	links := scraper.NewLinkSet()

	for pageNum := 1; pageNum <= opts.MaxPages && links.Len() < opts.MaxJobs; pageNum++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		searchURL := fmt.Sprintf("%s?ke=%s&page=%d", searchURLBase, url.QueryEscape(opts.Keyword), pageNum)
		if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
			Timeout:   playwright.Float(s.cfg.NavTimeoutMs),
		}); err != nil {
			s.log.Warn().Str("url", searchURL).Err(err).Msg("search page skipped")
			continue
		}

		s.dismissCookieDialog(page)

		if _, err := page.WaitForSelector("a", playwright.PageWaitForSelectorOptions{
			Timeout: playwright.Float(s.cfg.ShortWaitMs),
		}); err != nil {
			s.log.Debug().Int("page", pageNum).Msg("results wait timed out")
		}

		//nudge lazy content into view
		page.Evaluate("window.scrollBy(0, 600)")
		browser.RandomDelay(600, 1000)

		before := links.Len()
		s.collectListingLinks(page, links, opts.MaxJobs)
		if links.Len() == before {
			// an empty page means we ran past the last result page
			break
		}
	}
	s.log.Info().Int("links", links.Len()).Msg("link discovery finished")

	var jobs []scraper.RawJob
	for _, jobURL := range links.URLs() {
		if ctx.Err() != nil {
			return jobs, ctx.Err()
		}
		job, err := s.extractDetail(page, jobURL)
		if err != nil {
			s.log.Warn().Str("url", jobURL).Err(err).Msg("listing skipped")
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// dismissCookieDialog clicks a reject/close control when the consent
// wall is present. Non-fatal in every branch.
func (s *Scraper) dismissCookieDialog(page playwright.Page) {
	for _, text := range cookieButtonTexts {
		btn := page.Locator(fmt.Sprintf("button:text-is(%q)", text)).First()
		if visible, _ := btn.IsVisible(); visible {
			if err := btn.Click(playwright.LocatorClickOptions{
				Timeout: playwright.Float(2000),
			}); err == nil {
				browser.RandomDelay(300, 600)
				return
			}
		}
	}
	for _, selector := range cookieSelectors {
		el := page.Locator(selector).First()
		if visible, _ := el.IsVisible(); visible {
			if err := el.Click(playwright.LocatorClickOptions{
				Timeout: playwright.Float(2000),
			}); err == nil {
				browser.RandomDelay(300, 600)
				return
			}
		}
	}
}

func (s *Scraper) collectListingLinks(page playwright.Page, links *scraper.LinkSet, maxJobs int) {
	anchors, err := page.Locator("a[href*='/stellenangebote']").All()
	if err != nil {
		s.log.Debug().Err(err).Msg("anchor query failed")
		return
	}
	for _, anchor := range anchors {
		href, err := anchor.GetAttribute("href")
		if err != nil {
			continue
		}
		listing, ok := listingURL(href)
		if !ok {
			continue
		}
		if links.Add(listing) && links.Len() >= maxJobs {
			return
		}
	}
}

// listingURL normalizes href and reports whether it points at a job ad.
// Detail pages use the /stellenangebote--<slug> form; the bare
// /stellenangebote path is the search page itself.
func listingURL(href string) (string, bool) {
	if href == "" {
		return "", false
	}
	full := scraper.StripQuery(scraper.AbsoluteURL(baseURL, href))
	if !strings.Contains(full, "/stellenangebote--") {
		return "", false
	}
	return full, true
}

func (s *Scraper) extractDetail(page playwright.Page, jobURL string) (scraper.RawJob, error) {
	if _, err := page.Goto(jobURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(s.cfg.NavTimeoutMs),
	}); err != nil {
		s.shots.Capture(page, "stepstone-nav-failed")
		return scraper.RawJob{}, fmt.Errorf("navigate: %w", err)
	}

	if _, err := page.WaitForSelector(detailReadySelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(s.cfg.ShortWaitMs),
	}); err != nil {
		s.log.Debug().Str("url", jobURL).Msg("detail content wait timed out")
	}

	ld := scraper.PageJSONLD(page)

	title := scraper.First(
		scraper.Text(page, "h1.job-detail__title"),
		scraper.Text(page, "h1"),
		scraper.Text(page, ".job-ad--title"),
		scraper.Fixed(ld.Title),
	)
	company := scraper.First(
		scraper.Text(page, ".job-ad-company__name"),
		scraper.Text(page, ".job-company-name"),
		scraper.Text(page, ".company-name"),
		scraper.Fixed(ld.Company),
	)
	location := scraper.First(
		scraper.Text(page, ".job-ad-location"),
		scraper.Text(page, ".job-location"),
		scraper.Fixed(ld.Location),
	)
	posted := scraper.First(
		scraper.Text(page, ".job-ad-created"),
		scraper.Text(page, ".job-ad-posted"),
		scraper.Fixed(ld.DatePosted),
	)
	description := scraper.First(
		scraper.Text(page, "[data-at='jobad-description']"),
		scraper.Text(page, ".job-ad-description"),
		scraper.Fixed(ld.Description),
	)
	jobType := scraper.First(
		s.jobTypeFromCriteria(page),
		scraper.Fixed(ld.JobType),
	)

	return scraper.RawJob{
		Title:       title,
		Company:     company,
		Location:    location,
		URL:         jobURL,
		Description: description,
		Salary:      s.extractSalary(page, ld),
		JobType:     jobType,
		PostedDate:  posted,
	}, nil
}

// extractSalary probes the Gehalt paragraph, which is prose; the
// currency-pattern matcher cuts it down to the figure itself.
func (s *Scraper) extractSalary(page playwright.Page, ld scraper.JSONLD) string {
	raw := scraper.First(
		scraper.Text(page, "p:has-text('Gehalt')"),
		scraper.Text(page, "p:has-text('Salary')"),
		scraper.Text(page, ".salary"),
	)
	if match, ok := normalize.ExtractSalary(raw); ok {
		return match
	}
	if raw != "" {
		return raw
	}
	return ld.Salary
}

func (s *Scraper) jobTypeFromCriteria(page playwright.Page) scraper.Strategy {
	return func() string {
		items, err := page.Locator(".job-attribute, .job-criteria__item").All()
		if err != nil {
			return ""
		}
		for _, item := range items {
			text, err := item.InnerText()
			if err != nil {
				continue
			}
			lower := strings.ToLower(text)
			for _, keyword := range jobTypeKeywords {
				if strings.Contains(lower, keyword) {
					return strings.TrimSpace(text)
				}
			}
		}
		return ""
	}
}
