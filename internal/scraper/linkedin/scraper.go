// LinkedIn guest job search: infinite-scroll result list, one detail
// page per listing.

package linkedin

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"go-crystal-scraper/internal/browser"
	"go-crystal-scraper/internal/config"
	"go-crystal-scraper/internal/scraper"
)

const (
	baseURL         = "https://www.linkedin.com"
	searchURLFormat = baseURL + "/jobs/search/?f_TPR=r3600&keywords=%s"

	resultsListSelector = "ul.jobs-search__results-list, div.jobs-search-results__list"
	detailReadySelector = "h1, .topcard__title, .jobs-unified-top-card__job-title"
)

// Anchor selectors tried in order during discovery; the first one that
// yields elements wins for that pass.
var anchorSelectors = []string{
	"a.base-card__full-link, a.result-card__full-card-link, a.job-card-list__title",
	"a[href*='/jobs/view/']",
}

var jobTypeKeywords = []string{"full-time", "full time", "teilzeit", "part-time", "contract", "intern"}

type Scraper struct {
	cfg   *config.Config
	log   zerolog.Logger
	shots *browser.ScreenshotDebugger
}

func New(cfg *config.Config, log zerolog.Logger) *Scraper {
	return &Scraper{
		cfg:   cfg,
		log:   log.With().Str("source", "linkedin").Logger(),
		shots: browser.NewScreenshotDebugger(cfg.ScreenshotDir, log),
	}
}

func (s *Scraper) Name() string {
	return "linkedin"
}

func (s *Scraper) Collect(ctx context.Context, page playwright.Page, opts scraper.CollectOptions) ([]scraper.RawJob, error) {
	searchURL := fmt.Sprintf(searchURLFormat, url.QueryEscape(opts.Keyword))
	if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(s.cfg.NavTimeoutMs),
	}); err != nil {
		return nil, fmt.Errorf("load search page: %w", err)
	}

	//result list may render late; discovery below copes with whatever is there
	if _, err := page.WaitForSelector(resultsListSelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(s.cfg.PresenceWaitMs),
	}); err != nil {
		s.log.Debug().Msg("results list not detected, continuing best-effort")
	}
	browser.MouseJiggle(page)

	links := s.discoverLinks(ctx, page, opts.MaxJobs)
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

// discoverLinks scrolls the result list until enough distinct listing
// URLs are collected or the page stops growing. A stall is a scroll
// that left the document height unchanged; the counter resets on
// progress.
func (s *Scraper) discoverLinks(ctx context.Context, page playwright.Page, maxJobs int) *scraper.LinkSet {
	links := scraper.NewLinkSet()
	lastHeight := pageHeight(page)
	stalls := 0

	for links.Len() < maxJobs && stalls < s.cfg.ScrollStalls {
		if ctx.Err() != nil {
			break
		}
		s.collectAnchors(page, links, maxJobs)
		if links.Len() >= maxJobs {
			break
		}

		browser.HumanScroll(page)
		browser.RandomDelay(400, 800)

		height := pageHeight(page)
		if height == lastHeight {
			stalls++
		} else {
			stalls = 0
		}
		lastHeight = height
	}
	return links
}

func (s *Scraper) collectAnchors(page playwright.Page, links *scraper.LinkSet, maxJobs int) {
	for _, selector := range anchorSelectors {
		anchors, err := page.Locator(selector).All()
		if err != nil || len(anchors) == 0 {
			continue
		}
		for _, anchor := range anchors {
			href, err := anchor.GetAttribute("href")
			if err != nil || href == "" {
				continue
			}
			if links.Add(canonicalJobURL(href)) && links.Len() >= maxJobs {
				return
			}
		}
		return
	}
}

// canonicalJobURL absolutizes href and drops query params; LinkedIn
// appends per-session tracking ids that would defeat dedup.
func canonicalJobURL(href string) string {
	full := scraper.AbsoluteURL(baseURL, href)
	if !strings.Contains(full, "/jobs/") {
		return ""
	}
	return scraper.StripQuery(full)
}

func (s *Scraper) extractDetail(page playwright.Page, jobURL string) (scraper.RawJob, error) {
	if _, err := page.Goto(jobURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(s.cfg.NavTimeoutMs),
	}); err != nil {
		s.shots.Capture(page, "linkedin-nav-failed")
		return scraper.RawJob{}, fmt.Errorf("navigate: %w", err)
	}

	//content-ready wait is best effort; the chains tolerate missing nodes
	if _, err := page.WaitForSelector(detailReadySelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(s.cfg.ShortWaitMs),
	}); err != nil {
		s.log.Debug().Str("url", jobURL).Msg("detail content wait timed out")
	}

	ld := scraper.PageJSONLD(page)

	title := scraper.First(
		scraper.Text(page, "h1.jobs-unified-top-card__job-title"),
		scraper.Text(page, "h1"),
		scraper.Text(page, ".topcard__title"),
		scraper.Fixed(ld.Title),
	)
	company := scraper.First(
		scraper.Text(page, ".jobs-unified-top-card__company-name"),
		scraper.Text(page, ".topcard__org-name-link"),
		scraper.Text(page, ".topcard__org-name"),
		scraper.Fixed(ld.Company),
	)
	location := scraper.First(
		scraper.Text(page, ".jobs-unified-top-card__bullet"),
		scraper.Text(page, ".topcard__flavor--bullet"),
		scraper.Text(page, ".job-location"),
		scraper.Fixed(ld.Location),
	)
	posted := scraper.First(
		scraper.Text(page, "span.posted-time-ago__text"),
		scraper.Text(page, ".jobs-unified-top-card__posted-date"),
		scraper.Fixed(ld.DatePosted),
	)
	description := scraper.First(
		scraper.Text(page, ".show-more-less-html__markup"),
		scraper.Text(page, ".description__text"),
		scraper.Text(page, ".jobs-description-content__text"),
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
		Salary:      ld.Salary,
		JobType:     jobType,
		PostedDate:  posted,
	}, nil
}

// jobTypeFromCriteria scans the criteria bullets for an employment-type
// phrase; the same bullets also carry seniority and function entries.
func (s *Scraper) jobTypeFromCriteria(page playwright.Page) scraper.Strategy {
	return func() string {
		items, err := page.Locator(".description__job-criteria-text, .job-criteria__text").All()
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

func pageHeight(page playwright.Page) float64 {
	result, err := page.Evaluate("document.body.scrollHeight")
	if err != nil {
		return 0
	}
	switch v := result.(type) {
	case int:
		return float64(v)
	case float64:
		return v
	}
	return 0
}
