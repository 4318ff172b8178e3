package aggregator

import (
	"context"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"go-crystal-scraper/internal/classify"
	"go-crystal-scraper/internal/models"
	"go-crystal-scraper/internal/normalize"
	"go-crystal-scraper/internal/scraper"
)

// Session is a live browser context owned by one source run.
type Session interface {
	Page() playwright.Page
	Close() error
}

// SessionFactory launches a fresh browser session. Each source gets its
// own so a crashed browser cannot take the other sources down with it.
type SessionFactory func(ctx context.Context) (Session, error)

type Aggregator struct {
	newSession SessionFactory
	extractors []scraper.Extractor
	log        zerolog.Logger
	now        func() time.Time
}

func New(newSession SessionFactory, extractors []scraper.Extractor, log zerolog.Logger) *Aggregator {
	return &Aggregator{
		newSession: newSession,
		extractors: extractors,
		log:        log,
		now:        time.Now,
	}
}

// Run scrapes every configured source for the keyword and merges the
// results. Source failures are logged and skipped; Run only returns a
// partial result, never an error.
func (a *Aggregator) Run(ctx context.Context, keyword string, maxJobs, maxPages int) *models.Result {
	var jobs []models.Job
	for _, ext := range a.extractors {
		a.log.Info().Str("status", "scraping").Str("source", ext.Name()).Str("keyword", keyword).Msg("collecting jobs")

		collected := a.collectSource(ctx, ext, scraper.CollectOptions{
			Keyword:  keyword,
			MaxJobs:  maxJobs,
			MaxPages: maxPages,
		})
		jobs = append(jobs, collected...)

		a.log.Info().Str("status", "completed").Str("source", ext.Name()).Int("count", len(collected)).Msg("source finished")
	}

	jobs = normalize.Deduplicate(jobs)
	if maxJobs > 0 && len(jobs) > maxJobs {
		jobs = jobs[:maxJobs]
	}

	return &models.Result{
		Success:   true,
		Keyword:   keyword,
		Timestamp: a.now().UTC().Format(time.RFC3339),
		TotalJobs: len(jobs),
		Jobs:      jobs,
	}
}

func (a *Aggregator) collectSource(ctx context.Context, ext scraper.Extractor, opts scraper.CollectOptions) []models.Job {
	session, err := a.newSession(ctx)
	if err != nil {
		a.log.Error().Err(err).Str("source", ext.Name()).Msg("browser launch failed, skipping source")
		return nil
	}
	defer func() {
		if err := session.Close(); err != nil {
			a.log.Warn().Err(err).Str("source", ext.Name()).Msg("session close failed")
		}
	}()

	raw, err := ext.Collect(ctx, session.Page(), opts)
	if err != nil {
		//keep whatever the extractor managed to pull before failing
		a.log.Error().Err(err).Str("source", ext.Name()).Msg("source failed")
	}

	jobs := make([]models.Job, 0, len(raw))
	for _, r := range raw {
		job := a.normalizeJob(r, ext.Name())
		if !normalize.Validate(job) {
			a.log.Debug().Str("source", ext.Name()).Str("url", r.URL).Msg("dropping incomplete job")
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs
}

func (a *Aggregator) normalizeJob(r scraper.RawJob, source string) models.Job {
	job := models.Job{
		Title:       normalize.Truncate(normalize.CleanText(r.Title), models.MaxTitleLen),
		Company:     normalize.Truncate(normalize.CleanText(r.Company), models.MaxCompanyLen),
		Location:    normalize.Truncate(normalize.CleanText(r.Location), models.MaxLocationLen),
		URL:         normalize.Truncate(r.URL, models.MaxURLLen),
		Description: normalize.CleanText(r.Description),
		Salary:      normalize.Truncate(normalize.CleanText(r.Salary), models.MaxShortFieldLen),
		JobType:     normalize.Truncate(normalize.CleanText(r.JobType), models.MaxShortFieldLen),
		PostedAt:    normalize.Truncate(normalize.CleanText(r.PostedDate), models.MaxShortFieldLen),
		Source:      source,
	}
	job.RoleSlug = string(classify.Classify(job.Title))
	if ts, ok := normalize.ParseRelativeDate(job.PostedAt, a.now()); ok {
		job.PostedTime = &ts
	}
	return job
}
