package stepstone

import (
	"context"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-crystal-scraper/internal/config"
	"go-crystal-scraper/internal/scraper"
)

func TestListingURL(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
		ok   bool
	}{
		{
			"detail page",
			"https://www.stepstone.de/stellenangebote--Firmware-Entwickler-Acme--123-inline.html",
			"https://www.stepstone.de/stellenangebote--Firmware-Entwickler-Acme--123-inline.html",
			true,
		},
		{
			"tracking params stripped",
			"/stellenangebote--HW-Designer--456.html?searchOrigin=Resultlist",
			"https://www.stepstone.de/stellenangebote--HW-Designer--456.html",
			true,
		},
		{"search page itself", "https://www.stepstone.de/stellenangebote?ke=embedded", "", false},
		{"unrelated anchor", "https://www.stepstone.de/cmp/de/acme", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := listingURL(tt.href)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

//helper start mock browser
func setupPlaywright(t *testing.T) playwright.Page {
	t.Helper()
	pw, err := playwright.Run()
	require.NoError(t, err, "could not launch playwright")
	t.Cleanup(func() { pw.Stop() })

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	require.NoError(t, err, "could not launch browser")
	t.Cleanup(func() { b.Close() })

	page, err := b.NewPage()
	require.NoError(t, err, "could not create page")
	return page
}

func testConfig() *config.Config {
	return &config.Config{
		MaxPages:       2,
		ScrollStalls:   2,
		NavTimeoutMs:   10000,
		PresenceWaitMs: 1000,
		ShortWaitMs:    1000,
	}
}

// integration test: serve a canned search page plus one detail page and
// walk the full collect path against it
func TestCollect_MockedSite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	searchHTML := `<html><body>
<a href="/stellenangebote--Embedded-Entwickler-Acme--1.html?searchOrigin=rl">Embedded Entwickler</a>
<a href="/stellenangebote--Embedded-Entwickler-Acme--1.html">duplicate</a>
<a href="/cmp/de/acme">company profile</a>
</body></html>`

	detailHTML := `<html><body>
<h1>Embedded Entwickler (m/w/d)</h1>
<div class="job-ad-company__name">Acme GmbH</div>
<div class="job-ad-location">Berlin</div>
<div class="job-ad-created">vor 2 Tagen</div>
<div class="job-attribute">Vollzeit</div>
<p>Gehalt: $50,000 - $70,000 per year</p>
</body></html>`

	page := setupPlaywright(t)
	err := page.Route("**/*", func(route playwright.Route) {
		body := searchHTML
		if _, ok := listingURL(route.Request().URL()); ok {
			body = detailHTML
		}
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html"),
			Body:        body,
		})
	})
	require.NoError(t, err)

	s := New(testConfig(), zerolog.Nop())
	jobs, err := s.Collect(context.Background(), page, scraper.CollectOptions{
		Keyword:  "embedded",
		MaxJobs:  5,
		MaxPages: 1,
	})

	require.NoError(t, err)
	require.Len(t, jobs, 1, "duplicate and non-listing anchors are ignored")
	assert.Equal(t, "Embedded Entwickler (m/w/d)", jobs[0].Title)
	assert.Equal(t, "Acme GmbH", jobs[0].Company)
	assert.Equal(t, "Berlin", jobs[0].Location)
	assert.Equal(t, "vor 2 Tagen", jobs[0].PostedDate)
	assert.Equal(t, "Vollzeit", jobs[0].JobType)
	assert.Equal(t, "$50,000 - $70,000", jobs[0].Salary)
	assert.Equal(t, "https://www.stepstone.de/stellenangebote--Embedded-Entwickler-Acme--1.html", jobs[0].URL)
}
