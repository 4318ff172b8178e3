// Page Navigator: one exclusive Playwright session per site extractor.

package browser

import (
	"context"
	"fmt"
	"os"

	"github.com/playwright-community/playwright-go"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Session owns a Playwright driver, one Chromium process and one page.
// Callers must Close it on every exit path; Close is safe after a
// partially failed start.
type Session struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	browserCtx playwright.BrowserContext
	page       playwright.Page
}

// NewSession starts the driver and launches Chromium. Two environment
// overrides feed the bootstrap: PLAYWRIGHT_DRIVER_DIR points at a
// pre-installed driver directory, BROWSER_PATH at a local Chromium
// binary (for hosts where the bundled download cannot run).
func NewSession(ctx context.Context, headless bool) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runOpts := &playwright.RunOptions{}
	if dir := os.Getenv("PLAYWRIGHT_DRIVER_DIR"); dir != "" {
		runOpts.DriverDirectory = dir
	}
	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("start playwright driver: %w", err)
	}
	sess := &Session{pw: pw}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args: []string{
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
			"--window-size=1200,1000",
			"--disable-blink-features=AutomationControlled",
		},
	}
	if bin := os.Getenv("BROWSER_PATH"); bin != "" {
		launchOpts.ExecutablePath = playwright.String(bin)
	}
	sess.browser, err = pw.Chromium.Launch(launchOpts)
	if err != nil {
		sess.Close()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	sess.browserCtx, err = sess.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(userAgent),
		Viewport:  &playwright.Size{Width: 1200, Height: 1000},
	})
	if err != nil {
		sess.Close()
		return nil, fmt.Errorf("create browser context: %w", err)
	}

	sess.page, err = sess.browserCtx.NewPage()
	if err != nil {
		sess.Close()
		return nil, fmt.Errorf("create page: %w", err)
	}
	sess.page.SetDefaultNavigationTimeout(30000)

	return sess, nil
}

// Page is the single page this session navigates with.
func (s *Session) Page() playwright.Page {
	return s.page
}

// Close tears down the context, the browser and the driver. The first
// error wins but teardown always runs to the end.
func (s *Session) Close() error {
	var firstErr error
	if s.browserCtx != nil {
		if err := s.browserCtx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.browserCtx = nil
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.browser = nil
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.pw = nil
	}
	return firstErr
}
