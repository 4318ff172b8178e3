package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// ScreenshotDebugger captures full-page screenshots of pages that
// failed to navigate or extract, for offline diagnosis.
type ScreenshotDebugger struct {
	outputDir string
	log       zerolog.Logger
}

func NewScreenshotDebugger(dir string, log zerolog.Logger) *ScreenshotDebugger {
	if dir == "" {
		dir = filepath.Join("logs", "screenshots")
	}
	os.MkdirAll(dir, 0755)
	return &ScreenshotDebugger{outputDir: dir, log: log}
}

// Capture saves a timestamped PNG of the current page state. Failures
// are logged, never propagated: a missing screenshot must not break a
// scrape.
func (s *ScreenshotDebugger) Capture(page playwright.Page, name string) {
	if page == nil {
		return
	}
	filename := fmt.Sprintf("%s_%s.png", name, time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(s.outputDir, filename)

	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		s.log.Warn().Err(err).Msg("screenshot capture failed")
		return
	}
	s.log.Debug().Str("path", path).Msg("screenshot saved")
}
