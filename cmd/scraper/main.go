package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"go-crystal-scraper/internal/aggregator"
	"go-crystal-scraper/internal/browser"
	"go-crystal-scraper/internal/config"
	"go-crystal-scraper/internal/models"
	"go-crystal-scraper/internal/reporter"
	"go-crystal-scraper/internal/scraper"
	"go-crystal-scraper/internal/scraper/linkedin"
	"go-crystal-scraper/internal/scraper/stepstone"
)

var cli struct {
	Keyword  string `arg:"" help:"Search keyword, e.g. 'embedded systems'."`
	Source   string `help:"Job board to scrape." enum:"linkedin,stepstone,all" default:"all"`
	MaxJobs  int    `help:"Cap on jobs in the final output." default:"100"`
	Headless bool   `help:"Run the browser headless." default:"true" negatable:""`
	Config   string `help:"Path to the YAML config file." default:"configs/config.yaml" type:"path"`
	Verbose  bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("scraper"),
		kong.Description("Scrapes job boards for a keyword and writes the merged results as JSON to stdout."))

	//stdout carries the result document, so diagnostics go to stderr as
	//line-delimited JSON
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cli.Verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	if err := run(log); err != nil {
		emitError(err)
		os.Exit(1)
	}
}

func run(log zerolog.Logger) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Headless = cli.Headless

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	newSession := func(ctx context.Context) (aggregator.Session, error) {
		return browser.NewSession(ctx, cfg.Headless)
	}

	extractors, err := buildExtractors(cli.Source, cfg, log)
	if err != nil {
		return err
	}

	agg := aggregator.New(newSession, extractors, log)
	result := agg.Run(ctx, cli.Keyword, cli.MaxJobs, cfg.MaxPages)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(data))

	//summary to telegram is best effort
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		bot, err := reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Warn().Err(err).Msg("telegram init failed")
		} else if err := bot.SendSummary(result); err != nil {
			log.Warn().Err(err).Msg("telegram summary failed")
		}
	}

	return nil
}

func buildExtractors(source string, cfg *config.Config, log zerolog.Logger) ([]scraper.Extractor, error) {
	switch source {
	case "linkedin":
		return []scraper.Extractor{linkedin.New(cfg, log)}, nil
	case "stepstone":
		return []scraper.Extractor{stepstone.New(cfg, log)}, nil
	case "all":
		return []scraper.Extractor{linkedin.New(cfg, log), stepstone.New(cfg, log)}, nil
	default:
		return nil, fmt.Errorf("unknown source %q", source)
	}
}

// emitError replaces the result document on stdout so callers always
// get parseable JSON.
func emitError(runErr error) {
	data, err := json.MarshalIndent(models.ErrorResult{
		Success:   false,
		Error:     runErr.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, runErr)
		return
	}
	fmt.Println(string(data))
}
