// Load envs from .env
// Load YAML config
// Provide default values

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Collection bounds
	MaxPages     int `yaml:"max_pages"`
	ScrollStalls int `yaml:"scroll_stalls"`

	//Waits in milliseconds. Navigation gets the long cap, content
	//presence the medium one, secondary presence checks the short one.
	NavTimeoutMs   float64 `yaml:"nav_timeout_ms"`
	PresenceWaitMs float64 `yaml:"presence_wait_ms"`
	ShortWaitMs    float64 `yaml:"short_wait_ms"`

	Headless bool `yaml:"headless"`

	ScreenshotDir string `yaml:"screenshot_dir"`

	//Optional run-summary notification; disabled when token is empty
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// Load reads path (missing file is fine, defaults apply), then lets
// environment variables override. A .env alongside the binary is picked
// up first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MaxPages:       5,
		ScrollStalls:   12,
		NavTimeoutMs:   30000,
		PresenceWaitMs: 15000,
		ShortWaitMs:    8000,
		Headless:       true,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	if cfg.MaxPages <= 0 {
		return nil, fmt.Errorf("max_pages must be positive, got %d", cfg.MaxPages)
	}
	if cfg.ScrollStalls <= 0 {
		return nil, fmt.Errorf("scroll_stalls must be positive, got %d", cfg.ScrollStalls)
	}

	return cfg, nil
}
