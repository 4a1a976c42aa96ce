package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public Jupiter Toys deployment
const DefaultBaseURL = "https://jupiter.cloud.planittesting.com"

// Supported browser engines
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebkit   = "webkit"
)

// BrowserConfig holds configuration for the browser driver
type BrowserConfig struct {
	BaseURL       string
	Browser       string
	Headless      bool
	SlowMo        time.Duration
	Timeout       time.Duration
	ScreenshotDir string
}

// LoadBrowserConfig loads browser configuration from environment variables
func LoadBrowserConfig(getenv func(string) string) (*BrowserConfig, error) {
	config := &BrowserConfig{
		BaseURL:       strings.TrimRight(getenv("BASE_URL"), "/"),
		Browser:       strings.ToLower(getenv("BROWSER")),
		Headless:      getenv("HEADLESS") != "false",
		Timeout:       10 * time.Second,
		ScreenshotDir: getenv("SCREENSHOT_DIR"),
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if u, err := url.Parse(config.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("BASE_URL must be an absolute URL, got %q", config.BaseURL)
	}

	switch config.Browser {
	case "":
		config.Browser = BrowserChromium
	case BrowserChromium, BrowserFirefox, BrowserWebkit:
	default:
		return nil, fmt.Errorf("BROWSER must be one of chromium, firefox, webkit, got %q", config.Browser)
	}

	if raw := getenv("SLOW_MO"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("SLOW_MO must be a non-negative number of milliseconds, got %q", raw)
		}
		config.SlowMo = time.Duration(ms) * time.Millisecond
	}

	if raw := getenv("DEFAULT_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("DEFAULT_TIMEOUT is not a duration: %w", err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("DEFAULT_TIMEOUT must be positive")
		}
		config.Timeout = timeout
	}

	return config, nil
}
