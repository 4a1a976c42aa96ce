// Package pwdriver implements the driver boundary on top of playwright-go
package pwdriver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/jupitertoys/internal/config"
)

// Install downloads the playwright driver and the browser engine named in cfg
func Install(cfg *config.BrowserConfig) error {
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{cfg.Browser}}); err != nil {
		return fmt.Errorf("could not install playwright browsers: %w", err)
	}
	return nil
}

// Browser owns a running playwright instance and one launched browser
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     *config.BrowserConfig
}

// Launch starts playwright and the configured browser engine
func Launch(cfg *config.BrowserConfig) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	var engine playwright.BrowserType
	switch cfg.Browser {
	case config.BrowserFirefox:
		engine = pw.Firefox
	case config.BrowserWebkit:
		engine = pw.WebKit
	default:
		engine = pw.Chromium
	}

	browser, err := engine.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMo.Milliseconds())),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch %s: %w", cfg.Browser, err)
	}

	return &Browser{pw: pw, browser: browser, cfg: cfg}, nil
}

// NewSession opens an isolated browser context with a single page
func (b *Browser) NewSession() (*Session, error) {
	context, err := b.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	page.SetDefaultTimeout(float64(b.cfg.Timeout.Milliseconds()))

	return &Session{context: context, page: page, timeout: b.cfg.Timeout}, nil
}

// Close shuts down the browser and playwright
func (b *Browser) Close() error {
	var firstErr error
	if err := b.browser.Close(); err != nil {
		firstErr = fmt.Errorf("could not close browser: %w", err)
	}
	if err := b.pw.Stop(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("could not stop playwright: %w", err)
	}
	return firstErr
}

// screenshotPath ensures dir exists and returns the png path for name
func screenshotPath(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create screenshot dir: %w", err)
	}
	return filepath.Join(dir, name+".png"), nil
}
