package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/themizzi/jupitertoys/internal/config"
	"github.com/themizzi/jupitertoys/internal/driver/pwdriver"
	"github.com/themizzi/jupitertoys/internal/logger"
	"github.com/themizzi/jupitertoys/internal/suite"
)

// ErrScenariosFailed is returned when at least one scenario repetition failed
var ErrScenariosFailed = errors.New("scenarios failed")

// RunOptions configures a suite run
type RunOptions struct {
	Browser   *config.BrowserConfig
	Scenarios []string
	Repeat    int
	Log       *logger.Logger
	Out       io.Writer
}

// RunSuite launches the configured browser and runs the selected scenarios against BaseURL
func RunSuite(opts RunOptions) error {
	scenarios, err := suite.Select(opts.Scenarios)
	if err != nil {
		return err
	}

	browser, err := pwdriver.Launch(opts.Browser)
	if err != nil {
		return err
	}
	defer func() {
		if err := browser.Close(); err != nil {
			opts.Log.Warnf("Closing browser: %v", err)
		}
	}()

	return runScenarios(opts, scenarios, func() (suite.Session, error) {
		session, err := browser.NewSession()
		if err != nil {
			return nil, err
		}
		return session, nil
	})
}

func runScenarios(opts RunOptions, scenarios []suite.Scenario, newSession func() (suite.Session, error)) error {
	runner := &suite.Runner{
		NewSession:    newSession,
		Log:           opts.Log,
		BaseURL:       opts.Browser.BaseURL,
		ScreenshotDir: opts.Browser.ScreenshotDir,
		Repeat:        opts.Repeat,
	}

	report := runner.Run(scenarios)
	if opts.Out != nil {
		fmt.Fprint(opts.Out, report.Summary())
	}

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrScenariosFailed, failed, len(report.Results))
	}
	return nil
}

// InstallBrowsers downloads the playwright driver and the configured browser
func InstallBrowsers(cfg *config.BrowserConfig) error {
	return pwdriver.Install(cfg)
}
