package suite

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/themizzi/jupitertoys/internal/driver"
	"github.com/themizzi/jupitertoys/internal/logger"
)

// Session is a driver with its own browser state
type Session interface {
	driver.Driver
	Close() error
}

// Screenshotter is implemented by sessions that can capture the page
type Screenshotter interface {
	Screenshot(dir, name string) (string, error)
}

// Runner executes scenarios one after another, each repetition in a fresh session
type Runner struct {
	NewSession    func() (Session, error)
	Log           *logger.Logger
	BaseURL       string
	ScreenshotDir string
	// Repeat runs every scenario this many times; values below 1 mean once
	Repeat int
}

// Result is the outcome of one scenario repetition
type Result struct {
	Scenario   string
	Iteration  int
	Err        error
	Duration   time.Duration
	Screenshot string
}

// Passed reports whether the repetition succeeded
func (r Result) Passed() bool {
	return r.Err == nil
}

// Report collects the results of a run
type Report struct {
	RunID   string
	Results []Result
}

// Failed counts failed repetitions
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// Passed counts successful repetitions
func (r Report) Passed() int {
	return len(r.Results) - r.Failed()
}

// Summary renders one line per result plus a totals line
func (r Report) Summary() string {
	var b strings.Builder
	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "%s  %s #%d (%s)", status, res.Scenario, res.Iteration+1, res.Duration.Round(time.Millisecond))
		if res.Err != nil {
			fmt.Fprintf(&b, ": %v", res.Err)
		}
		if res.Screenshot != "" {
			fmt.Fprintf(&b, " [screenshot: %s]", res.Screenshot)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "run %s: %d passed, %d failed\n", r.RunID, r.Passed(), r.Failed())
	return b.String()
}

// Run executes scenarios sequentially and reports every repetition
func (r *Runner) Run(scenarios []Scenario) Report {
	log := r.Log
	if log == nil {
		log = logger.Nop()
	}
	repeat := r.Repeat
	if repeat < 1 {
		repeat = 1
	}

	report := Report{RunID: uuid.NewString()}
	log.Infof("Starting run %s with %d scenario(s) x %d", report.RunID, len(scenarios), repeat)

	for _, scenario := range scenarios {
		for i := 0; i < repeat; i++ {
			result := r.runOne(log, report.RunID, scenario, i)
			report.Results = append(report.Results, result)
		}
	}

	log.Infof("Finished run %s: %d passed, %d failed", report.RunID, report.Passed(), report.Failed())
	return report
}

func (r *Runner) runOne(log *logger.Logger, runID string, scenario Scenario, iteration int) Result {
	result := Result{Scenario: scenario.Name, Iteration: iteration}
	start := time.Now()

	log.Infof("Test # %d: %s", iteration+1, scenario.Name)

	session, err := r.NewSession()
	if err != nil {
		log.Errorf("Could not open a browser session for %s: %v", scenario.Name, err)
		result.Err = fmt.Errorf("opening session: %w", err)
		result.Duration = time.Since(start)
		return result
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warnf("Closing session for %s: %v", scenario.Name, err)
		}
	}()

	result.Err = scenario.Run(NewSite(session, log, r.BaseURL), iteration)
	if result.Err != nil {
		log.Errorf("%s #%d failed: %v", scenario.Name, iteration+1, result.Err)
		result.Screenshot = r.screenshot(log, session, runID, scenario.Name, iteration)
	} else {
		log.Infof("%s #%d passed", scenario.Name, iteration+1)
	}

	result.Duration = time.Since(start)
	return result
}

func (r *Runner) screenshot(log *logger.Logger, session Session, runID, name string, iteration int) string {
	shooter, ok := session.(Screenshotter)
	if !ok || r.ScreenshotDir == "" {
		return ""
	}
	path, err := shooter.Screenshot(r.ScreenshotDir, fmt.Sprintf("%s-%d-%s", name, iteration+1, runID[:8]))
	if err != nil {
		log.Warnf("Could not capture screenshot for %s: %v", name, err)
		return ""
	}
	return path
}
