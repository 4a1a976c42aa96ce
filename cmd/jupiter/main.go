package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	internalcli "github.com/themizzi/jupitertoys/internal/cli"
	"github.com/themizzi/jupitertoys/internal/config"
	"github.com/themizzi/jupitertoys/internal/logger"
)

var version = "0.1.0"

// envWithOverrides layers command-line values over the process environment
func envWithOverrides(overrides map[string]string) func(string) string {
	return func(key string) string {
		if v, ok := overrides[key]; ok && v != "" {
			return v
		}
		return os.Getenv(key)
	}
}

// browserConfig loads the browser configuration, letting flags win over the environment
func browserConfig(c *cli.Context) (*config.BrowserConfig, error) {
	overrides := map[string]string{
		"BASE_URL": c.String("base-url"),
		"BROWSER":  c.String("browser"),
	}
	if c.Bool("headed") {
		overrides["HEADLESS"] = "false"
	}
	cfg, err := config.LoadBrowserConfig(envWithOverrides(overrides))
	if err != nil {
		return nil, fmt.Errorf("invalid browser configuration: %w", err)
	}
	return cfg, nil
}

func browserFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "site under test (default $BASE_URL or the public Jupiter Toys site)",
		},
		&cli.StringFlag{
			Name:  "browser",
			Usage: "browser engine: chromium, firefox or webkit (default $BROWSER or chromium)",
		},
	}
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the end-to-end scenarios in a browser",
		Flags: append([]cli.Flag{
			&cli.StringSliceFlag{
				Name:    "scenario",
				Aliases: []string{"s"},
				Usage:   "scenario to run, repeatable (default all)",
			},
			&cli.IntFlag{
				Name:  "repeat",
				Value: 1,
				Usage: "run every scenario this many times",
			},
			&cli.BoolFlag{
				Name:  "headed",
				Usage: "show the browser window",
			},
		}, browserFlags()...),
		Action: func(c *cli.Context) error {
			cfg, err := browserConfig(c)
			if err != nil {
				return err
			}

			suiteLog := logger.Default()
			suiteLog.Infof("Running against %s with %s", cfg.BaseURL, cfg.Browser)

			return internalcli.RunSuite(internalcli.RunOptions{
				Browser:   cfg,
				Scenarios: c.StringSlice("scenario"),
				Repeat:    c.Int("repeat"),
				Log:       suiteLog,
				Out:       c.App.Writer,
			})
		},
	}
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the local demo shop",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "listen port (default $PORT or 8080)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadServerConfig(envWithOverrides(map[string]string{"PORT": c.String("port")}))
			if err != nil {
				return fmt.Errorf("invalid server configuration: %w", err)
			}

			deps, err := internalcli.BuildServerDependencies(cfg)
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

// ProductsCommand returns the products command
func ProductsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "List the product catalog",
		Action: func(c *cli.Context) error {
			return internalcli.PrintProducts(c.App.Writer)
		},
	}
}

// PagesCommand returns the pages command
func PagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "pages",
		Usage: "List the page URLs and scenarios",
		Flags: browserFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := browserConfig(c)
			if err != nil {
				return err
			}
			if err := internalcli.PrintPages(c.App.Writer, cfg.BaseURL); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer)
			return internalcli.PrintScenarios(c.App.Writer)
		},
	}
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Download the playwright driver and browser",
		Flags: browserFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := browserConfig(c)
			if err != nil {
				return err
			}
			log.Printf("Installing playwright with %s", cfg.Browser)
			return internalcli.InstallBrowsers(cfg)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "jupiter",
		Usage:   "Jupiter Toys end-to-end test suite",
		Version: version,
		Commands: []*cli.Command{
			RunCommand(),
			ServeCommand(),
			ProductsCommand(),
			PagesCommand(),
			InstallCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
