// Command markup renders, serves and exports the demo site built with the
// markup tree renderer.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/internal/site"
	"github.com/vango-dev/markup/pkg/middleware"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/style"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by every command.
type app struct {
	configPath string
	verbose    bool
	noColor    bool
	policy     string

	cfg *config.Config
	log *slog.Logger

	// getenv is os.LookupEnv outside tests.
	getenv func(string) (string, bool)
}

func main() {
	a := &app{getenv: os.LookupEnv}
	if err := newRootCmd(a).ExecuteContext(context.Background()); err != nil {
		errors.Print(os.Stderr, errors.FromError(err, "E402"))
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "markup",
		Short: "Render HTML from typed Go trees",
		Long: `markup renders pages built from typed element trees.

Styles attached to elements are collected into a stylesheet of
deduplicated classes, or written inline.

Commands:
  render   print one page
  serve    run the preview server
  export   write every page to a directory or S3 bucket`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file or project directory (default: current directory)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&a.policy, "policy", "", "style policy: none, class or grouped (default from config)")

	root.AddCommand(
		renderCmd(a),
		serveCmd(a),
		exportCmd(a),
		versionCmd(),
	)
	return root
}

// setup loads configuration and installs the logger.
func (a *app) setup(logOut io.Writer) error {
	if a.noColor {
		errors.DisableColors()
	}

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(a.getenv); err != nil {
		return err
	}
	if a.policy != "" {
		cfg.Style.Policy = a.policy
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = newLogger(logOut, cfg.Log.Level)
	slog.SetDefault(a.log)
	if cfg.Path() != "" {
		a.log.Debug("loaded config", "path", cfg.Path())
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load(".")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.New("E202").Wrap(err)
	}
	if info.IsDir() {
		return config.Load(path)
	}
	return config.LoadFile(filepath.Clean(path))
}

// newLogger returns a slog logger backed by a charmbracelet handler.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		lvl = charmlog.InfoLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           lvl,
	})
	return slog.New(handler)
}

func (a *app) stylePolicy() style.Policy {
	return a.cfg.StylePolicy()
}

func (a *app) site() *site.Site {
	return site.Demo(a.stylePolicy())
}

// newRenderer builds the renderer used by every command: logging outermost,
// then tracing and metrics.
func (a *app) newRenderer() *render.Renderer {
	return render.NewRenderer(render.Config{
		Policy:             a.stylePolicy(),
		ReadableClassNames: a.cfg.Style.ReadableNames,
		Middleware: []render.Middleware{
			middleware.Logging(a.log),
			middleware.OpenTelemetry(),
			middleware.Prometheus(),
		},
	})
}
