package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saad12354/site-stock-app/internal/config"
	"github.com/saad12354/site-stock-app/internal/statefile"
	"github.com/saad12354/site-stock-app/pkg/editor"
	"github.com/saad12354/site-stock-app/pkg/export"
	"github.com/saad12354/site-stock-app/pkg/inventory"
	"github.com/saad12354/site-stock-app/pkg/session"
)

var version = "0.1.0-dev"

var (
	// errInvalidState makes the process exit 1 after the issues were printed.
	errInvalidState = errors.New("inventory has validation issues")
	// errReported makes the process exit 1 after a failure notice was printed.
	errReported = errors.New("export failed")
)

type app struct {
	configPath string
	user       string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
	stderr io.Writer

	clipboard export.Clipboard
	driver    editor.PromptDriver
}

func newApp(stderr io.Writer) *app {
	return &app{
		stderr:    stderr,
		clipboard: export.SystemClipboard{},
	}
}

func main() {
	a := newApp(os.Stderr)
	if err := a.rootCommand().Execute(); err != nil {
		if !errors.Is(err, errInvalidState) && !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		}
		os.Exit(1)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "site-stock",
		Short:         "HVAC and plumbing site inventory form",
		Long:          "site-stock records the copper pipes, insulation, fittings, flare nuts, wires and\nconsumables taken to an installation site and renders a shareable summary.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "site-stock.yaml", "Configuration file")
	root.PersistentFlags().StringVar(&a.user, "user", os.Getenv("USER"), "Signed-in user shown on exports")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides config)")

	root.AddCommand(
		a.summaryCommand(),
		a.validateCommand(),
		a.filterCommand(),
		a.printCommand(),
		a.editCommand(),
		a.schemaCommand(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if level := strings.TrimSpace(a.logLevel); level != "" {
		cfg.Log.Level = level
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// openSession loads path (when set) and starts a session around it.
func (a *app) openSession(path string) (*session.Session, error) {
	state := inventory.New()
	if path != "" {
		loaded, result, err := statefile.Load(path)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			a.logger.Warn("state file has validation issues", slog.String("path", path), slog.Int("issues", len(result.Issues)))
		}
		state = loaded
	}

	return session.New(
		session.Auth{Authenticated: strings.TrimSpace(a.user) != "", User: a.user},
		session.WithLogger(a.logger),
		session.WithState(state),
		session.WithExportOptions(a.cfg.ExportOptions(a.clipboard)...),
	)
}
