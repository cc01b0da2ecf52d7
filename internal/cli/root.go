// Package cli wires configuration, logging and the task service into the
// cobra command tree. With no subcommand the interactive board starts.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"taskboard/internal/backend/rest"
	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/prefs"
	"taskboard/internal/tui"
)

// Version is overridden at build time with -ldflags "-X taskboard/internal/cli.Version=...".
var Version = "dev"

// App carries the persistent flag values.
type App struct {
	ConfigPath string
	APIURL     string
	LogFile    string
	LogLevel   string
	PrefsFile  string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "taskboard",
		Short:         "Terminal to-do board for a remote task service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  taskboard

  # Point at another server
  taskboard --api-url http://tasks.internal:8000/api/todo/

  # Print pending tasks
  taskboard list --filter pending

  # Switch to the dark theme
  taskboard theme dark
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config.toml (default: $XDG_CONFIG_HOME/taskboard/config.toml)")
	cmd.PersistentFlags().StringVar(&app.APIURL, "api-url", "", "Task collection URL (overrides api_url)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Developer log file, or - for stderr")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.PrefsFile, "prefs", "", "Preferences database path")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// settings resolves defaults, file, environment and flags, in that order.
func (app *App) settings() (*config.Config, error) {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.Override(app.APIURL, app.LogFile, app.LogLevel, app.PrefsFile)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func openLogger(cfg *config.Config) (*log.Logger, io.Closer, error) {
	return logging.New(logging.OptionsFromConfig(cfg.LogFile, cfg.LogLevel, cfg.LogFormat))
}

func runTUI(ctx context.Context, app *App) error {
	cfg, err := app.settings()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	client, err := rest.New(cfg.APIURL, logger)
	if err != nil {
		return err
	}

	store, err := prefs.Open(ctx, cfg.PrefsFile)
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Info("starting", "api", client.BaseURL(), "prefs", store.Path(), "version", Version)
	return tui.Run(ctx, tui.Options{
		Service: client,
		Prefs:   store,
		Logger:  logger,
	})
}
