package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/hrportal/internal/config"
	"github.com/javiermolinar/hrportal/internal/content"
	"github.com/javiermolinar/hrportal/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	content    content.Portal
	root       *cobra.Command
	debug      bool   // Enable debug logging
	configPath string // Config file edited by the config command
	copyText   func(string) error
	runTUI     func(cfg *config.Config, debug bool) error
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		config:     cfg,
		content:    content.Default(),
		configPath: config.DefaultConfigPath(),
		copyText:   clipboard.WriteAll,
		runTUI:     tui.RunWithDebug,
	}

	a.root = &cobra.Command{
		Use:   "hrportal",
		Short: "A terminal employee HR portal",
		Long: `hrportal is a terminal dashboard for employees.

It shows engagement, learning progress, wellness insights and
compensation, and lets you view your payslip or request leave.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI(a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.summaryCmd())
	a.root.AddCommand(a.payslipCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hrportal %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
