package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/hrportal/internal/portal"
)

func (a *App) summaryCmd() *cobra.Command {
	var (
		tabName string
		noColor bool
		width   int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a portal panel",
		Long: `Print the contents of a portal panel without starting the TUI.

Without --tab every panel is printed in tab order.

Examples:
  hrportal summary
  hrportal summary --tab learning
  hrportal summary --tab compensation --no-color`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tabs := portal.Tabs()
			if tabName != "" {
				tab, err := portal.ParseTab(tabName)
				if err != nil {
					return err
				}
				tabs = []portal.Tab{tab}
			}

			if noColor {
				defer suspendColor()()
			}

			out := cmd.OutOrStdout()
			opts := PrintOpts{Symbol: a.config.Currency.Symbol, Width: width}
			for i, tab := range tabs {
				if i > 0 {
					fmt.Fprintln(out)
				}
				PrintPanel(out, a.content, tab, opts)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tabName, "tab", "t", "", "Panel to print (dashboard, learning, wellness, compensation)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Output width (default: terminal width)")

	return cmd
}
