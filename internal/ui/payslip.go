package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/hrportal/internal/payslip"
)

func (a *App) payslipCmd() *cobra.Command {
	var (
		pdfDir  string
		copyOut bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "payslip",
		Short: "Print, export or copy the payslip",
		Long: `Print the current payslip.

--pdf=DIR writes an A4 PDF into DIR. A bare --pdf writes into the configured
export directory when no value is given. --copy puts the plain text on
the clipboard.

Examples:
  hrportal payslip
  hrportal payslip --pdf
  hrportal payslip --pdf=./out --copy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				defer suspendColor()()
			}

			out := cmd.OutOrStdout()
			doc := a.payslipDocument()
			printPayslip(out, doc)

			if cmd.Flags().Changed("pdf") {
				path, err := payslip.ExportFile(pdfDir, doc)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\nSaved %s\n", formatAccent(path))
			}

			if copyOut {
				if err := a.copyText(payslip.Text(doc)); err != nil {
					return fmt.Errorf("copying payslip: %w", err)
				}
				fmt.Fprintln(out, formatMuted("Payslip copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pdfDir, "pdf", "", "Export the payslip as PDF into this directory")
	cmd.Flags().Lookup("pdf").NoOptDefVal = a.config.Export.PayslipDir
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the payslip text to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (a *App) payslipDocument() payslip.Document {
	return payslip.Document{
		Employee:     a.config.Employee.Name,
		CurrencyCode: a.config.Currency.Code,
		Symbol:       a.config.Currency.Symbol,
		Slip:         a.content.Payslip,
	}
}
