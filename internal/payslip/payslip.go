// Package payslip renders the payslip as text and as a PDF document.
package payslip

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/javiermolinar/hrportal/internal/content"
)

// Document is a payslip ready for rendering.
type Document struct {
	Employee     string
	CurrencyCode string // e.g. "INR"; used where the symbol cannot be encoded
	Symbol       string // e.g. "₹"
	Slip         content.Payslip
}

// Lines returns the labelled payslip rows in display order.
func (d Document) Lines() [][2]string {
	return [][2]string{
		{"Month", d.Slip.Month},
		{"Base", d.Slip.Base.Format(d.Symbol)},
		{"Bonus", d.Slip.Bonus.Format(d.Symbol)},
		{"Deductions", d.Slip.Deductions.Format(d.Symbol)},
		{"Net Pay", d.Slip.Net().Format(d.Symbol)},
	}
}

// Text renders the payslip as plain text suitable for the clipboard.
func Text(d Document) string {
	var b strings.Builder
	b.WriteString("Payslip")
	if d.Employee != "" {
		b.WriteString(" - " + d.Employee)
	}
	b.WriteString("\n")
	for _, line := range d.Lines() {
		fmt.Fprintf(&b, "%-11s %s\n", line[0]+":", line[1])
	}
	return b.String()
}

// FileName returns the export file name for the payslip month.
func FileName(d Document) string {
	month := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(d.Slip.Month), " ", "-"))
	if month == "" {
		month = "current"
	}
	return "payslip-" + month + ".pdf"
}

// Write renders the payslip as an A4 PDF to w.
func Write(w io.Writer, d Document) error {
	pdf := build(d)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering payslip pdf: %w", err)
	}
	return nil
}

// ExportFile writes the payslip PDF into dir and returns the file path.
func ExportFile(dir string, d Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, FileName(d))

	pdf := build(d)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing payslip pdf: %w", err)
	}
	return path, nil
}

// build lays out the document. Core PDF fonts only cover cp1252, so free
// text is translated into it and amounts carry the currency code instead of
// the symbol.
func build(d Document) *gofpdf.Fpdf {
	code := d.CurrencyCode
	if code == "" {
		code = "INR"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Payslip "+d.Slip.Month, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip Details")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	if d.Employee != "" {
		pdf.Cell(0, 8, tr("Employee: "+d.Employee))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, tr("Month: "+d.Slip.Month))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Base: %s %s", d.Slip.Base.Plain(), code))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonus: %s %s", d.Slip.Bonus.Plain(), code))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s %s", d.Slip.Deductions.Plain(), code))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net Pay: %s %s", d.Slip.Net().Plain(), code))
	return pdf
}
