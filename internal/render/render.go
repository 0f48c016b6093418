package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/invoicescan/invoicescan/internal/entity"
)

var (
	// labelStyle for field labels
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// valueStyle for extracted values
	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// missingStyle for fields with no match
	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// headerRowStyle for table header rows
	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	// warnStyle for diagnostics
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))
)

// FormatRecord renders the whole record for terminal display: the header
// fields, the line item table, and the summary pairs.
func FormatRecord(w io.Writer, rec entity.InvoiceRecord) {
	field := func(label string, v *string) {
		if v == nil {
			fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label), missingStyle.Render("(not found)"))
			return
		}
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label), valueStyle.Render(*v))
	}
	field("Vendor:        ", rec.Vendor)
	field("Invoice number:", rec.InvoiceNumber)
	field("Invoice date:  ", rec.InvoiceDate)

	if len(rec.LineItems) > 0 {
		fmt.Fprintln(w)
		formatLineItems(w, rec.LineItems)
	}
	if len(rec.Summary) > 0 {
		fmt.Fprintln(w)
		for _, sf := range rec.Summary {
			fmt.Fprintf(w, "%s %s\n", labelStyle.Render(sf.Key+":"), valueStyle.Render(sf.Value))
		}
	}
}

// FormatWarnings renders extraction diagnostics, one per line.
func FormatWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "%s %s\n", warnStyle.Render("warning:"), warning)
	}
}

func formatLineItems(w io.Writer, items []entity.LineItem) {
	headers := []string{"#", "Description", "Qty", "Unit Price", "Net Worth", "VAT", "Gross Worth"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", it.ItemNo),
			it.Description,
			it.Quantity,
			it.UnitPrice,
			it.NetWorth,
			it.VAT,
			it.GrossWorth,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	pad := func(s string, n int) string {
		if len(s) >= n {
			return s
		}
		return s + strings.Repeat(" ", n-len(s))
	}
	line := func(cells []string) string {
		padded := make([]string, len(cells))
		for i, c := range cells {
			padded[i] = pad(c, widths[i])
		}
		return strings.Join(padded, "  ")
	}

	fmt.Fprintln(w, headerRowStyle.Render(line(headers)))
	for _, r := range rows {
		fmt.Fprintln(w, line(r))
	}
}
