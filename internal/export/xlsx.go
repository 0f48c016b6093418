package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/invoicescan/invoicescan/internal/entity"
)

// Service produces XLSX bytes for extracted invoice records.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// InvoiceXLSX returns an XLSX workbook (as bytes) for the record: a "Line
// Items" sheet with one row per item and a single-row "Details" sheet with the
// header fields.
func (s *Service) InvoiceXLSX(rec entity.InvoiceRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const itemsSheet = "Line Items"
	if err := f.SetSheetName("Sheet1", itemsSheet); err != nil {
		return nil, err
	}

	headers := []string{
		"Item No",
		"Description",
		"Quantity",
		"Unit Price",
		"Net Worth",
		"VAT",
		"Gross Worth",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(itemsSheet, cell, h)
	}

	row := 2
	for _, item := range rec.LineItems {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(itemsSheet, cell, v)
		}
		write(1, item.ItemNo)
		write(2, item.Description)
		write(3, item.Quantity)
		write(4, item.UnitPrice)
		write(5, item.NetWorth)
		write(6, item.VAT)
		write(7, item.GrossWorth)
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(itemsSheet, "A", "A", 8)
	_ = f.SetColWidth(itemsSheet, "B", "B", 48)
	_ = f.SetColWidth(itemsSheet, "C", "G", 14)

	const detailsSheet = "Details"
	if _, err := f.NewSheet(detailsSheet); err != nil {
		return nil, err
	}
	detailHeaders := []string{"Vendor", "Invoice Number", "Invoice Date"}
	detailValues := []string{deref(rec.Vendor), deref(rec.InvoiceNumber), deref(rec.InvoiceDate)}
	for i := range detailHeaders {
		headCell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(detailsSheet, headCell, detailHeaders[i])
		valCell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(detailsSheet, valCell, detailValues[i])
	}
	_ = f.SetColWidth(detailsSheet, "A", "C", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"line_items", len(rec.LineItems),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
