package entity

// PositionedToken is one OCR word together with its layout position, as
// reported by the OCR collaborator. The ordering key is
// (BlockNum, ParNum, LineNum, WordNum).
type PositionedToken struct {
	Text     string
	BlockNum int
	ParNum   int
	LineNum  int
	WordNum  int
}

// LineItem is one itemized invoice row. The numeric fields stay strings so the
// OCR'd formatting (locale punctuation, thousands separators) is preserved.
type LineItem struct {
	ItemNo      int    `json:"item_no"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	NetWorth    string `json:"net_worth"`
	VAT         string `json:"vat"`
	GrossWorth  string `json:"gross_worth"`
}

// SummaryField is one key/value pair from the summary band. Keys may repeat;
// order follows the OCR lines.
type SummaryField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// InvoiceRecord is the assembled extraction output for data transfer between
// layers. Header fields are nil when no pattern matched, which serializes to
// JSON null.
type InvoiceRecord struct {
	Vendor        *string        `json:"vendor"`
	InvoiceNumber *string        `json:"invoice_number"`
	InvoiceDate   *string        `json:"invoice_date"`
	LineItems     []LineItem     `json:"line_items"`
	Summary       []SummaryField `json:"summary"`
}
