package extract

import "regexp"

var invoiceNoRules = []rule{
	{regexp.MustCompile(`(?i)Invoice\s*No\.?[:\-]?\s*(\d+)`), 1},
	{regexp.MustCompile(`(?i)Inv#?[:\-]?\s*(\d+)`), 1},
	{regexp.MustCompile(`(?i)Invoice\s*ID[:\-]?\s*(\d+)`), 1},
}

var invoiceDateRules = []rule{
	{regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`), 0},
	{regexp.MustCompile(`[A-Za-z]{3,9}\s+\d{1,2},\s*\d{4}`), 0},
}

// Header pulls the invoice number and date out of the header band transcript.
// Each field runs its own cascade; a miss on one leaves the other intact.
func Header(text string) (invoiceNo, invoiceDate string, okNo, okDate bool) {
	invoiceNo, okNo = firstMatch(invoiceNoRules, text)
	invoiceDate, okDate = firstMatch(invoiceDateRules, text)
	return invoiceNo, invoiceDate, okNo, okDate
}
