package extract

import (
	"regexp"
	"strings"
)

var (
	reInlineVendor = regexp.MustCompile(`(?i)^(?:Seller|Vendor)\s*[:\-]\s*(.+)$`)
	reDigit        = regexp.MustCompile(`\d`)
)

// vendorTiers are tried in order; the first hit wins. Invoices label the
// seller inconsistently, so the cascade trades precision down tier by tier.
var vendorTiers = []func(lines []string) (string, bool){
	vendorAfterSellerLabel,
	vendorInline,
	vendorFirstNonNumericLine,
}

// Vendor extracts the seller name from a full-page transcript. The counter
// party is labelled "Client" on these invoices and must not be captured.
// ok is false when no tier matched.
func Vendor(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	for _, tier := range vendorTiers {
		if name, ok := tier(lines); ok {
			return name, true
		}
	}
	return "", false
}

// vendorAfterSellerLabel handles a bare "Seller:" label with the name on one
// of the following lines. Blank lines and the client block are skipped.
func vendorAfterSellerLabel(lines []string) (string, bool) {
	for i, line := range lines {
		if !strings.HasPrefix(strings.ToLower(line), "seller:") {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(strings.TrimRight(line, ":")), "seller") {
			continue
		}
		for _, next := range lines[i+1:] {
			if next == "" || strings.HasPrefix(strings.ToLower(next), "client") {
				continue
			}
			return next, true
		}
	}
	return "", false
}

// vendorInline handles "Seller: Name" and "Vendor: Name" on a single line.
func vendorInline(lines []string) (string, bool) {
	for _, line := range lines {
		m := reInlineVendor.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if !strings.EqualFold(name, "client") {
			return name, true
		}
	}
	return "", false
}

// vendorFirstNonNumericLine is the recall fallback: the first non-blank line
// containing no digit.
func vendorFirstNonNumericLine(lines []string) (string, bool) {
	for _, line := range lines {
		if line != "" && !reDigit.MatchString(line) {
			return line, true
		}
	}
	return "", false
}
