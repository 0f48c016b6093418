package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/invoicescan/invoicescan/internal/entity"
)

// ErrInsufficientNumericTokens reports an entry that does not carry the five
// numeric tokens a line item needs (quantity, unit price, net worth, VAT,
// gross worth).
var ErrInsufficientNumericTokens = errors.New("fewer than 5 numeric tokens in entry")

var (
	reEach = regexp.MustCompile(`(?i)\beach\b`)
	// The three OCR-tolerant numeric shapes, in priority order: a decimal with
	// one or more ./, groups, two integers split by a single space (decimal
	// separator read as whitespace), or an integer percentage.
	reNumericToken = regexp.MustCompile(`\d+(?:[.,]\d+)+|\d+\s\d+|\d+%`)
	reLeadingNo    = regexp.MustCompile(`^\s*\d+\.?\s*`)
	reAnyNumber    = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	reSpaces       = regexp.MustCompile(`\s+`)
)

// LineItems converts grouped entries into line items. Items are renumbered by
// position in the output; the OCR'd leading number is not trusted. Entries
// with fewer than five numeric tokens are skipped, not fatal: each skip is
// logged and returned as a warning diagnostic.
func LineItems(entries []string, logger *slog.Logger) ([]entity.LineItem, []string) {
	if logger == nil {
		logger = slog.Default()
	}
	items := make([]entity.LineItem, 0, len(entries))
	var warnings []string
	for i, entry := range entries {
		item, err := lineItem(entry)
		if err != nil {
			logger.Warn("skipping malformed line item",
				"entry_index", i,
				"entry", entry,
				"error", err,
			)
			warnings = append(warnings, fmt.Sprintf("entry %d: %v", i+1, err))
			continue
		}
		item.ItemNo = len(items) + 1
		items = append(items, item)
	}
	return items, warnings
}

func lineItem(entry string) (entity.LineItem, error) {
	nums := reNumericToken.FindAllString(entry, -1)
	if len(nums) < 5 {
		return entity.LineItem{}, fmt.Errorf("%w: got %d", ErrInsufficientNumericTokens, len(nums))
	}
	// Positional mapping; tokens beyond the fifth are ignored.
	return entity.LineItem{
		Description: cleanDescription(entry),
		Quantity:    nums[0],
		UnitPrice:   nums[1],
		NetWorth:    nums[2],
		VAT:         nums[3] + "%",
		GrossWorth:  nums[4],
	}, nil
}

// cleanDescription strips the entry-number prefix, the standalone word "each"
// and every numeric substring, leaving the free-text description.
func cleanDescription(entry string) string {
	desc := reEach.ReplaceAllString(entry, "")
	desc = reLeadingNo.ReplaceAllString(desc, "")
	desc = reAnyNumber.ReplaceAllString(desc, "")
	desc = reSpaces.ReplaceAllString(desc, " ")
	return strings.ReplaceAll(strings.TrimSpace(desc), ",", "")
}
