package extract

import (
	"strings"

	"github.com/invoicescan/invoicescan/internal/entity"
)

// Summary splits summary-band entries into key/value pairs. The band's own
// "Summary" header line leaks into the entries and is dropped. Keys stay in
// OCR order and are not deduplicated.
func Summary(entries []string) []entity.SummaryField {
	fields := make([]entity.SummaryField, 0, len(entries))
	for _, entry := range entries {
		if hasPrefixFold(entry, "summary") {
			continue
		}
		key, value, _ := strings.Cut(entry, ":")
		fields = append(fields, entity.SummaryField{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	return fields
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
