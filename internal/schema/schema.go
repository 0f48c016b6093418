package schema

// BuildInvoiceRecordSchema returns a JSON-Schema (draft 2020-12 subset) for a
// serialized InvoiceRecord, as a generic map. The assembled record is checked
// against it before leaving the pipeline.
func BuildInvoiceRecordSchema() map[string]any {
	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"item_no":     map[string]any{"type": "integer", "minimum": 1},
			"description": map[string]any{"type": "string"},
			"quantity":    map[string]any{"type": "string"},
			"unit_price":  map[string]any{"type": "string"},
			"net_worth":   map[string]any{"type": "string"},
			"vat":         map[string]any{"type": "string", "pattern": `%$`},
			"gross_worth": map[string]any{"type": "string"},
		},
		"required": []string{
			"item_no", "description", "quantity", "unit_price",
			"net_worth", "vat", "gross_worth",
		},
	}
	summaryField := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"key":   map[string]any{"type": "string"},
			"value": map[string]any{"type": "string"},
		},
		"required": []string{"key", "value"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"vendor":         nullableString(),
			"invoice_number": nullableString(),
			"invoice_date":   nullableString(),
			"line_items":     map[string]any{"type": "array", "items": lineItem},
			"summary":        map[string]any{"type": "array", "items": summaryField},
		},
		"required": []string{"vendor", "invoice_number", "invoice_date", "line_items", "summary"},
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}
