package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invoicescan/invoicescan/internal/entity"
)

func TestSummary(t *testing.T) {
	entries := []string{
		"Summary",
		"Subtotal: 100,00",
		"Tax: 5,00",
		"Total: 105,00",
	}

	got := Summary(entries)

	assert.Equal(t, []entity.SummaryField{
		{Key: "Subtotal", Value: "100,00"},
		{Key: "Tax", Value: "5,00"},
		{Key: "Total", Value: "105,00"},
	}, got)
}

func TestSummary_SkipsHeaderLineCaseInsensitive(t *testing.T) {
	got := Summary([]string{"SUMMARY of charges", "Total: 10,00"})

	assert.Equal(t, []entity.SummaryField{{Key: "Total", Value: "10,00"}}, got)
}

func TestSummary_NoColonYieldsEmptyValue(t *testing.T) {
	got := Summary([]string{"Amount due 42,00"})

	assert.Equal(t, []entity.SummaryField{{Key: "Amount due 42,00", Value: ""}}, got)
}

func TestSummary_SplitsOnFirstColonOnly(t *testing.T) {
	got := Summary([]string{"Due: 12:30"})

	assert.Equal(t, []entity.SummaryField{{Key: "Due", Value: "12:30"}}, got)
}

func TestSummary_KeepsDuplicateKeysInOrder(t *testing.T) {
	got := Summary([]string{"VAT: 2,00", "VAT: 3,00"})

	assert.Equal(t, []entity.SummaryField{
		{Key: "VAT", Value: "2,00"},
		{Key: "VAT", Value: "3,00"},
	}, got)
}

func TestSummary_EmptyInput(t *testing.T) {
	got := Summary(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
