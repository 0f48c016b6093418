package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItems_MapsFiveNumericTokens(t *testing.T) {
	entries := []string{"1. Blue Widget 2,00 each 10,00 20,00 10% 22,00"}

	items, warnings := LineItems(entries, nil)

	require.Len(t, items, 1)
	assert.Empty(t, warnings)

	item := items[0]
	assert.Equal(t, 1, item.ItemNo)
	// The "%" left behind by the VAT token survives; only digits are removed.
	assert.Equal(t, "Blue Widget %", item.Description)
	assert.Equal(t, "2,00", item.Quantity)
	assert.Equal(t, "10,00", item.UnitPrice)
	assert.Equal(t, "20,00", item.NetWorth)
	assert.Equal(t, "10%%", item.VAT)
	assert.Equal(t, "22,00", item.GrossWorth)
}

func TestLineItems_SpaceSplitDecimalArtifact(t *testing.T) {
	// A decimal separator read as a space still counts as one numeric token.
	entries := []string{"1. Cable 3 00 1,00 3,00 5% 3,15"}

	items, warnings := LineItems(entries, nil)

	require.Len(t, items, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, "3 00", items[0].Quantity)
	assert.Equal(t, "1,00", items[0].UnitPrice)
}

func TestLineItems_ExtraTokensIgnored(t *testing.T) {
	entries := []string{"4. Gizmo 1,00 5,00 5,00 10% 5,50 6,50"}

	items, _ := LineItems(entries, nil)

	require.Len(t, items, 1)
	assert.Equal(t, "5,50", items[0].GrossWorth)
}

func TestLineItems_PlainIntegersAreNotNumericTokens(t *testing.T) {
	// "2" matches none of the three numeric shapes, so this entry only
	// carries four tokens and is malformed.
	entries := []string{"1. Widget 2 10.00 20.00 5% 21.00"}

	items, warnings := LineItems(entries, nil)

	assert.Empty(t, items)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], ErrInsufficientNumericTokens.Error())
}

func TestLineItems_SkipsMalformedEntryAndRenumbers(t *testing.T) {
	entries := []string{
		"1. Widget 2,00 10,00 20,00 10% 22,00",
		"2. Broken row 5,00",
		"3. Gizmo 1,00 4,00 4,00 10% 4,40",
	}

	items, warnings := LineItems(entries, nil)

	require.Len(t, items, 2)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "entry 2")

	// Numbering is positional over the surviving items, not the OCR'd digits.
	assert.Equal(t, 1, items[0].ItemNo)
	assert.Equal(t, 2, items[1].ItemNo)
	assert.Equal(t, "Gizmo %", items[1].Description)
}

func TestLineItems_RenumbersMisreadOCRNumbers(t *testing.T) {
	entries := []string{
		"7. Widget 2,00 10,00 20,00 10% 22,00",
		"9. Gizmo 1,00 4,00 4,00 10% 4,40",
	}

	items, _ := LineItems(entries, nil)

	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ItemNo)
	assert.Equal(t, 2, items[1].ItemNo)
}

func TestLineItems_DescriptionCleanup(t *testing.T) {
	entries := []string{"2. USB-C Hub, 4 ports each 1,00 35,00 35,00 10% 38,50"}

	items, _ := LineItems(entries, nil)

	require.Len(t, items, 1)
	// Leading number gone, "each" gone, digits gone, commas dropped,
	// whitespace collapsed.
	assert.Equal(t, "USB-C Hub ports %", items[0].Description)
}

func TestLineItems_EmptyInput(t *testing.T) {
	items, warnings := LineItems(nil, nil)
	assert.Empty(t, items)
	assert.Empty(t, warnings)
	assert.NotNil(t, items)
}
