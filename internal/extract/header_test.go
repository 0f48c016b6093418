package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader_InvoiceNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"invoice no with colon", "Invoice No: 482", "482", true},
		{"invoice no with dot", "Invoice No. 1204", "1204", true},
		{"inv hash", "Inv# 99", "99", true},
		{"invoice id with dash", "Invoice ID- 777", "777", true},
		{"case insensitive", "INVOICE NO 31", "31", true},
		{"no digits", "Invoice No: pending", "", false},
		{"absent", "some header text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok, _ := Header(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeader_InvoiceDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"numeric date", "Date of issue: 03/14/2024", "03/14/2024", true},
		{"short year", "1/2/24", "1/2/24", true},
		{"month name date", "Issued March 14, 2024", "March 14, 2024", true},
		{"absent", "no date here", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, _, ok := Header(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeader_DatePatternPriorityNotTextPosition(t *testing.T) {
	// The month-name form appears first in the text, but the numeric pattern
	// is earlier in the cascade and wins.
	_, got, _, ok := Header("Issued March 14, 2024, due 04/01/2024")
	assert.True(t, ok)
	assert.Equal(t, "04/01/2024", got)
}

func TestHeader_FieldsAreIndependent(t *testing.T) {
	no, date, okNo, okDate := Header("Invoice No: 482 issued nowhere")
	assert.True(t, okNo)
	assert.Equal(t, "482", no)
	assert.False(t, okDate)
	assert.Empty(t, date)

	no, date, okNo, okDate = Header("issued 03/14/2024")
	assert.False(t, okNo)
	assert.Empty(t, no)
	assert.True(t, okDate)
	assert.Equal(t, "03/14/2024", date)
}
