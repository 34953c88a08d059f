package journal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Posting
	}{
		{
			name: "two lines",
			text: "Dr Bank 1000; Cr Capital 1000",
			want: []Posting{
				{Account: "Bank", Side: Debit, Amount: 1000},
				{Account: "Capital", Side: Credit, Amount: 1000},
			},
		},
		{
			name: "currency symbol and separators",
			text: "Dr Trade receivables £1,200; Cr Sales 1,000; Cr VAT output 200",
			want: []Posting{
				{Account: "Trade receivables", Side: Debit, Amount: 1200},
				{Account: "Sales", Side: Credit, Amount: 1000},
				{Account: "VAT output", Side: Credit, Amount: 200},
			},
		},
		{
			name: "newline separated with mixed case sides",
			text: "dr Bank 500\nCR Sales 500",
			want: []Posting{
				{Account: "Bank", Side: Debit, Amount: 500},
				{Account: "Sales", Side: Credit, Amount: 500},
			},
		},
		{
			name: "trailing separator tolerated",
			text: "Dr Bank 500; Cr Sales 500;",
			want: []Posting{
				{Account: "Bank", Side: Debit, Amount: 500},
				{Account: "Sales", Side: Credit, Amount: 500},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntry(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEntryErrors(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantFragment string
	}{
		{"bad side", "Dx Bank 100; Cr Sales 100", "Dx Bank 100"},
		{"missing amount", "Dr Bank; Cr Sales 100", "Dr Bank"},
		{"non-numeric amount", "Dr Bank ten; Cr Sales 100", "Dr Bank ten"},
		{"negative amount", "Dr Bank -100; Cr Sales 100", "Dr Bank -100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntry(tt.text)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantFragment, pe.Fragment)
		})
	}
}

func TestParseEntryEmpty(t *testing.T) {
	_, err := ParseEntry("  ;\n ; ")
	require.True(t, errors.Is(err, ErrEmptyCandidate))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
