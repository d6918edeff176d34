package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			"preposition with capitalized run",
			"Alert: INR 899.00 spent on your Card XX9012 at SWIGGY.",
			"SWIGGY",
		},
		{
			"terminated by on",
			"Rs.300 paid to BigBasket on 12-Jan",
			"BigBasket",
		},
		{
			"UPI tag",
			"Your A/c XX1234 debited by Rs.450.00 on 02-Jan for UPI-Amazon. Avl Bal Rs.12,550.00",
			"UPI-Amazon",
		},
		{
			"IMPS tag with word run",
			"IMPS: ACME Corp Salary. Ref 99881",
			"ACME Corp Salary",
		},
		{
			"no pattern matches",
			"Rs.100 debited.",
			"",
		},
		{
			"lowercase run fails the capitalized template",
			"Rs.100 debited to someone somewhere",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMerchant(tt.message))
		})
	}
}

func TestExtractMerchant_LengthElimination(t *testing.T) {
	t.Run("short candidate on first template falls through, later template also too short", func(t *testing.T) {
		// "to X" matches the preposition template but "X" is too short;
		// the expense-verb template then produces the same rejected run.
		assert.Equal(t, "", extractMerchant("Rs.50 paid to X"))
	})

	t.Run("short candidate on first template, accepted on later template", func(t *testing.T) {
		// The preposition template latches onto "for Rs" (rejected: too
		// short after the terminator cut), but the UPI template still
		// yields a valid candidate. Elimination is per template, not per
		// message.
		got := extractMerchant("Debited for Rs.99 UPI:Coffee Day")
		assert.Equal(t, "Coffee Day", got)
	})

	t.Run("oversized candidate rejected everywhere", func(t *testing.T) {
		long := strings.Repeat("B", 64)
		assert.Equal(t, "", extractMerchant("Rs.10 spent at "+long))
	})
}
