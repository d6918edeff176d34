package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPatterns is an ordered list, not a set. Bank messages overwhelmingly
// place the currency marker before the amount, so that pattern runs first to
// avoid latching onto other numeric tokens (account numbers, dates) when a
// later pattern would also match. First pattern with a positive parse wins.
var amountPatterns = []*regexp.Regexp{
	// Currency marker then number: "Rs.450", "INR 899.00", "₹1,200"
	regexp.MustCompile(`(?i)(?:rs\.?|inr|₹)\s*([\d,]+(?:\.\d{1,2})?)`),
	// Number then currency marker: "450 Rs", "899.00 INR"
	regexp.MustCompile(`(?i)([\d,]+(?:\.\d{1,2})?)\s*(?:rs\.?|inr|₹)`),
	// Label token then number: "Amount: 450", "Amt 899.00"
	regexp.MustCompile(`(?i)(?:amount|amt)[:\s]*([\d,]+(?:\.\d{1,2})?)`),
}

// extractAmount scans message for a currency-tagged numeric literal and
// returns the first positive amount found, grouping separators stripped and
// decimals preserved. Returns nil when nothing usable matches; a missing
// amount is a degraded result, not an error.
func extractAmount(message string) *decimal.Decimal {
	for _, pattern := range amountPatterns {
		match := pattern.FindStringSubmatch(message)
		if match == nil {
			continue
		}

		raw := strings.ReplaceAll(match[1], ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		if amount.IsPositive() {
			return &amount
		}
	}
	return nil
}
