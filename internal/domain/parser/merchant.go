package parser

import (
	"regexp"
	"strings"
)

const (
	// A merchant candidate must be strictly between these lengths after
	// trimming. Shorter is noise ("Rs"), longer is a sentence fragment.
	merchantMinLen = 2
	merchantMaxLen = 50
)

// merchantPatterns is an ordered list of positional templates, tried in
// sequence with the first accepted candidate winning. A candidate rejected
// by the length check eliminates that template only; the remaining templates
// are still attempted.
var merchantPatterns = []*regexp.Regexp{
	// Preposition followed by a capitalized run, terminated by on/via/ref,
	// a period, or end of string. Deliberately case-sensitive on the first
	// letter: bank messages write merchant names capitalized.
	regexp.MustCompile(`(?:at|to|for|@)\s+([A-Z][A-Za-z0-9\s&.-]+?)(?:\s+on|\s+via|\s+ref|\.|\s*$)`),
	// Transfer-protocol tag: "UPI:MERCHANT", "IMPS-MERCHANT"
	regexp.MustCompile(`(?i)(?:UPI|IMPS|NEFT)[:\s-]+([A-Za-z0-9\s&.-]+?)(?:\s+on|\s+via|\s+ref|\.|\s*$)`),
	// Expense verb then preposition: "spent at MERCHANT"
	regexp.MustCompile(`(?i)(?:spent|paid|purchase)\s+(?:at|to|for)\s+([A-Za-z0-9\s&.-]+)`),
}

// extractMerchant pulls a short human-readable label out of message, or
// returns the empty string when every template fails or produces a candidate
// outside the accepted length bounds.
func extractMerchant(message string) string {
	for _, pattern := range merchantPatterns {
		match := pattern.FindStringSubmatch(message)
		if match == nil {
			continue
		}

		candidate := strings.TrimSpace(match[1])
		if len(candidate) > merchantMinLen && len(candidate) < merchantMaxLen {
			return candidate
		}
	}
	return ""
}
