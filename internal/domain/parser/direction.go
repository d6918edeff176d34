package parser

import "regexp"

// Direction is whether money moved in or out. It is always definite: the
// classifier has no unknown state.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// Income cues run before expense cues: a message can plausibly contain both
// kinds of words ("refund processed, payment of Rs.200 adjusted") and income
// intent wins that ambiguity. Within each list, order is the evaluation order.
var incomeCues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)credited`),
	regexp.MustCompile(`(?i)received`),
	regexp.MustCompile(`(?i)cr\b`),
	regexp.MustCompile(`(?i)deposit`),
	regexp.MustCompile(`(?i)refund`),
	regexp.MustCompile(`(?i)cashback`),
}

var expenseCues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)debited`),
	regexp.MustCompile(`(?i)spent`),
	regexp.MustCompile(`(?i)paid`),
	regexp.MustCompile(`(?i)dr\b`),
	regexp.MustCompile(`(?i)purchase`),
	regexp.MustCompile(`(?i)withdrawn`),
	regexp.MustCompile(`(?i)payment of`),
}

// detectDirection classifies message as income or expense. Unclassifiable
// messages default to expense: the large majority of transactional alerts
// are debits, and under-counting spending is the costlier mistake.
func detectDirection(message string) Direction {
	for _, cue := range incomeCues {
		if cue.MatchString(message) {
			return DirectionIncome
		}
	}
	for _, cue := range expenseCues {
		if cue.MatchString(message) {
			return DirectionExpense
		}
	}
	return DirectionExpense
}
