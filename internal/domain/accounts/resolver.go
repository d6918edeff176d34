package accounts

import (
	"context"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Fuzzy ranking below this similarity score is treated as no match; the
// resolver then falls back to the default account.
const fuzzyThreshold = 60

// Resolver maps a bank/sender identifier from an incoming message to a
// stored account. Matching is case-insensitive substring in either direction
// first (sender "hdfc" matches account "HDFC Savings" and vice versa), then
// fuzzy ranking for near-misses, then the first bank-typed account, then the
// first account. For a fixed account list the result is deterministic.
type Resolver struct {
	repo Repository
}

// NewResolver creates a resolver over the given account store.
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve picks the account a message from sender should settle against.
// An empty sender skips straight to the default account.
func (r *Resolver) Resolve(ctx context.Context, sender string) (*Account, error) {
	all, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrNoAccounts
	}

	// Sender IDs write separators where account names use spaces
	// ("HDFC-Bank" vs "HDFC Bank").
	needle := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(strings.TrimSpace(sender)))
	if needle != "" {
		if match := matchSubstring(all, needle); match != nil {
			return match, nil
		}
		if match := matchFuzzy(all, needle); match != nil {
			return match, nil
		}
	}

	return defaultAccount(all), nil
}

// matchSubstring applies the containment-either-direction rule.
func matchSubstring(all []Account, needle string) *Account {
	for i := range all {
		name := strings.ToLower(all[i].Name)
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			account := all[i]
			return &account
		}
	}
	return nil
}

// matchFuzzy ranks account names against the sender and returns the best
// scorer above the threshold. Earlier accounts win score ties.
func matchFuzzy(all []Account, needle string) *Account {
	best := -1
	bestScore := fuzzyThreshold - 1

	for i := range all {
		score := similarity(needle, strings.ToLower(all[i].Name))
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	if best == -1 {
		return nil
	}
	account := all[best]
	return &account
}

// similarity scores two lowercase strings 0-100 using subsequence rank
// distance in both directions.
func similarity(a, b string) int {
	if a == b {
		return 100
	}

	score := 0
	if rank := fuzzy.RankMatch(a, b); rank >= 0 {
		score = scaleRank(rank, len(b))
	}
	if rank := fuzzy.RankMatch(b, a); rank >= 0 {
		if s := scaleRank(rank, len(a)); s > score {
			score = s
		}
	}
	return score
}

// scaleRank converts a Levenshtein-style rank into a 0-100 score relative to
// the haystack length.
func scaleRank(rank, length int) int {
	if length == 0 {
		return 0
	}
	score := 100 - (rank * 100 / length)
	if score < 0 {
		return 0
	}
	return score
}

// defaultAccount prefers the first bank account, then the first account.
func defaultAccount(all []Account) *Account {
	for i := range all {
		if all[i].Type == TypeBank {
			account := all[i]
			return &account
		}
	}
	account := all[0]
	return &account
}
