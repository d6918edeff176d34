package parser

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// keywordEntry records where in the declaration order a keyword lives so ties
// between categories resolve to the earliest declared keyword.
type keywordEntry struct {
	category CategoryID
	keyword  string
}

// KeywordEngine matches a text against every category keyword in a single
// pass using the Aho-Corasick algorithm, then resolves the winner by
// declaration order. The scan is O(n + m) in text length and match count,
// independent of the number of keywords, while the result is identical to
// walking the table entry by entry and returning the first substring hit.
//
// The engine is immutable after construction and safe for concurrent use.
type KeywordEngine struct {
	matcher *ahocorasick.Matcher
	entries []keywordEntry // declaration order; index i corresponds to pattern i
}

// NewKeywordEngine builds an engine from an ordered keyword table.
// The income and other entries are skipped: income is assigned only by the
// direction classifier and other is the fallback, never a match target.
func NewKeywordEngine(table []CategoryKeywords) *KeywordEngine {
	e := &KeywordEngine{}

	seen := make(map[string]struct{})
	var patterns [][]byte
	for _, ck := range table {
		if ck.Category == CategoryIncome || ck.Category == CategoryOther {
			continue
		}
		for _, kw := range ck.Keywords {
			normalized := strings.ToUpper(strings.TrimSpace(kw))
			if normalized == "" {
				continue
			}
			// First declaration wins for duplicate keywords.
			if _, dup := seen[normalized]; dup {
				continue
			}
			seen[normalized] = struct{}{}
			e.entries = append(e.entries, keywordEntry{category: ck.Category, keyword: kw})
			patterns = append(patterns, []byte(normalized))
		}
	}

	if len(patterns) > 0 {
		e.matcher = ahocorasick.NewMatcher(patterns)
	}
	return e
}

// Match returns the category of the earliest-declared keyword occurring in
// text, or false when no keyword matches.
func (e *KeywordEngine) Match(text string) (CategoryID, bool) {
	if e.matcher == nil {
		return CategoryOther, false
	}

	// Matcher.Match mutates internal visit counters; MatchThreadSafe keeps
	// them on the stack so concurrent callers don't corrupt each other.
	hits := e.matcher.MatchThreadSafe([]byte(strings.ToUpper(text)))
	if len(hits) == 0 {
		return CategoryOther, false
	}

	best := -1
	for _, idx := range hits {
		if idx < 0 || idx >= len(e.entries) {
			continue
		}
		if best == -1 || idx < best {
			best = idx
		}
	}
	if best == -1 {
		return CategoryOther, false
	}
	return e.entries[best].category, true
}

// MatchBatch classifies multiple descriptions in one call.
func (e *KeywordEngine) MatchBatch(texts []string) []CategoryID {
	results := make([]CategoryID, len(texts))
	for i, text := range texts {
		category, ok := e.Match(text)
		if !ok {
			category = CategoryOther
		}
		results[i] = category
	}
	return results
}

// KeywordCount returns the number of keywords loaded in the engine.
func (e *KeywordEngine) KeywordCount() int {
	return len(e.entries)
}
