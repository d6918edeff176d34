// Package parser extracts structured transactions from noisy bank SMS and
// notification text. It is a rule-based pipeline of four stages: amount
// extraction, direction classification, category classification and merchant
// extraction, each an ordered short-circuit chain of pattern attempts.
//
// The parser is a total function of its input: malformed text never produces
// an error, only documented defaults (absent amount, expense direction,
// other category, "Transaction" description).
package parser

import "github.com/shopspring/decimal"

// FallbackDescription is used when no merchant label can be extracted.
const FallbackDescription = "Transaction"

// ParsedTransaction is the parser's output. Amount is nil when no
// currency-tagged number was found; every other field is always populated.
type ParsedTransaction struct {
	Amount      *decimal.Decimal
	Type        Direction
	Category    CategoryID
	Description string
}

// Parser is a stateless pipeline over immutable keyword and pattern tables.
// A single Parser is safe for concurrent use from any number of goroutines;
// calls share no mutable state and the same message always parses to the
// same result.
type Parser struct {
	engine *KeywordEngine
}

// New creates a parser bound to the built-in keyword table.
func New() *Parser {
	return NewWithTable(DefaultKeywordTable())
}

// NewWithTable creates a parser bound to a caller-supplied keyword table.
// The table is read once at construction; mutating it afterwards has no
// effect on the parser.
func NewWithTable(table []CategoryKeywords) *Parser {
	return &Parser{engine: NewKeywordEngine(table)}
}

// ParseBankMessage runs the full pipeline over one bank message.
func (p *Parser) ParseBankMessage(message string) ParsedTransaction {
	amount := extractAmount(message)
	direction := detectDirection(message)

	// All credits are bucketed as income, never sub-categorized.
	category := CategoryIncome
	if direction != DirectionIncome {
		category = p.Categorize(message)
	}

	description := extractMerchant(message)
	if description == "" {
		description = FallbackDescription
	}

	return ParsedTransaction{
		Amount:      amount,
		Type:        direction,
		Category:    category,
		Description: description,
	}
}

// Categorize maps a free-form description to a category by keyword lookup,
// treating the text as a non-income transaction. Used standalone when the
// caller already knows the direction (manual entry flows).
func (p *Parser) Categorize(description string) CategoryID {
	if category, ok := p.engine.Match(description); ok {
		return category
	}
	return CategoryOther
}

// ExtractAmount exposes the amount-extraction stage on its own.
func (p *Parser) ExtractAmount(message string) *decimal.Decimal {
	return extractAmount(message)
}

// DetectDirection exposes the direction-classification stage on its own.
func (p *Parser) DetectDirection(message string) Direction {
	return detectDirection(message)
}
