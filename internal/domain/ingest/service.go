// Package ingest turns raw bank messages into ledger transactions. It wires
// the message parser to account resolution and transaction storage for the
// two entry points the app exposes: the shortcut deep link and the inbox
// scan.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smsledger/smsledger/internal/domain/accounts"
	"github.com/smsledger/smsledger/internal/domain/parser"
	"github.com/smsledger/smsledger/pkg/metrics"
	"github.com/smsledger/smsledger/pkg/money"
)

// ErrInvalidAmount is returned when a message or parameter set yields no
// positive amount; such transactions are rejected, not stored as zero.
var ErrInvalidAmount = errors.New("transaction amount is missing or not positive")

// ErrUnknownSample is returned when an import references a sample message ID
// that is not in the inbox.
var ErrUnknownSample = errors.New("unknown sample message id")

// ShortcutParams are the deep-link parameters delivered by the automation
// trigger. Either SMS carries a full raw message, or the legacy trio
// Amount/Desc/Type carries pre-split values.
type ShortcutParams struct {
	SMS    string
	Amount string
	Desc   string
	Type   string
	Bank   string
	Sender string
}

// ScanResult pairs an inbox sample with its live parse.
type ScanResult struct {
	SampleMessage
	Parsed parser.ParsedTransaction `json:"parsed"`
}

// Service orchestrates parsing, account resolution and storage.
type Service struct {
	parser   *parser.Parser
	resolver *accounts.Resolver
	txRepo   TransactionRepository
	metrics  *metrics.Metrics
	logger   *slog.Logger
	currency string
	inbox    []SampleMessage
}

// NewService creates the ingest service. currency is the ISO-4217 code
// applied to ingested amounts.
func NewService(p *parser.Parser, resolver *accounts.Resolver, txRepo TransactionRepository, m *metrics.Metrics, logger *slog.Logger, currency string) *Service {
	return &Service{
		parser:   p,
		resolver: resolver,
		txRepo:   txRepo,
		metrics:  m,
		logger:   logger,
		currency: currency,
		inbox:    SampleInbox(),
	}
}

// ParseMessage parses a single bank message and records parse metrics.
// It never fails; degraded fields carry their documented defaults.
func (s *Service) ParseMessage(message string) parser.ParsedTransaction {
	parsed := s.parser.ParseBankMessage(message)

	s.metrics.MessagesParsed.WithLabelValues(string(parsed.Type), string(parsed.Category)).Inc()
	if parsed.Amount == nil {
		s.metrics.AmountMissing.Inc()
	}

	return parsed
}

// Categories returns the display table shared with UI consumers.
func (s *Service) Categories() []parser.Category {
	return parser.Categories()
}

// IngestShortcut handles the deep-link flow: parse or adopt the incoming
// values, validate the amount, resolve the destination account and store the
// transaction.
func (s *Service) IngestShortcut(ctx context.Context, params ShortcutParams) (*Transaction, error) {
	var (
		amount      *decimal.Decimal
		direction   parser.Direction
		category    parser.CategoryID
		description string
	)

	if params.SMS != "" {
		parsed := s.ParseMessage(params.SMS)
		amount = parsed.Amount
		direction = parsed.Type
		category = parsed.Category
		description = parsed.Description
	} else {
		if d, err := decimal.NewFromString(strings.TrimSpace(params.Amount)); err == nil {
			amount = &d
		}
		direction = parser.DirectionExpense
		if params.Type == string(parser.DirectionIncome) {
			direction = parser.DirectionIncome
		}
		description = strings.TrimSpace(params.Desc)
		if description == "" {
			description = "Transaction from SMS"
		}
		category = parser.CategoryIncome
		if direction != parser.DirectionIncome {
			category = s.parser.Categorize(description)
		}
	}

	if amount == nil || !amount.IsPositive() {
		s.metrics.IngestRejected.Inc()
		return nil, ErrInvalidAmount
	}

	identifier := params.Bank
	if identifier == "" {
		identifier = params.Sender
	}
	account, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("resolving account for %q: %w", identifier, err)
	}

	tx, err := s.txRepo.Create(ctx, Transaction{
		Amount:      money.FromDecimal(*amount, s.currency),
		Type:        direction,
		Category:    category,
		Description: description,
		Date:        time.Now().UTC(),
		Source:      SourceSMS,
		AccountID:   account.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("storing transaction: %w", err)
	}

	s.metrics.TransactionsIngested.WithLabelValues(SourceSMS).Inc()
	s.logger.Info("shortcut transaction ingested",
		slog.String("account", account.Name),
		slog.String("category", string(tx.Category)),
		slog.String("type", string(tx.Type)),
		slog.String("amount", tx.Amount.String()),
	)

	return tx, nil
}

// Scan parses every message in the sample inbox and returns the results in
// inbox order for the caller to review and select from.
func (s *Service) Scan(ctx context.Context) []ScanResult {
	results := make([]ScanResult, len(s.inbox))
	for i, sample := range s.inbox {
		results[i] = ScanResult{
			SampleMessage: sample,
			Parsed:        s.ParseMessage(sample.Message),
		}
	}
	return results
}

// ImportScanned stores the selected scan results as transactions. Samples
// whose parse produced no positive amount are skipped and counted as
// rejections; an unknown ID fails the whole call.
func (s *Service) ImportScanned(ctx context.Context, ids []string) ([]*Transaction, error) {
	byID := make(map[string]SampleMessage, len(s.inbox))
	for _, sample := range s.inbox {
		byID[sample.ID] = sample
	}

	imported := make([]*Transaction, 0, len(ids))
	for _, id := range ids {
		sample, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSample, id)
		}

		parsed := s.ParseMessage(sample.Message)
		if parsed.Amount == nil || !parsed.Amount.IsPositive() {
			s.metrics.IngestRejected.Inc()
			s.logger.Warn("scanned message skipped: no positive amount",
				slog.String("sample", sample.ID))
			continue
		}

		account, err := s.resolver.Resolve(ctx, sample.Sender)
		if err != nil {
			return nil, fmt.Errorf("resolving account for %q: %w", sample.Sender, err)
		}

		tx, err := s.txRepo.Create(ctx, Transaction{
			Amount:      money.FromDecimal(*parsed.Amount, s.currency),
			Type:        parsed.Type,
			Category:    parsed.Category,
			Description: parsed.Description,
			Date:        time.Now().UTC(),
			Source:      SourceScan,
			AccountID:   account.ID,
		})
		if err != nil {
			return nil, fmt.Errorf("storing transaction for %s: %w", sample.ID, err)
		}

		s.metrics.TransactionsIngested.WithLabelValues(SourceScan).Inc()
		imported = append(imported, tx)
	}

	return imported, nil
}

// Transactions lists all stored transactions.
func (s *Service) Transactions(ctx context.Context) ([]Transaction, error) {
	return s.txRepo.List(ctx)
}

// BuildTransactionURL renders the deep link the companion automation opens
// to hand a pre-split transaction to the app.
func BuildTransactionURL(amount decimal.Decimal, desc string, direction parser.Direction) string {
	q := url.Values{}
	q.Set("amount", amount.String())
	q.Set("desc", desc)
	q.Set("type", string(direction))
	return "expense-tracker://add?" + q.Encode()
}
