package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smsledger/smsledger/internal/domain/parser"
	"github.com/smsledger/smsledger/pkg/money"
)

// Transaction sources.
const (
	SourceSMS    = "sms"
	SourceScan   = "scan"
	SourceManual = "manual"
)

// Transaction is an accepted ledger entry assembled from a parsed message.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	Amount      *money.Money      `json:"amount"`
	Type        parser.Direction  `json:"type"`
	Category    parser.CategoryID `json:"category"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Source      string            `json:"source"`
	AccountID   uuid.UUID         `json:"account_id"`
}

// TransactionRepository is the storage seam for accepted transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction) (*Transaction, error)
	List(ctx context.Context) ([]Transaction, error)
}

// MemoryTransactionRepository stores transactions in memory, in insertion
// order. It stands in for the app's own persistence layer.
type MemoryTransactionRepository struct {
	mu  sync.RWMutex
	txs []Transaction
}

// NewMemoryTransactionRepository creates an empty store.
func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{}
}

// Create appends a transaction, assigning an ID when absent.
func (r *MemoryTransactionRepository) Create(ctx context.Context, tx Transaction) (*Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	r.txs = append(r.txs, tx)
	created := tx
	return &created, nil
}

// List returns all stored transactions in insertion order.
func (r *MemoryTransactionRepository) List(ctx context.Context) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Transaction, len(r.txs))
	copy(out, r.txs)
	return out, nil
}
