// Package accounts holds the account model and sender-to-account resolution
// used when ingesting parsed bank messages.
package accounts

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/smsledger/smsledger/pkg/money"
)

var (
	// ErrNotFound is returned when an account ID is unknown.
	ErrNotFound = errors.New("account not found")
	// ErrNoAccounts is returned when resolution runs against an empty store.
	ErrNoAccounts = errors.New("no accounts configured")
)

// AccountType is the kind of account a transaction settles against.
type AccountType string

const (
	TypeBank   AccountType = "bank"
	TypeCard   AccountType = "card"
	TypeWallet AccountType = "wallet"
	TypeCash   AccountType = "cash"
)

// Account is a destination for ingested transactions.
type Account struct {
	ID             uuid.UUID    `json:"id"`
	Name           string       `json:"name"`
	Type           AccountType  `json:"type"`
	InitialBalance *money.Money `json:"initial_balance"`
	Color          string       `json:"color"`
}

// Repository is the storage seam for accounts. Persistence is an external
// collaborator of this system; MemoryRepository is the in-process stand-in.
type Repository interface {
	List(ctx context.Context) ([]Account, error)
	Get(ctx context.Context, id uuid.UUID) (*Account, error)
	Create(ctx context.Context, account Account) (*Account, error)
}

// MemoryRepository is an in-memory account store, safe for concurrent use.
// Iteration order is creation order, which keeps resolution deterministic.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts []Account
}

// NewMemoryRepository creates an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Seed replaces the store contents. Intended for startup wiring and tests.
func (r *MemoryRepository) Seed(accounts []Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = make([]Account, len(accounts))
	copy(r.accounts, accounts)
}

// List returns all accounts in creation order.
func (r *MemoryRepository) List(ctx context.Context) ([]Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

// Get returns the account with the given ID.
func (r *MemoryRepository) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			account := r.accounts[i]
			return &account, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new account, assigning an ID when absent.
func (r *MemoryRepository) Create(ctx context.Context, account Account) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.accounts = append(r.accounts, account)
	created := account
	return &created, nil
}
