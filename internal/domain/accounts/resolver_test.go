package accounts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRepo(t *testing.T, accts ...Account) *MemoryRepository {
	t.Helper()
	repo := NewMemoryRepository()
	for i := range accts {
		if accts[i].ID == uuid.Nil {
			accts[i].ID = uuid.New()
		}
	}
	repo.Seed(accts)
	return repo
}

func TestResolver_SubstringEitherDirection(t *testing.T) {
	repo := seedRepo(t,
		Account{Name: "Cash", Type: TypeCash},
		Account{Name: "HDFC Bank", Type: TypeBank},
		Account{Name: "ICICI Credit Card", Type: TypeCard},
	)
	resolver := NewResolver(repo)

	t.Run("sender contained in account name", func(t *testing.T) {
		got, err := resolver.Resolve(context.Background(), "hdfc")
		require.NoError(t, err)
		assert.Equal(t, "HDFC Bank", got.Name)
	})

	t.Run("account name contained in sender", func(t *testing.T) {
		got, err := resolver.Resolve(context.Background(), "alerts from hdfc bank ltd")
		require.NoError(t, err)
		assert.Equal(t, "HDFC Bank", got.Name)
	})

	t.Run("separator normalization", func(t *testing.T) {
		got, err := resolver.Resolve(context.Background(), "HDFC-Bank")
		require.NoError(t, err)
		assert.Equal(t, "HDFC Bank", got.Name)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got, err := resolver.Resolve(context.Background(), "ICICI CREDIT CARD")
		require.NoError(t, err)
		assert.Equal(t, "ICICI Credit Card", got.Name)
	})
}

func TestResolver_FuzzyFallback(t *testing.T) {
	repo := seedRepo(t,
		Account{Name: "Cash", Type: TypeCash},
		Account{Name: "HDFC Bank", Type: TypeBank},
	)
	resolver := NewResolver(repo)

	// Not a substring either way, but close enough to rank above the
	// threshold.
	got, err := resolver.Resolve(context.Background(), "hdfcbk")
	require.NoError(t, err)
	assert.Equal(t, "HDFC Bank", got.Name)
}

func TestResolver_Defaults(t *testing.T) {
	t.Run("unknown sender prefers bank account", func(t *testing.T) {
		repo := seedRepo(t,
			Account{Name: "Wallet", Type: TypeWallet},
			Account{Name: "SBI Savings", Type: TypeBank},
		)
		got, err := NewResolver(repo).Resolve(context.Background(), "ZZQQ-Alerts")
		require.NoError(t, err)
		assert.Equal(t, "SBI Savings", got.Name)
	})

	t.Run("no bank account falls back to first", func(t *testing.T) {
		repo := seedRepo(t,
			Account{Name: "Wallet", Type: TypeWallet},
			Account{Name: "Visa Card", Type: TypeCard},
		)
		got, err := NewResolver(repo).Resolve(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "Wallet", got.Name)
	})

	t.Run("empty sender skips matching", func(t *testing.T) {
		repo := seedRepo(t,
			Account{Name: "Cash", Type: TypeCash},
			Account{Name: "HDFC Bank", Type: TypeBank},
		)
		got, err := NewResolver(repo).Resolve(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "HDFC Bank", got.Name)
	})

	t.Run("empty store errors", func(t *testing.T) {
		_, err := NewResolver(NewMemoryRepository()).Resolve(context.Background(), "hdfc")
		assert.ErrorIs(t, err, ErrNoAccounts)
	})
}

func TestMemoryRepository_Get(t *testing.T) {
	repo := NewMemoryRepository()
	created, err := repo.Create(context.Background(), Account{Name: "HDFC Bank", Type: TypeBank})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "HDFC Bank", got.Name)

	_, err = repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
