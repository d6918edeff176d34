package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smsledger/smsledger/internal/domain/accounts"
	"github.com/smsledger/smsledger/internal/domain/ingest"
	"github.com/smsledger/smsledger/internal/domain/parser"
	"github.com/smsledger/smsledger/pkg/metrics"
	"github.com/smsledger/smsledger/pkg/money"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	repo := accounts.NewMemoryRepository()
	repo.Seed([]accounts.Account{
		{ID: uuid.New(), Name: "HDFC Bank", Type: accounts.TypeBank},
		{ID: uuid.New(), Name: "ICICI Bank", Type: accounts.TypeBank},
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := ingest.NewService(
		parser.New(),
		accounts.NewResolver(repo),
		ingest.NewMemoryTransactionRepository(),
		metrics.New(),
		logger,
		money.INR,
	)

	mux := http.NewServeMux()
	NewIngestHandler(svc, logger).RegisterRoutes(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestParseEndpoint(t *testing.T) {
	mux := newTestMux(t)

	t.Run("parses a debit message", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/parse",
			`{"message": "Rs.450 debited from A/c XX1234 at Amazon. Avl Bal Rs.12,550"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			Amount      *float64 `json:"amount"`
			Type        string   `json:"type"`
			Category    string   `json:"category"`
			Description string   `json:"description"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.NotNil(t, got.Amount)
		assert.InDelta(t, 450, *got.Amount, 0.001)
		assert.Equal(t, "expense", got.Type)
		assert.Equal(t, "shopping", got.Category)
		assert.Equal(t, "Amazon", got.Description)
	})

	t.Run("amount is null when absent", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/parse",
			`{"message": "Your OTP is 482913. Do not share it."}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"amount":null`)
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/parse", `{"message": ""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/parse", `{"message"`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIngestEndpoint(t *testing.T) {
	mux := newTestMux(t)

	t.Run("stores a transaction from a message", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/ingest",
			`{"sms": "Rs.450 debited from A/c XX1234 at Amazon. Avl Bal Rs.12,550", "sender": "HDFC-Bank"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var tx struct {
			ID          string `json:"id"`
			Type        string `json:"type"`
			Category    string `json:"category"`
			Description string `json:"description"`
			Source      string `json:"source"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tx))
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, "expense", tx.Type)
		assert.Equal(t, "shopping", tx.Category)
		assert.Equal(t, "Amazon", tx.Description)
		assert.Equal(t, "sms", tx.Source)

		list := doJSON(t, mux, http.MethodGet, "/v1/transactions", "")
		require.Equal(t, http.StatusOK, list.Code)
		assert.Contains(t, list.Body.String(), tx.ID)
	})

	t.Run("message without amount is unprocessable", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/ingest",
			`{"sms": "Your OTP is 482913. Do not share it."}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestScanEndpoints(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/v1/scan", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var scan struct {
		Messages []struct {
			ID     string `json:"id"`
			Sender string `json:"sender"`
			Parsed struct {
				Amount   *float64 `json:"amount"`
				Type     string   `json:"type"`
				Category string   `json:"category"`
			} `json:"parsed"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scan))
	require.Len(t, scan.Messages, 5)
	assert.Equal(t, "sms1", scan.Messages[0].ID)
	assert.Equal(t, "shopping", scan.Messages[0].Parsed.Category)
	assert.Equal(t, "income", scan.Messages[1].Parsed.Type)

	t.Run("import selected", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/scan/import", `{"ids": ["sms1", "sms3"]}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var imported struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &imported))
		assert.Equal(t, 2, imported.Count)
	})

	t.Run("unknown id is rejected", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/scan/import", `{"ids": ["nope"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty selection is rejected", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/scan/import", `{"ids": []}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCategoriesEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Categories []struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Icon  string `json:"icon"`
			Color string `json:"color"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Categories, 8)
	assert.Equal(t, "food", got.Categories[0].ID)
	assert.Equal(t, "Food & Dining", got.Categories[0].Name)
}
