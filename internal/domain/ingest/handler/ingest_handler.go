// Package handler exposes the ingest pipeline over JSON HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/smsledger/smsledger/internal/domain/ingest"
	"github.com/smsledger/smsledger/internal/domain/parser"
)

// IngestHandler handles parse and ingest HTTP requests.
type IngestHandler struct {
	svc    *ingest.Service
	logger *slog.Logger
}

// NewIngestHandler creates a new ingest handler.
func NewIngestHandler(svc *ingest.Service, logger *slog.Logger) *IngestHandler {
	return &IngestHandler{
		svc:    svc,
		logger: logger,
	}
}

// RegisterRoutes attaches the handler's endpoints to the mux.
func (h *IngestHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/parse", h.Parse)
	mux.HandleFunc("POST /v1/ingest", h.Ingest)
	mux.HandleFunc("GET /v1/scan", h.Scan)
	mux.HandleFunc("POST /v1/scan/import", h.ImportScanned)
	mux.HandleFunc("GET /v1/categories", h.Categories)
	mux.HandleFunc("GET /v1/transactions", h.Transactions)
}

type parseRequest struct {
	Message string `json:"message"`
}

// parsedPayload is the wire form of a parse result. Amount is a JSON number
// or null when no amount was found.
type parsedPayload struct {
	Amount      *float64 `json:"amount"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

func toParsedPayload(p parser.ParsedTransaction) parsedPayload {
	out := parsedPayload{
		Type:        string(p.Type),
		Category:    string(p.Category),
		Description: p.Description,
	}
	if p.Amount != nil {
		v := p.Amount.InexactFloat64()
		out.Amount = &v
	}
	return out
}

// Parse runs the message parser without storing anything.
func (h *IngestHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	writeJSON(w, http.StatusOK, toParsedPayload(h.svc.ParseMessage(req.Message)))
}

type ingestRequest struct {
	SMS    string `json:"sms"`
	Amount string `json:"amount"`
	Desc   string `json:"desc"`
	Type   string `json:"type"`
	Bank   string `json:"bank"`
	Sender string `json:"sender"`
}

// Ingest stores a transaction from a raw message or pre-split parameters,
// mirroring the shortcut deep link.
func (h *IngestHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.svc.IngestShortcut(r.Context(), ingest.ShortcutParams{
		SMS:    req.SMS,
		Amount: req.Amount,
		Desc:   req.Desc,
		Type:   req.Type,
		Bank:   req.Bank,
		Sender: req.Sender,
	})
	if err != nil {
		if errors.Is(err, ingest.ErrInvalidAmount) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("ingest failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to ingest transaction")
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

type scanItem struct {
	ID      string        `json:"id"`
	Sender  string        `json:"sender"`
	Message string        `json:"message"`
	Parsed  parsedPayload `json:"parsed"`
}

// Scan parses the sample inbox and returns the results for review.
func (h *IngestHandler) Scan(w http.ResponseWriter, r *http.Request) {
	results := h.svc.Scan(r.Context())

	items := make([]scanItem, len(results))
	for i, res := range results {
		items[i] = scanItem{
			ID:      res.ID,
			Sender:  res.Sender,
			Message: res.Message,
			Parsed:  toParsedPayload(res.Parsed),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"messages": items})
}

type importRequest struct {
	IDs []string `json:"ids"`
}

// ImportScanned stores the selected scan results as transactions.
func (h *IngestHandler) ImportScanned(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "ids is required")
		return
	}

	imported, err := h.svc.ImportScanned(r.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, ingest.ErrUnknownSample) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("scan import failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to import transactions")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"imported": imported,
		"count":    len(imported),
	})
}

// Categories returns the category display table.
func (h *IngestHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": h.svc.Categories()})
}

// Transactions lists stored transactions.
func (h *IngestHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.Transactions(r.Context())
	if err != nil {
		h.logger.Error("listing transactions failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": txs})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
