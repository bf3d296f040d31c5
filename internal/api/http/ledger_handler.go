package http

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/ledger"
	"pizzapos-backend/internal/service"
)

// LedgerHandler serves the money-moving surface: sales, manual entries,
// balances, history, voiding, reports and the CSV export.
type LedgerHandler struct {
	txnSvc service.TransactionService
}

func NewLedgerHandler(txnSvc service.TransactionService) *LedgerHandler {
	return &LedgerHandler{txnSvc: txnSvc}
}

func (h *LedgerHandler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.txnSvc.Balances()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"cash":   balance.Cash.StringFixed(2),
		"wallet": balance.Wallet.StringFixed(2),
		"total":  balance.Total().StringFixed(2),
	})
}

type saleRequest struct {
	OccurredAt time.Time          `json:"occurred_at,omitempty"`
	Lines      []service.SaleLine `json:"lines"`
}

func (h *LedgerHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	user := UserFromContext(r.Context())
	recorded, err := h.txnSvc.RecordSale(r.Context(), user.Name, req.OccurredAt, req.Lines)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, recorded)
}

func (h *LedgerHandler) RecordEntry(w http.ResponseWriter, r *http.Request) {
	var draft service.EntryDraft
	if err := decodeBody(r, &draft); err != nil {
		respondError(w, err)
		return
	}
	draft.ActorName = UserFromContext(r.Context()).Name
	entry, err := h.txnSvc.RecordEntry(r.Context(), draft)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// filterFromQuery builds the history filter from start/end/type parameters.
// Dates arrive as YYYY-MM-DD civil dates, already in the business timezone.
func filterFromQuery(r *http.Request) ledger.Filter {
	q := r.URL.Query()
	return ledger.Filter{
		Start: q.Get("start"),
		End:   q.Get("end"),
		Type:  domain.EntryType(q.Get("type")),
	}
}

func (h *LedgerHandler) History(w http.ResponseWriter, r *http.Request) {
	entries := h.txnSvc.Filtered(filterFromQuery(r))
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *LedgerHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.txnSvc.ExportCSV(&buf, filterFromQuery(r)); err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="movements.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

type voidRequest struct {
	Justification string `json:"justification"`
}

func (h *LedgerHandler) Void(w http.ResponseWriter, r *http.Request) {
	var req voidRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	id := mux.Vars(r)["id"]
	if err := h.txnSvc.Void(r.Context(), id, req.Justification); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *LedgerHandler) Report(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.txnSvc.Report())
}
