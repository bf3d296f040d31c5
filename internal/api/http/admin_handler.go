package http

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/logger"
	"pizzapos-backend/internal/service"
)

// AdminHandler serves catalog management, user management, app config,
// shift markers and the backup endpoints.
type AdminHandler struct {
	adminSvc  service.AdminService
	backupSvc service.BackupService
}

func NewAdminHandler(adminSvc service.AdminService, backupSvc service.BackupService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, backupSvc: backupSvc}
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.adminSvc.ListProducts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := decodeBody(r, &p); err != nil {
		respondError(w, err)
		return
	}
	if err := h.adminSvc.CreateProduct(r.Context(), &p); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := decodeBody(r, &p); err != nil {
		respondError(w, err)
		return
	}
	p.ID = mux.Vars(r)["id"]
	if err := h.adminSvc.UpdateProduct(r.Context(), &p); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *AdminHandler) DeactivateProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.adminSvc.DeactivateProduct(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) ListStockItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.adminSvc.ListStockItems(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *AdminHandler) CreateStockItem(w http.ResponseWriter, r *http.Request) {
	var item domain.StockItem
	if err := decodeBody(r, &item); err != nil {
		respondError(w, err)
		return
	}
	if err := h.adminSvc.CreateStockItem(r.Context(), &item); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *AdminHandler) UpdateStockItem(w http.ResponseWriter, r *http.Request) {
	var item domain.StockItem
	if err := decodeBody(r, &item); err != nil {
		respondError(w, err)
		return
	}
	item.ID = mux.Vars(r)["id"]
	if err := h.adminSvc.UpdateStockItem(r.Context(), &item); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *AdminHandler) DeactivateStockItem(w http.ResponseWriter, r *http.Request) {
	if err := h.adminSvc.DeactivateStockItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type stockRequestBody struct {
	Items []string `json:"items"`
}

func (h *AdminHandler) StockRequest(w http.ResponseWriter, r *http.Request) {
	var req stockRequestBody
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	message, err := h.adminSvc.StockRequestMessage(r.Context(), req.Items)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminSvc.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, viewOf(&users[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var u domain.AppUser
	if err := decodeBody(r, &u); err != nil {
		respondError(w, err)
		return
	}
	if err := h.adminSvc.CreateUser(r.Context(), &u); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, viewOf(&u))
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var u domain.AppUser
	if err := decodeBody(r, &u); err != nil {
		respondError(w, err)
		return
	}
	u.ID = mux.Vars(r)["id"]
	if err := h.adminSvc.UpdateUser(r.Context(), &u); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(&u))
}

func (h *AdminHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	if err := h.adminSvc.DeactivateUser(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.adminSvc.GetConfig(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

func (h *AdminHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.AppConfig
	if err := decodeBody(r, &cfg); err != nil {
		respondError(w, err)
		return
	}
	if err := h.adminSvc.UpdateConfig(r.Context(), &cfg); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

type markerRequest struct {
	Type domain.EntryType `json:"type"`
}

func (h *AdminHandler) RecordMarker(w http.ResponseWriter, r *http.Request) {
	var req markerRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	user := UserFromContext(r.Context())
	if err := h.adminSvc.RecordMarker(r.Context(), req.Type, user.Name); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, nil)
}

func (h *AdminHandler) DownloadBackup(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.backupSvc.Snapshot(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="backup.json"`)
	respondJSON(w, http.StatusOK, snapshot)
}

func (h *AdminHandler) SendBackupToTelegram(w http.ResponseWriter, r *http.Request) {
	if err := h.backupSvc.SendToTelegram(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

func (h *AdminHandler) Restore(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, &domain.ValidationError{Field: "body", Reason: "could not read backup payload"})
		return
	}
	if err := h.backupSvc.Restore(r.Context(), data); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

// PurgeEntries wipes the ledger. Deliberately admin-gated and logged; there
// is no undo.
func (h *AdminHandler) PurgeEntries(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if err := h.adminSvc.PurgeEntries(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	logger.Warn("Ledger purged", "by", user.Name)
	respondJSON(w, http.StatusNoContent, nil)
}
