package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/service"
)

// NewRouter wires every handler behind the auth middleware and the per-module
// access gates. Login and session restore are the only open routes.
func NewRouter(authSvc service.AuthService, txnSvc service.TransactionService, adminSvc service.AdminService, backupSvc service.BackupService) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	ledgerHandler := NewLedgerHandler(txnSvc)
	adminHandler := NewAdminHandler(adminSvc, backupSvc)
	mw := NewMiddleware(authSvc)

	r := mux.NewRouter()
	r.HandleFunc("/api/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/session", authHandler.Session).Methods(http.MethodGet)
	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(mw.RequireUser)

	api.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Balance is shown on both the sales and cash screens; any signed-in
	// user may read it.
	api.HandleFunc("/balance", ledgerHandler.Balance).Methods(http.MethodGet)

	api.HandleFunc("/sales",
		mw.RequireModule(domain.ModuleSales, ledgerHandler.RecordSale)).Methods(http.MethodPost)
	api.HandleFunc("/products",
		mw.RequireModule(domain.ModuleSales, adminHandler.ListProducts)).Methods(http.MethodGet)

	api.HandleFunc("/entries",
		mw.RequireModule(domain.ModuleCash, ledgerHandler.RecordEntry)).Methods(http.MethodPost)

	api.HandleFunc("/entries",
		mw.RequireModule(domain.ModuleHistory, ledgerHandler.History)).Methods(http.MethodGet)
	api.HandleFunc("/entries/export",
		mw.RequireModule(domain.ModuleHistory, ledgerHandler.Export)).Methods(http.MethodGet)
	api.HandleFunc("/entries/{id}/void",
		mw.RequireModule(domain.ModuleHistory, ledgerHandler.Void)).Methods(http.MethodPost)

	api.HandleFunc("/report",
		mw.RequireModule(domain.ModuleReports, ledgerHandler.Report)).Methods(http.MethodGet)

	api.HandleFunc("/stock",
		mw.RequireModule(domain.ModuleStock, adminHandler.ListStockItems)).Methods(http.MethodGet)
	api.HandleFunc("/stock/request",
		mw.RequireModule(domain.ModuleStock, adminHandler.StockRequest)).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	gate := func(h http.HandlerFunc) http.HandlerFunc {
		return mw.RequireModule(domain.ModuleAdmin, h)
	}

	admin.HandleFunc("/products", gate(adminHandler.CreateProduct)).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", gate(adminHandler.UpdateProduct)).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", gate(adminHandler.DeactivateProduct)).Methods(http.MethodDelete)

	admin.HandleFunc("/stock", gate(adminHandler.CreateStockItem)).Methods(http.MethodPost)
	admin.HandleFunc("/stock/{id}", gate(adminHandler.UpdateStockItem)).Methods(http.MethodPut)
	admin.HandleFunc("/stock/{id}", gate(adminHandler.DeactivateStockItem)).Methods(http.MethodDelete)

	admin.HandleFunc("/users", gate(adminHandler.ListUsers)).Methods(http.MethodGet)
	admin.HandleFunc("/users", gate(adminHandler.CreateUser)).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", gate(adminHandler.UpdateUser)).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", gate(adminHandler.DeactivateUser)).Methods(http.MethodDelete)

	admin.HandleFunc("/config", gate(adminHandler.GetConfig)).Methods(http.MethodGet)
	admin.HandleFunc("/config", gate(adminHandler.UpdateConfig)).Methods(http.MethodPut)

	admin.HandleFunc("/markers", gate(adminHandler.RecordMarker)).Methods(http.MethodPost)

	admin.HandleFunc("/backup", gate(adminHandler.DownloadBackup)).Methods(http.MethodGet)
	admin.HandleFunc("/backup/telegram", gate(adminHandler.SendBackupToTelegram)).Methods(http.MethodPost)
	admin.HandleFunc("/restore", gate(adminHandler.Restore)).Methods(http.MethodPost)
	admin.HandleFunc("/entries", gate(adminHandler.PurgeEntries)).Methods(http.MethodDelete)

	return r
}
