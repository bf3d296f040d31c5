package service

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/ledger"
)

// EntryDraft is the caller-supplied part of a ledger entry. The transaction
// service fills in defaults, validates and assigns identity via the store.
type EntryDraft struct {
	Amount      decimal.Decimal     `json:"amount"`
	Type        domain.EntryType    `json:"type"`
	Category    string              `json:"category"`
	Method      domain.PayMethod    `json:"method"`
	Split       *domain.MethodSplit `json:"method_split,omitempty"`
	Description string              `json:"description"`
	ActorName   string              `json:"actor_name"`
	OccurredAt  time.Time           `json:"occurred_at,omitempty"`
}

// SaleLine is one product row on the sales screen: how much of it was paid in
// cash and how much through the wallet.
type SaleLine struct {
	ProductID string          `json:"product_id"`
	Cash      decimal.Decimal `json:"cash"`
	Wallet    decimal.Decimal `json:"wallet"`
}

type TransactionService interface {
	// RecordEntry validates the draft, runs the advisory balance pre-check,
	// submits to the store and refreshes the replica before returning.
	RecordEntry(ctx context.Context, draft EntryDraft) (*domain.LedgerEntry, error)
	// RecordSale appends one INCOME entry per non-empty sale line, deriving
	// the method (and split) from the cash/wallet amounts.
	RecordSale(ctx context.Context, actor string, occurredAt time.Time, lines []SaleLine) ([]domain.LedgerEntry, error)
	// Void applies the one-way ACTIVE -> VOIDED transition with a mandatory
	// justification.
	Void(ctx context.Context, id, justification string) error
	// Refresh re-pulls the full entry collection and swaps the replica
	// atomically. Safe to call redundantly; the change feed relies on that.
	Refresh(ctx context.Context) error

	Entries() []domain.LedgerEntry
	Balances() (ledger.Balance, error)
	Filtered(f ledger.Filter) []domain.LedgerEntry
	Report() ledger.Report
	ExportCSV(w io.Writer, f ledger.Filter) error
}

type AuthService interface {
	// Login resolves a PIN to an active user, persists the session slot and
	// issues an API token. Failures carry no detail about which part of the
	// credential was wrong.
	Login(ctx context.Context, pin string) (*domain.AppUser, string, error)
	Logout() error
	// CurrentSession returns the restored or most recent session, nil when
	// logged out.
	CurrentSession() *domain.Session
	VerifyToken(token string) (*domain.AppUser, error)
}

type AdminService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeactivateProduct(ctx context.Context, id string) error

	ListStockItems(ctx context.Context) ([]domain.StockItem, error)
	CreateStockItem(ctx context.Context, s *domain.StockItem) error
	UpdateStockItem(ctx context.Context, s *domain.StockItem) error
	DeactivateStockItem(ctx context.Context, id string) error
	// StockRequestMessage renders the "needed items" text for the named
	// items; sending it anywhere is the caller's business.
	StockRequestMessage(ctx context.Context, names []string) (string, error)

	ListUsers(ctx context.Context) ([]domain.AppUser, error)
	CreateUser(ctx context.Context, u *domain.AppUser) error
	UpdateUser(ctx context.Context, u *domain.AppUser) error
	DeactivateUser(ctx context.Context, id string) error

	GetConfig(ctx context.Context) (*domain.AppConfig, error)
	UpdateConfig(ctx context.Context, cfg *domain.AppConfig) error

	// RecordMarker appends a zero-amount OPEN_SHIFT/CLOSE_SHIFT/DAY_ZERO entry.
	RecordMarker(ctx context.Context, t domain.EntryType, actor string) error
	// PurgeEntries deletes the whole ledger. Admin module gate applies.
	PurgeEntries(ctx context.Context) error
}

type BackupService interface {
	Snapshot(ctx context.Context) (*Backup, error)
	// SendToTelegram uploads the snapshot as a bot document to the chat
	// configured in app_config.
	SendToTelegram(ctx context.Context) error
	Restore(ctx context.Context, data []byte) error
}
