package repository

import (
	"context"

	"pizzapos-backend/internal/domain"
)

type EntryRepository interface {
	// Insert assigns the entry its identity and persists it. The entry must
	// already have passed validation.
	Insert(ctx context.Context, e *domain.LedgerEntry) error
	// ListAll returns every entry, newest first.
	ListAll(ctx context.Context) ([]domain.LedgerEntry, error)
	GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error)
	// MarkVoided applies the one-way ACTIVE -> VOIDED transition.
	MarkVoided(ctx context.Context, id, justification string) error
	// PurgeAll deletes every entry. Admin-gated; used by the reset flow only.
	PurgeAll(ctx context.Context) error
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.AppUser) error
	Update(ctx context.Context, u *domain.AppUser) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.AppUser, error)
	// GetActiveByPIN looks up an active user by exact PIN match.
	GetActiveByPIN(ctx context.Context, pin string) (*domain.AppUser, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Deactivate(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]domain.Product, error)
}

type StockRepository interface {
	Create(ctx context.Context, s *domain.StockItem) error
	Update(ctx context.Context, s *domain.StockItem) error
	Deactivate(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]domain.StockItem, error)
}

type ConfigRepository interface {
	Get(ctx context.Context) (*domain.AppConfig, error)
	// Save updates the singleton row, inserting it if none exists yet.
	Save(ctx context.Context, cfg *domain.AppConfig) error
}
