// Package postgres implements the store boundary on PostgreSQL via
// database/sql and lib/pq. The database is the single source of truth; the
// process only ever holds a read replica of what lives here.
package postgres

import (
	"database/sql"

	"pizzapos-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.EntryRepository
	repository.UserRepository
	repository.ProductRepository
	repository.StockRepository
	repository.ConfigRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		EntryRepository:   NewEntryRepository(db),
		UserRepository:    NewUserRepository(db),
		ProductRepository: NewProductRepository(db),
		StockRepository:   NewStockRepository(db),
		ConfigRepository:  NewConfigRepository(db),
	}
}
