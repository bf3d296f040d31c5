package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	p.ID = uuid.NewString()
	query := `INSERT INTO products (id, name, price, color, is_active) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Price, p.Color, p.IsActive); err != nil {
		return &domain.StoreError{Op: "create product", Err: err}
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET name = $1, price = $2, color = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.Price, p.Color, p.ID)
	if err != nil {
		return &domain.StoreError{Op: "update product", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE products SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return &domain.StoreError{Op: "deactivate product", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, price, color, is_active FROM products WHERE is_active = true ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &domain.StoreError{Op: "list products", Err: err}
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Color, &p.IsActive); err != nil {
			return nil, &domain.StoreError{Op: "scan product", Err: err}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list products", Err: err}
	}
	return products, nil
}

type stockRepository struct {
	db *sql.DB
}

func NewStockRepository(db *sql.DB) repository.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) Create(ctx context.Context, s *domain.StockItem) error {
	s.ID = uuid.NewString()
	query := `INSERT INTO stock_items (id, name, priority, is_active) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Priority, s.IsActive); err != nil {
		return &domain.StoreError{Op: "create stock item", Err: err}
	}
	return nil
}

func (r *stockRepository) Update(ctx context.Context, s *domain.StockItem) error {
	query := `UPDATE stock_items SET name = $1, priority = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, s.Name, s.Priority, s.ID)
	if err != nil {
		return &domain.StoreError{Op: "update stock item", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *stockRepository) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE stock_items SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return &domain.StoreError{Op: "deactivate stock item", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *stockRepository) ListActive(ctx context.Context) ([]domain.StockItem, error) {
	query := `SELECT id, name, priority, is_active FROM stock_items WHERE is_active = true ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &domain.StoreError{Op: "list stock items", Err: err}
	}
	defer rows.Close()

	var items []domain.StockItem
	for rows.Next() {
		var s domain.StockItem
		if err := rows.Scan(&s.ID, &s.Name, &s.Priority, &s.IsActive); err != nil {
			return nil, &domain.StoreError{Op: "scan stock item", Err: err}
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list stock items", Err: err}
	}
	return items, nil
}

type configRepository struct {
	db *sql.DB
}

func NewConfigRepository(db *sql.DB) repository.ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) Get(ctx context.Context) (*domain.AppConfig, error) {
	query := `SELECT id, business_name, COALESCE(telegram_token, ''), COALESCE(telegram_chat_id, '')
		FROM app_config LIMIT 1`
	var cfg domain.AppConfig
	err := r.db.QueryRowContext(ctx, query).Scan(&cfg.ID, &cfg.BusinessName, &cfg.TelegramToken, &cfg.TelegramChatID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "get config", Err: err}
	}
	return &cfg, nil
}

func (r *configRepository) Save(ctx context.Context, cfg *domain.AppConfig) error {
	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing == nil {
		cfg.ID = uuid.NewString()
		query := `INSERT INTO app_config (id, business_name, telegram_token, telegram_chat_id) VALUES ($1, $2, $3, $4)`
		if _, err := r.db.ExecContext(ctx, query, cfg.ID, cfg.BusinessName, cfg.TelegramToken, cfg.TelegramChatID); err != nil {
			return &domain.StoreError{Op: "insert config", Err: err}
		}
		return nil
	}
	cfg.ID = existing.ID
	query := `UPDATE app_config SET business_name = $1, telegram_token = $2, telegram_chat_id = $3 WHERE id = $4`
	if _, err := r.db.ExecContext(ctx, query, cfg.BusinessName, cfg.TelegramToken, cfg.TelegramChatID, cfg.ID); err != nil {
		return &domain.StoreError{Op: "update config", Err: err}
	}
	return nil
}
