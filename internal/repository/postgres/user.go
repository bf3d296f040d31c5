package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.AppUser) error {
	u.ID = uuid.NewString()
	query := `INSERT INTO app_users (id, name, pin, role, is_active, allowed_modules)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.PIN, u.Role, u.IsActive, pq.Array(moduleStrings(u.AllowedModules)))
	if err != nil {
		return &domain.StoreError{Op: "create user", Err: err}
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.AppUser) error {
	query := `UPDATE app_users SET name = $1, pin = $2, role = $3, is_active = $4, allowed_modules = $5 WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query, u.Name, u.PIN, u.Role, u.IsActive, pq.Array(moduleStrings(u.AllowedModules)), u.ID)
	if err != nil {
		return &domain.StoreError{Op: "update user", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE app_users SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return &domain.StoreError{Op: "deactivate user", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.AppUser, error) {
	query := `SELECT id, name, pin, role, is_active, allowed_modules FROM app_users ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &domain.StoreError{Op: "list users", Err: err}
	}
	defer rows.Close()

	var users []domain.AppUser
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, &domain.StoreError{Op: "scan user", Err: err}
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list users", Err: err}
	}
	return users, nil
}

func (r *userRepository) GetActiveByPIN(ctx context.Context, pin string) (*domain.AppUser, error) {
	query := `SELECT id, name, pin, role, is_active, allowed_modules
		FROM app_users WHERE pin = $1 AND is_active = true`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, pin))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "get user by pin", Err: err}
	}
	return u, nil
}

func scanUser(row rowScanner) (*domain.AppUser, error) {
	var u domain.AppUser
	var modules pq.StringArray
	if err := row.Scan(&u.ID, &u.Name, &u.PIN, &u.Role, &u.IsActive, &modules); err != nil {
		return nil, err
	}
	u.AllowedModules = make([]domain.Module, 0, len(modules))
	for _, m := range modules {
		u.AllowedModules = append(u.AllowedModules, domain.Module(m))
	}
	return &u, nil
}

func moduleStrings(modules []domain.Module) []string {
	out := make([]string, 0, len(modules))
	for _, m := range modules {
		out = append(out, string(m))
	}
	return out
}
