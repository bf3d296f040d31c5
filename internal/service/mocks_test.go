package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pizzapos-backend/internal/domain"
)

type MockEntryRepo struct{ mock.Mock }

func (m *MockEntryRepo) Insert(ctx context.Context, e *domain.LedgerEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEntryRepo) ListAll(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockEntryRepo) GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockEntryRepo) MarkVoided(ctx context.Context, id, justification string) error {
	return m.Called(ctx, id, justification).Error(0)
}

func (m *MockEntryRepo) PurgeAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, u *domain.AppUser) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, u *domain.AppUser) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepo) List(ctx context.Context) ([]domain.AppUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AppUser), args.Error(1)
}

func (m *MockUserRepo) GetActiveByPIN(ctx context.Context, pin string) (*domain.AppUser, error) {
	args := m.Called(ctx, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppUser), args.Error(1)
}

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepo) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

type MockStockRepo struct{ mock.Mock }

func (m *MockStockRepo) Create(ctx context.Context, s *domain.StockItem) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStockRepo) Update(ctx context.Context, s *domain.StockItem) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStockRepo) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStockRepo) ListActive(ctx context.Context) ([]domain.StockItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockItem), args.Error(1)
}

type MockConfigRepo struct{ mock.Mock }

func (m *MockConfigRepo) Get(ctx context.Context) (*domain.AppConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppConfig), args.Error(1)
}

func (m *MockConfigRepo) Save(ctx context.Context, cfg *domain.AppConfig) error {
	return m.Called(ctx, cfg).Error(0)
}
