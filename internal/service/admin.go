package service

import (
	"context"
	"fmt"
	"strings"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/repository"
)

type adminService struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	userRepo    repository.UserRepository
	configRepo  repository.ConfigRepository
	entryRepo   repository.EntryRepository
	txnSvc      TransactionService
}

func NewAdminService(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	userRepo repository.UserRepository,
	configRepo repository.ConfigRepository,
	entryRepo repository.EntryRepository,
	txnSvc TransactionService,
) AdminService {
	return &adminService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		userRepo:    userRepo,
		configRepo:  configRepo,
		entryRepo:   entryRepo,
		txnSvc:      txnSvc,
	}
}

func (s *adminService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListActive(ctx)
}

func (s *adminService) CreateProduct(ctx context.Context, p *domain.Product) error {
	p.IsActive = true
	if err := p.Validate(); err != nil {
		return err
	}
	return s.productRepo.Create(ctx, p)
}

func (s *adminService) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.productRepo.Update(ctx, p)
}

func (s *adminService) DeactivateProduct(ctx context.Context, id string) error {
	return s.productRepo.Deactivate(ctx, id)
}

func (s *adminService) ListStockItems(ctx context.Context) ([]domain.StockItem, error) {
	return s.stockRepo.ListActive(ctx)
}

func (s *adminService) CreateStockItem(ctx context.Context, item *domain.StockItem) error {
	item.IsActive = true
	if item.Priority == "" {
		item.Priority = domain.PrioritySupply
	}
	if err := item.Validate(); err != nil {
		return err
	}
	return s.stockRepo.Create(ctx, item)
}

func (s *adminService) UpdateStockItem(ctx context.Context, item *domain.StockItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return s.stockRepo.Update(ctx, item)
}

func (s *adminService) DeactivateStockItem(ctx context.Context, id string) error {
	return s.stockRepo.Deactivate(ctx, id)
}

// StockRequestMessage renders the supply request for the named items. Names
// not on the active list are skipped rather than rejected; the list on the
// device can lag behind an admin edit.
func (s *adminService) StockRequestMessage(ctx context.Context, names []string) (string, error) {
	if len(names) == 0 {
		return "", &domain.ValidationError{Field: "items", Reason: "select at least one item"}
	}
	items, err := s.stockRepo.ListActive(ctx)
	if err != nil {
		return "", err
	}
	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.Name] = true
	}

	var b strings.Builder
	b.WriteString("*STOCK REQUEST*\n\nUrgently needed:\n")
	selected := 0
	for _, name := range names {
		if !known[name] {
			continue
		}
		fmt.Fprintf(&b, "- %s\n", name)
		selected++
	}
	if selected == 0 {
		return "", &domain.ValidationError{Field: "items", Reason: "no known items selected"}
	}
	return b.String(), nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.AppUser, error) {
	return s.userRepo.List(ctx)
}

func (s *adminService) CreateUser(ctx context.Context, u *domain.AppUser) error {
	u.IsActive = true
	if u.Role == "" {
		u.Role = domain.RoleEmployee
	}
	if err := u.Validate(); err != nil {
		return err
	}
	return s.userRepo.Create(ctx, u)
}

func (s *adminService) UpdateUser(ctx context.Context, u *domain.AppUser) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, u)
}

func (s *adminService) DeactivateUser(ctx context.Context, id string) error {
	return s.userRepo.Deactivate(ctx, id)
}

func (s *adminService) GetConfig(ctx context.Context) (*domain.AppConfig, error) {
	return s.configRepo.Get(ctx)
}

func (s *adminService) UpdateConfig(ctx context.Context, cfg *domain.AppConfig) error {
	if strings.TrimSpace(cfg.BusinessName) == "" {
		return &domain.ValidationError{Field: "business_name", Reason: "business name is required"}
	}
	return s.configRepo.Save(ctx, cfg)
}

func (s *adminService) RecordMarker(ctx context.Context, t domain.EntryType, actor string) error {
	switch t {
	case domain.EntryTypeOpenShift, domain.EntryTypeCloseShift, domain.EntryTypeDayZero:
	default:
		return &domain.ValidationError{Field: "type", Reason: "not a shift marker type"}
	}
	_, err := s.txnSvc.RecordEntry(ctx, EntryDraft{
		Type:        t,
		Description: "Manual: " + string(t),
		ActorName:   actor,
	})
	return err
}

func (s *adminService) PurgeEntries(ctx context.Context) error {
	if err := s.entryRepo.PurgeAll(ctx); err != nil {
		return err
	}
	return s.txnSvc.Refresh(ctx)
}
