package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pizzapos-backend/internal/domain"
)

type adminFixture struct {
	productRepo *MockProductRepo
	stockRepo   *MockStockRepo
	userRepo    *MockUserRepo
	configRepo  *MockConfigRepo
	entryRepo   *MockEntryRepo
	txnSvc      TransactionService
	svc         AdminService
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	f := &adminFixture{
		productRepo: new(MockProductRepo),
		stockRepo:   new(MockStockRepo),
		userRepo:    new(MockUserRepo),
		configRepo:  new(MockConfigRepo),
		entryRepo:   new(MockEntryRepo),
	}
	f.txnSvc = NewTransactionService(f.entryRepo, f.productRepo, testLoc)
	f.svc = NewAdminService(f.productRepo, f.stockRepo, f.userRepo, f.configRepo, f.entryRepo, f.txnSvc)
	return f
}

func TestAdminService_CreateProduct(t *testing.T) {
	f := newAdminFixture(t)

	f.productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.IsActive
	})).Return(nil).Once()

	p := &domain.Product{Name: "PEPPERONI", Price: decimal.NewFromInt(25)}
	require.NoError(t, f.svc.CreateProduct(context.Background(), p))
	f.productRepo.AssertExpectations(t)
}

func TestAdminService_CreateProduct_Invalid(t *testing.T) {
	f := newAdminFixture(t)

	err := f.svc.CreateProduct(context.Background(), &domain.Product{Name: ""})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	f.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminService_CreateStockItem_Defaults(t *testing.T) {
	f := newAdminFixture(t)

	f.stockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.StockItem) bool {
		return s.IsActive && s.Priority == domain.PrioritySupply
	})).Return(nil).Once()

	require.NoError(t, f.svc.CreateStockItem(context.Background(), &domain.StockItem{Name: "Mozzarella"}))
	f.stockRepo.AssertExpectations(t)
}

func TestAdminService_CreateUser_Defaults(t *testing.T) {
	f := newAdminFixture(t)

	f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.AppUser) bool {
		return u.IsActive && u.Role == domain.RoleEmployee
	})).Return(nil).Once()

	u := &domain.AppUser{Name: "Maria", PIN: "4821"}
	require.NoError(t, f.svc.CreateUser(context.Background(), u))
	f.userRepo.AssertExpectations(t)
}

func TestAdminService_StockRequestMessage(t *testing.T) {
	f := newAdminFixture(t)

	items := []domain.StockItem{
		{ID: "s1", Name: "Mozzarella", IsActive: true},
		{ID: "s2", Name: "Flour", IsActive: true},
	}

	t.Run("RendersKnownItems", func(t *testing.T) {
		f.stockRepo.On("ListActive", mock.Anything).Return(items, nil).Once()
		msg, err := f.svc.StockRequestMessage(context.Background(), []string{"Mozzarella", "Anchovies"})
		require.NoError(t, err)
		assert.Contains(t, msg, "*STOCK REQUEST*")
		assert.Contains(t, msg, "- Mozzarella")
		assert.NotContains(t, msg, "Anchovies")
	})

	t.Run("EmptySelection", func(t *testing.T) {
		_, err := f.svc.StockRequestMessage(context.Background(), nil)
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("OnlyUnknownItems", func(t *testing.T) {
		f.stockRepo.On("ListActive", mock.Anything).Return(items, nil).Once()
		_, err := f.svc.StockRequestMessage(context.Background(), []string{"Anchovies"})
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestAdminService_UpdateConfig(t *testing.T) {
	f := newAdminFixture(t)

	t.Run("RequiresBusinessName", func(t *testing.T) {
		err := f.svc.UpdateConfig(context.Background(), &domain.AppConfig{BusinessName: "  "})
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("Saves", func(t *testing.T) {
		cfg := &domain.AppConfig{BusinessName: "Pizza Brava"}
		f.configRepo.On("Save", mock.Anything, cfg).Return(nil).Once()
		require.NoError(t, f.svc.UpdateConfig(context.Background(), cfg))
	})
}

func TestAdminService_RecordMarker(t *testing.T) {
	t.Run("RejectsNonMarkerTypes", func(t *testing.T) {
		f := newAdminFixture(t)
		err := f.svc.RecordMarker(context.Background(), domain.EntryTypeIncome, "Maria")
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
		f.entryRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("RecordsCloseShift", func(t *testing.T) {
		f := newAdminFixture(t)
		f.entryRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e.Type == domain.EntryTypeCloseShift &&
				e.Amount.IsZero() &&
				e.Description == "Manual: CLOSE_SHIFT" &&
				e.ActorName == "Maria"
		})).Return(nil).Once()
		f.entryRepo.On("ListAll", mock.Anything).Return([]domain.LedgerEntry{}, nil).Once()

		require.NoError(t, f.svc.RecordMarker(context.Background(), domain.EntryTypeCloseShift, "Maria"))
		f.entryRepo.AssertExpectations(t)
	})
}

func TestAdminService_PurgeEntries(t *testing.T) {
	f := newAdminFixture(t)

	f.entryRepo.On("PurgeAll", mock.Anything).Return(nil).Once()
	f.entryRepo.On("ListAll", mock.Anything).Return([]domain.LedgerEntry{}, nil).Once()

	require.NoError(t, f.svc.PurgeEntries(context.Background()))
	assert.Empty(t, f.txnSvc.Entries(), "replica refreshed after purge")
	f.entryRepo.AssertExpectations(t)
}
