package service

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/ledger"
	"pizzapos-backend/internal/logger"
	"pizzapos-backend/internal/repository"
)

type transactionService struct {
	entryRepo   repository.EntryRepository
	productRepo repository.ProductRepository
	loc         *time.Location

	// replica is the local copy of the entry collection, newest first.
	// Single writer (Refresh), many readers; swapped whole, never patched.
	replica atomic.Pointer[[]domain.LedgerEntry]

	// inFlight rejects a second mutating submission while one is pending.
	// It is released on every exit path, including cancellation.
	inFlight atomic.Bool
}

func NewTransactionService(entryRepo repository.EntryRepository, productRepo repository.ProductRepository, loc *time.Location) TransactionService {
	return &transactionService{
		entryRepo:   entryRepo,
		productRepo: productRepo,
		loc:         loc,
	}
}

func (s *transactionService) acquire() bool {
	return s.inFlight.CompareAndSwap(false, true)
}

func (s *transactionService) release() {
	s.inFlight.Store(false)
}

// RecordEntry submits one validated entry. The balance pre-check is advisory:
// a concurrent writer on another device can invalidate it between check and
// commit, and that race is accepted — the store is the backstop, not this
// process.
func (s *transactionService) RecordEntry(ctx context.Context, draft EntryDraft) (*domain.LedgerEntry, error) {
	if !s.acquire() {
		return nil, domain.ErrSubmissionInFlight
	}
	defer s.release()

	entry, err := s.buildEntry(draft)
	if err != nil {
		return nil, err
	}
	if err := s.precheckBalance(entry); err != nil {
		return nil, err
	}
	if err := s.entryRepo.Insert(ctx, entry); err != nil {
		return nil, err
	}
	if err := s.refresh(ctx); err != nil {
		// The write landed; surface the stale replica rather than the entry.
		return nil, err
	}
	return entry, nil
}

func (s *transactionService) RecordSale(ctx context.Context, actor string, occurredAt time.Time, lines []SaleLine) ([]domain.LedgerEntry, error) {
	if !s.acquire() {
		return nil, domain.ErrSubmissionInFlight
	}
	defer s.release()

	products, err := s.productRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	if occurredAt.IsZero() {
		occurredAt = time.Now().In(s.loc)
	}

	var recorded []domain.LedgerEntry
	for _, line := range lines {
		total := line.Cash.Add(line.Wallet)
		if !total.IsPositive() {
			continue
		}
		if line.Cash.IsNegative() || line.Wallet.IsNegative() {
			return nil, &domain.ValidationError{Field: "lines", Reason: "sale amounts cannot be negative"}
		}

		category := "SALE"
		if p, ok := byID[line.ProductID]; ok {
			category = p.Name
		}

		entry := &domain.LedgerEntry{
			Amount:      total,
			Type:        domain.EntryTypeIncome,
			Category:    category,
			Description: category,
			ActorName:   actor,
			OccurredAt:  occurredAt,
			Status:      domain.StatusActive,
		}
		switch {
		case line.Cash.IsPositive() && line.Wallet.IsPositive():
			entry.Method = domain.MethodMixed
			entry.Split = &domain.MethodSplit{Cash: line.Cash, Wallet: line.Wallet}
		case line.Wallet.IsPositive():
			entry.Method = domain.MethodWallet
		default:
			entry.Method = domain.MethodCash
		}

		if err := entry.Validate(); err != nil {
			return nil, err
		}
		if err := s.entryRepo.Insert(ctx, entry); err != nil {
			return nil, err
		}
		recorded = append(recorded, *entry)
	}

	if len(recorded) == 0 {
		return nil, &domain.ValidationError{Field: "lines", Reason: "no sale amounts entered"}
	}
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return recorded, nil
}

func (s *transactionService) Void(ctx context.Context, id, justification string) error {
	if strings.TrimSpace(justification) == "" {
		return &domain.ValidationError{Field: "justification", Reason: "justification is required to void an entry"}
	}
	if !s.acquire() {
		return domain.ErrSubmissionInFlight
	}
	defer s.release()

	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.Voided() {
		return domain.ErrIllegalTransition
	}
	if err := s.entryRepo.MarkVoided(ctx, id, justification); err != nil {
		return err
	}
	return s.refresh(ctx)
}

func (s *transactionService) Refresh(ctx context.Context) error {
	return s.refresh(ctx)
}

// refresh replaces the whole replica in one atomic swap; a concurrent reader
// sees either the old collection or the new one, never a mix.
func (s *transactionService) refresh(ctx context.Context) error {
	entries, err := s.entryRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	s.replica.Store(&entries)
	logger.Debug("Replica refreshed", "entries", len(entries))
	return nil
}

func (s *transactionService) Entries() []domain.LedgerEntry {
	if p := s.replica.Load(); p != nil {
		return *p
	}
	return nil
}

func (s *transactionService) Balances() (ledger.Balance, error) {
	return ledger.ComputeBalances(s.Entries())
}

func (s *transactionService) Filtered(f ledger.Filter) []domain.LedgerEntry {
	return ledger.Apply(s.Entries(), f, s.loc)
}

func (s *transactionService) Report() ledger.Report {
	return ledger.BuildReport(s.Entries())
}

func (s *transactionService) ExportCSV(w io.Writer, f ledger.Filter) error {
	return ledger.WriteCSV(w, s.Filtered(f), s.loc)
}

// buildEntry fills draft defaults and validates the result.
func (s *transactionService) buildEntry(draft EntryDraft) (*domain.LedgerEntry, error) {
	entry := &domain.LedgerEntry{
		Amount:      draft.Amount,
		Type:        draft.Type,
		Category:    draft.Category,
		Method:      draft.Method,
		Split:       draft.Split,
		Description: draft.Description,
		ActorName:   draft.ActorName,
		OccurredAt:  draft.OccurredAt,
		Status:      domain.StatusActive,
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().In(s.loc)
	} else {
		entry.OccurredAt = entry.OccurredAt.In(s.loc)
	}
	if entry.Description == "" {
		switch {
		case entry.Category == domain.CategoryCashToWallet:
			entry.Description = "Transfer from cash to wallet"
		case entry.Category == domain.CategoryWalletToCash:
			entry.Description = "Transfer from wallet to cash"
		case entry.Category != "":
			entry.Description = entry.Category
		}
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// precheckBalance refuses expenses and transfers that exceed the bucket they
// draw from, computed against the current replica.
func (s *transactionService) precheckBalance(entry *domain.LedgerEntry) error {
	if entry.Type != domain.EntryTypeExpense && entry.Type != domain.EntryTypeTransfer {
		return nil
	}
	balance, err := s.Balances()
	if err != nil {
		return err
	}

	if entry.Type == domain.EntryTypeTransfer {
		source := domain.MethodCash
		if entry.Category == domain.CategoryWalletToCash {
			source = domain.MethodWallet
		}
		if entry.Amount.GreaterThan(balance.Bucket(source)) {
			return domain.ErrInsufficientBalance
		}
		return nil
	}

	switch entry.Method {
	case domain.MethodMixed:
		if entry.Split.Cash.GreaterThan(balance.Cash) || entry.Split.Wallet.GreaterThan(balance.Wallet) {
			return domain.ErrInsufficientBalance
		}
	default:
		if entry.Amount.GreaterThan(balance.Bucket(entry.Method)) {
			return domain.ErrInsufficientBalance
		}
	}
	return nil
}
