// Package ledger holds the pure money math of the POS: the balance reducer,
// the history window filter, shift reporting and the export formatter. All
// functions operate on an entry slice without mutating it; mutation goes back
// through the store.
package ledger

import (
	"github.com/shopspring/decimal"

	"pizzapos-backend/internal/domain"
)

// Balance is the split of money across the two tracked buckets.
type Balance struct {
	Cash   decimal.Decimal `json:"cash"`
	Wallet decimal.Decimal `json:"wallet"`
}

// Total is the monetary mass across both buckets. It changes only through
// INCOME and EXPENSE entries; transfers leave it untouched.
func (b Balance) Total() decimal.Decimal {
	return b.Cash.Add(b.Wallet)
}

// Bucket returns the balance of the bucket a CASH or WALLET method draws from.
func (b Balance) Bucket(m domain.PayMethod) decimal.Decimal {
	if m == domain.MethodWallet {
		return b.Wallet
	}
	return b.Cash
}

// ComputeBalances folds the entries into split cash/wallet balances. Voided
// entries are skipped entirely and shift markers have no effect. The fold is
// commutative, so input order does not matter. A type/method combination the
// reducer does not recognize is a modeling defect and fails loudly with an
// *domain.InvariantViolation instead of silently defaulting.
func ComputeBalances(entries []domain.LedgerEntry) (Balance, error) {
	var b Balance
	b.Cash = decimal.Zero
	b.Wallet = decimal.Zero

	for i := range entries {
		e := &entries[i]
		if e.Voided() {
			continue
		}
		switch e.Type {
		case domain.EntryTypeIncome:
			if err := apply(&b, e, decimal.NewFromInt(1)); err != nil {
				return Balance{}, err
			}
		case domain.EntryTypeExpense:
			if err := apply(&b, e, decimal.NewFromInt(-1)); err != nil {
				return Balance{}, err
			}
		case domain.EntryTypeTransfer:
			switch e.Category {
			case domain.CategoryCashToWallet:
				b.Cash = b.Cash.Sub(e.Amount)
				b.Wallet = b.Wallet.Add(e.Amount)
			case domain.CategoryWalletToCash:
				b.Wallet = b.Wallet.Sub(e.Amount)
				b.Cash = b.Cash.Add(e.Amount)
			default:
				return Balance{}, &domain.InvariantViolation{EntryID: e.ID, Detail: "transfer without directional category"}
			}
		case domain.EntryTypeOpenShift, domain.EntryTypeCloseShift, domain.EntryTypeDayZero:
			// Markers delimit reporting periods; no balance effect.
		default:
			return Balance{}, &domain.InvariantViolation{EntryID: e.ID, Detail: "unknown entry type " + string(e.Type)}
		}
	}
	return b, nil
}

// apply adds sign*amount to the buckets an INCOME or EXPENSE entry touches.
// Expenses are never MIXED under current category rules but are handled
// symmetrically in case one is ever encountered.
func apply(b *Balance, e *domain.LedgerEntry, sign decimal.Decimal) error {
	switch e.Method {
	case domain.MethodCash:
		b.Cash = b.Cash.Add(e.Amount.Mul(sign))
	case domain.MethodWallet:
		b.Wallet = b.Wallet.Add(e.Amount.Mul(sign))
	case domain.MethodMixed:
		if e.Split == nil {
			return &domain.InvariantViolation{EntryID: e.ID, Detail: "MIXED entry without a split"}
		}
		b.Cash = b.Cash.Add(e.Split.Cash.Mul(sign))
		b.Wallet = b.Wallet.Add(e.Split.Wallet.Mul(sign))
	default:
		return &domain.InvariantViolation{EntryID: e.ID, Detail: "unknown method " + string(e.Method)}
	}
	return nil
}
