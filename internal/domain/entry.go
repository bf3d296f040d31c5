package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryTypeIncome     EntryType = "INCOME"
	EntryTypeExpense    EntryType = "EXPENSE"
	EntryTypeTransfer   EntryType = "TRANSFER"
	EntryTypeOpenShift  EntryType = "OPEN_SHIFT"
	EntryTypeCloseShift EntryType = "CLOSE_SHIFT"
	EntryTypeDayZero    EntryType = "DAY_ZERO"
)

// FilterVoided is a pseudo-type accepted by history filters: it selects voided
// entries regardless of their type. It is never stored on an entry.
const FilterVoided EntryType = "VOIDED"

type PayMethod string

const (
	MethodCash   PayMethod = "CASH"
	MethodWallet PayMethod = "WALLET"
	MethodMixed  PayMethod = "MIXED"
)

type EntryStatus string

const (
	StatusActive EntryStatus = "ACTIVE"
	StatusVoided EntryStatus = "VOIDED"
)

// Directional sentinels used as the category of TRANSFER entries.
const (
	CategoryCashToWallet = "CASH_TO_WALLET"
	CategoryWalletToCash = "WALLET_TO_CASH"
)

// Categories that require a non-empty description.
const (
	CategoryOther     = "OTHER"
	CategoryExtraSale = "EXTRA_SALE"
)

// Suggested categories offered by the cash screen. Free-form values are still
// accepted for INCOME entries recorded from product sales.
var (
	ExpenseCategories = []string{"SUPPLIES", "LOGISTICS", "STAFF", "SERVICES", CategoryOther}
	IncomeCategories  = []string{CategoryExtraSale, "CAPITAL", "REFUND", CategoryOther}
)

// MethodSplit carries the cash/wallet sub-amounts of a MIXED payment.
type MethodSplit struct {
	Cash   decimal.Decimal `json:"cash"`
	Wallet decimal.Decimal `json:"wallet"`
}

// LedgerEntry is one recorded money movement. The store assigns ID on insert;
// every other field is immutable apart from the one-way ACTIVE -> VOIDED
// transition, which also sets VoidJustification.
type LedgerEntry struct {
	ID                string          `json:"id"`
	Amount            decimal.Decimal `json:"amount"`
	Type              EntryType       `json:"type"`
	Category          string          `json:"category"`
	Method            PayMethod       `json:"method"`
	Split             *MethodSplit    `json:"method_split,omitempty"`
	Description       string          `json:"description"`
	ActorName         string          `json:"actor_name"`
	OccurredAt        time.Time       `json:"occurred_at"`
	Status            EntryStatus     `json:"status"`
	VoidJustification string          `json:"void_justification,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// IsMarker reports whether the entry is a zero-amount shift marker.
func (e *LedgerEntry) IsMarker() bool {
	switch e.Type {
	case EntryTypeOpenShift, EntryTypeCloseShift, EntryTypeDayZero:
		return true
	}
	return false
}

// Voided reports whether the entry is excluded from every aggregate.
func (e *LedgerEntry) Voided() bool {
	return e.Status == StatusVoided
}

// MovesMoney reports whether the entry type participates in balance math.
func (e *LedgerEntry) MovesMoney() bool {
	switch e.Type {
	case EntryTypeIncome, EntryTypeExpense, EntryTypeTransfer:
		return true
	}
	return false
}

// Validate checks every construction invariant and returns a *ValidationError
// on the first violation. Entries must pass validation before they reach the
// store.
func (e *LedgerEntry) Validate() error {
	switch e.Type {
	case EntryTypeIncome, EntryTypeExpense, EntryTypeTransfer,
		EntryTypeOpenShift, EntryTypeCloseShift, EntryTypeDayZero:
	default:
		return &ValidationError{Field: "type", Reason: "unknown entry type " + string(e.Type)}
	}

	if e.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "amount cannot be negative"}
	}
	if e.IsMarker() {
		if !e.Amount.IsZero() {
			return &ValidationError{Field: "amount", Reason: "shift markers must carry a zero amount"}
		}
	} else if !e.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "amount must be greater than zero"}
	}

	if e.MovesMoney() {
		switch e.Method {
		case MethodCash, MethodWallet, MethodMixed:
		default:
			return &ValidationError{Field: "method", Reason: "method is required for " + string(e.Type)}
		}
	}

	if e.Method == MethodMixed && e.MovesMoney() {
		if e.Split == nil {
			return &ValidationError{Field: "method_split", Reason: "MIXED entries require a cash/wallet split"}
		}
		if e.Split.Cash.IsNegative() || e.Split.Wallet.IsNegative() {
			return &ValidationError{Field: "method_split", Reason: "split amounts cannot be negative"}
		}
		if !e.Split.Cash.Add(e.Split.Wallet).Equal(e.Amount) {
			return &ValidationError{Field: "method_split", Reason: "split does not add up to the entry amount"}
		}
	} else if e.Split != nil {
		return &ValidationError{Field: "method_split", Reason: "split is only valid for MIXED entries"}
	}

	if e.Type == EntryTypeTransfer {
		if e.Category != CategoryCashToWallet && e.Category != CategoryWalletToCash {
			return &ValidationError{Field: "category", Reason: "transfers must use a directional category"}
		}
	}

	if (e.Category == CategoryOther || e.Category == CategoryExtraSale) && strings.TrimSpace(e.Description) == "" {
		return &ValidationError{Field: "description", Reason: "description is required for category " + e.Category}
	}

	if e.OccurredAt.IsZero() {
		return &ValidationError{Field: "occurred_at", Reason: "timestamp is required"}
	}

	switch e.Status {
	case StatusActive:
		if e.VoidJustification != "" {
			return &ValidationError{Field: "void_justification", Reason: "active entries cannot carry a justification"}
		}
	case StatusVoided:
		if strings.TrimSpace(e.VoidJustification) == "" {
			return &ValidationError{Field: "void_justification", Reason: "voided entries require a justification"}
		}
	default:
		return &ValidationError{Field: "status", Reason: "unknown status " + string(e.Status)}
	}

	return nil
}
