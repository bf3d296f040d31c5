package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pizzapos-backend/internal/domain"
)

func sale(category string, amount int64) domain.LedgerEntry {
	return domain.LedgerEntry{
		Amount: decimal.NewFromInt(amount),
		Type:   domain.EntryTypeIncome, Category: category,
		Method: domain.MethodCash, Status: domain.StatusActive,
		OccurredAt: time.Now(),
	}
}

func marker(t domain.EntryType) domain.LedgerEntry {
	return domain.LedgerEntry{Type: t, Status: domain.StatusActive, OccurredAt: time.Now()}
}

func TestBuildReport_ShiftSales(t *testing.T) {
	// Newest first: two sales this shift, a CLOSE_SHIFT, then older sales.
	entries := []domain.LedgerEntry{
		sale("PEPPERONI", 25),
		sale("MARGHERITA", 18),
		marker(domain.EntryTypeCloseShift),
		sale("PEPPERONI", 40),
		sale("PEPPERONI", 40),
	}

	r := BuildReport(entries)
	assert.True(t, r.ShiftSales.Equal(decimal.NewFromInt(43)), "shift sales = %s", r.ShiftSales)
	assert.Equal(t, 5, r.TotalEntries)
	assert.Equal(t, "PEPPERONI", r.TopProduct)
	assert.Equal(t, 3, r.TopProductCount)
	assert.Equal(t, map[string]int{"PEPPERONI": 3, "MARGHERITA": 1}, r.ProductMix)
}

func TestBuildReport_NoCloseShift(t *testing.T) {
	r := BuildReport([]domain.LedgerEntry{sale("PEPPERONI", 10), sale("MARGHERITA", 5)})
	assert.True(t, r.ShiftSales.Equal(decimal.NewFromInt(15)))
}

func TestBuildReport_VoidedExcluded(t *testing.T) {
	voided := sale("PEPPERONI", 100)
	voided.Status = domain.StatusVoided
	voided.VoidJustification = "test order"

	r := BuildReport([]domain.LedgerEntry{sale("MARGHERITA", 20), voided})
	assert.True(t, r.ShiftSales.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, 2, r.TotalEntries, "raw count includes voided rows")
	assert.NotContains(t, r.ProductMix, "PEPPERONI")
}

func TestBuildReport_Empty(t *testing.T) {
	r := BuildReport(nil)
	assert.True(t, r.ShiftSales.IsZero())
	assert.Equal(t, 0, r.TotalEntries)
	assert.Empty(t, r.ProductMix)
	assert.Equal(t, "", r.TopProduct)
}
