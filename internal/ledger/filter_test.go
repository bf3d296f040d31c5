package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pizzapos-backend/internal/domain"
)

var lima = time.FixedZone("PET", -5*3600)

func TestCivilDate(t *testing.T) {
	// 2026-03-15 02:30 UTC is still 2026-03-14 evening in Lima.
	utc := time.Date(2026, 3, 15, 2, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-14", CivilDate(utc, lima))
	assert.Equal(t, "2026-03-15", CivilDate(utc, time.UTC))
}

func TestFilter_MidnightBoundary(t *testing.T) {
	// One second before and one minute after local midnight land on
	// different civil days even though they are 61 seconds apart.
	lateNight := domain.LedgerEntry{
		Type: domain.EntryTypeIncome, Status: domain.StatusActive,
		OccurredAt: time.Date(2026, 3, 14, 23, 59, 59, 0, lima),
	}
	earlyMorning := domain.LedgerEntry{
		Type: domain.EntryTypeIncome, Status: domain.StatusActive,
		OccurredAt: time.Date(2026, 3, 15, 0, 1, 0, 0, lima),
	}

	day14 := Filter{Start: "2026-03-14", End: "2026-03-14"}
	assert.True(t, day14.Match(&lateNight, lima))
	assert.False(t, day14.Match(&earlyMorning, lima))

	day15 := Filter{Start: "2026-03-15", End: "2026-03-15"}
	assert.False(t, day15.Match(&lateNight, lima))
	assert.True(t, day15.Match(&earlyMorning, lima))
}

func TestFilter_TypeSelection(t *testing.T) {
	active := domain.LedgerEntry{
		Type: domain.EntryTypeExpense, Status: domain.StatusActive,
		OccurredAt: time.Date(2026, 3, 14, 10, 0, 0, 0, lima),
	}
	voided := domain.LedgerEntry{
		Type: domain.EntryTypeIncome, Status: domain.StatusVoided,
		OccurredAt: time.Date(2026, 3, 14, 11, 0, 0, 0, lima),
	}

	t.Run("EmptyTypeMatchesEverything", func(t *testing.T) {
		f := Filter{}
		assert.True(t, f.Match(&active, lima))
		assert.True(t, f.Match(&voided, lima))
	})

	t.Run("VoidedPseudoTypeMatchesOnlyVoided", func(t *testing.T) {
		f := Filter{Type: domain.FilterVoided}
		assert.False(t, f.Match(&active, lima))
		assert.True(t, f.Match(&voided, lima))
	})

	t.Run("ConcreteTypeExcludesVoided", func(t *testing.T) {
		f := Filter{Type: domain.EntryTypeIncome}
		assert.False(t, f.Match(&active, lima), "wrong type")
		assert.False(t, f.Match(&voided, lima), "voided INCOME must not match INCOME")
	})
}

func TestApply_PreservesOrder(t *testing.T) {
	mk := func(day int, amount int64) domain.LedgerEntry {
		return domain.LedgerEntry{
			Amount: decimal.NewFromInt(amount),
			Type:   domain.EntryTypeIncome, Status: domain.StatusActive,
			OccurredAt: time.Date(2026, 3, day, 12, 0, 0, 0, lima),
		}
	}
	entries := []domain.LedgerEntry{mk(16, 3), mk(15, 2), mk(14, 1)}

	out := Apply(entries, Filter{Start: "2026-03-15"}, lima)
	assert.Len(t, out, 2)
	assert.True(t, out[0].Amount.Equal(decimal.NewFromInt(3)))
	assert.True(t, out[1].Amount.Equal(decimal.NewFromInt(2)))
}
