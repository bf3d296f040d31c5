package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validIncome() LedgerEntry {
	return LedgerEntry{
		Amount:     decimal.NewFromInt(25),
		Type:       EntryTypeIncome,
		Category:   "PIZZA_PEPPERONI",
		Method:     MethodCash,
		ActorName:  "Maria",
		OccurredAt: time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC),
		Status:     StatusActive,
	}
}

func TestLedgerEntry_Validate(t *testing.T) {
	t.Run("ValidIncome", func(t *testing.T) {
		e := validIncome()
		assert.NoError(t, e.Validate())
	})

	t.Run("UnknownType", func(t *testing.T) {
		e := validIncome()
		e.Type = "REFUND"
		var ve *ValidationError
		assert.ErrorAs(t, e.Validate(), &ve)
		assert.Equal(t, "type", ve.Field)
	})

	t.Run("FilterVoidedIsNotAStorableType", func(t *testing.T) {
		e := validIncome()
		e.Type = FilterVoided
		assert.Error(t, e.Validate())
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		e := validIncome()
		e.Amount = decimal.NewFromInt(-5)
		assert.Error(t, e.Validate())
	})

	t.Run("ZeroAmountRejectedForMovers", func(t *testing.T) {
		e := validIncome()
		e.Amount = decimal.Zero
		assert.Error(t, e.Validate())
	})

	t.Run("MarkerMustBeZero", func(t *testing.T) {
		e := LedgerEntry{
			Type:       EntryTypeOpenShift,
			ActorName:  "Maria",
			OccurredAt: time.Now(),
			Status:     StatusActive,
		}
		assert.NoError(t, e.Validate())

		e.Amount = decimal.NewFromInt(1)
		assert.Error(t, e.Validate())
	})

	t.Run("MethodRequiredForMovers", func(t *testing.T) {
		e := validIncome()
		e.Method = ""
		var ve *ValidationError
		assert.ErrorAs(t, e.Validate(), &ve)
		assert.Equal(t, "method", ve.Field)
	})

	t.Run("MixedRequiresSplit", func(t *testing.T) {
		e := validIncome()
		e.Method = MethodMixed
		assert.Error(t, e.Validate())
	})

	t.Run("MixedSplitMustSum", func(t *testing.T) {
		e := validIncome()
		e.Method = MethodMixed
		e.Split = &MethodSplit{Cash: decimal.NewFromInt(10), Wallet: decimal.NewFromInt(10)}
		assert.Error(t, e.Validate())

		e.Split = &MethodSplit{Cash: decimal.NewFromInt(10), Wallet: decimal.NewFromInt(15)}
		assert.NoError(t, e.Validate())
	})

	t.Run("SplitOnlyForMixed", func(t *testing.T) {
		e := validIncome()
		e.Split = &MethodSplit{Cash: decimal.NewFromInt(25)}
		assert.Error(t, e.Validate())
	})

	t.Run("TransferNeedsDirectionalCategory", func(t *testing.T) {
		e := validIncome()
		e.Type = EntryTypeTransfer
		e.Category = "SUPPLIES"
		assert.Error(t, e.Validate())

		e.Category = CategoryCashToWallet
		assert.NoError(t, e.Validate())
	})

	t.Run("OtherCategoryNeedsDescription", func(t *testing.T) {
		e := validIncome()
		e.Category = CategoryOther
		e.Description = "   "
		assert.Error(t, e.Validate())

		e.Description = "tip jar"
		assert.NoError(t, e.Validate())
	})

	t.Run("ExtraSaleNeedsDescription", func(t *testing.T) {
		e := validIncome()
		e.Category = CategoryExtraSale
		assert.Error(t, e.Validate())
	})

	t.Run("MissingTimestamp", func(t *testing.T) {
		e := validIncome()
		e.OccurredAt = time.Time{}
		assert.Error(t, e.Validate())
	})

	t.Run("VoidedNeedsJustification", func(t *testing.T) {
		e := validIncome()
		e.Status = StatusVoided
		assert.Error(t, e.Validate())

		e.VoidJustification = "typo on amount"
		assert.NoError(t, e.Validate())
	})

	t.Run("ActiveCannotCarryJustification", func(t *testing.T) {
		e := validIncome()
		e.VoidJustification = "nope"
		assert.Error(t, e.Validate())
	})
}

func TestLedgerEntry_Helpers(t *testing.T) {
	marker := LedgerEntry{Type: EntryTypeCloseShift}
	assert.True(t, marker.IsMarker())
	assert.False(t, marker.MovesMoney())

	income := validIncome()
	assert.False(t, income.IsMarker())
	assert.True(t, income.MovesMoney())
	assert.False(t, income.Voided())

	income.Status = StatusVoided
	assert.True(t, income.Voided())
}
