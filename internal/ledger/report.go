package ledger

import (
	"github.com/shopspring/decimal"

	"pizzapos-backend/internal/domain"
)

// Report summarizes sales activity for the reports screen.
type Report struct {
	ShiftSales      decimal.Decimal `json:"shift_sales"`
	TopProduct      string          `json:"top_product"`
	TopProductCount int             `json:"top_product_count"`
	TotalEntries    int             `json:"total_entries"`
	ProductMix      map[string]int  `json:"product_mix"`
}

// BuildReport computes the current-shift sales total and the all-time product
// mix. Entries are expected newest-first, the order the replica keeps them in:
// the current shift is everything before the most recent CLOSE_SHIFT marker.
// Voided entries are excluded from every figure except the raw entry count.
func BuildReport(entries []domain.LedgerEntry) Report {
	r := Report{
		ShiftSales:   decimal.Zero,
		TotalEntries: len(entries),
		ProductMix:   make(map[string]int),
	}

	shiftOpen := true
	for i := range entries {
		e := &entries[i]
		if e.Voided() {
			continue
		}
		if e.Type == domain.EntryTypeCloseShift {
			shiftOpen = false
		}
		if e.Type != domain.EntryTypeIncome {
			continue
		}
		if shiftOpen {
			r.ShiftSales = r.ShiftSales.Add(e.Amount)
		}
		name := e.Category
		if name == "" {
			name = "MISC"
		}
		r.ProductMix[name]++
		if r.ProductMix[name] > r.TopProductCount {
			r.TopProduct = name
			r.TopProductCount = r.ProductMix[name]
		}
	}
	return r
}
