package ledger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pizzapos-backend/internal/domain"
)

// exportHeader matches the spreadsheet layout the shop has always used:
// semicolon-delimited, decimal comma, one row per entry with MIXED splits
// expanded into the Cash/Wallet columns.
const exportHeader = "Date;Time;User;Type;Category;Method;Total;Cash;Wallet;Status;Reason"

// ExportRow is the human-readable projection of one entry.
type ExportRow struct {
	Date     string
	Time     string
	Actor    string
	Type     string
	Category string
	Method   string
	Total    string
	Cash     string
	Wallet   string
	Status   string
	Reason   string
}

// FormatRow projects an entry for export using the business timezone. A
// plain-method entry attributes its full amount to its own bucket; a MIXED
// entry reports both sides of the split.
func FormatRow(e *domain.LedgerEntry, loc *time.Location) ExportRow {
	local := e.OccurredAt.In(loc)

	cash := decimal.Zero
	wallet := decimal.Zero
	switch {
	case e.Method == domain.MethodMixed && e.Split != nil:
		cash = e.Split.Cash
		wallet = e.Split.Wallet
	case e.Method == domain.MethodCash:
		cash = e.Amount
	case e.Method == domain.MethodWallet:
		wallet = e.Amount
	}

	return ExportRow{
		Date:     local.Format("02/01"),
		Time:     local.Format("15:04"),
		Actor:    e.ActorName,
		Type:     string(e.Type),
		Category: e.Category,
		Method:   string(e.Method),
		Total:    exportAmount(e.Amount),
		Cash:     exportAmount(cash),
		Wallet:   exportAmount(wallet),
		Status:   string(e.Status),
		Reason:   e.VoidJustification,
	}
}

// WriteCSV writes the entries as the shop's delimited export, preceded by a
// UTF-8 BOM so spreadsheet applications pick the encoding up.
func WriteCSV(w io.Writer, entries []domain.LedgerEntry, loc *time.Location) error {
	if _, err := io.WriteString(w, "\uFEFF"+exportHeader+"\n"); err != nil {
		return err
	}
	for i := range entries {
		row := FormatRow(&entries[i], loc)
		line := strings.Join([]string{
			row.Date, row.Time, row.Actor, row.Type,
			quote(row.Category), row.Method,
			row.Total, row.Cash, row.Wallet,
			row.Status, quote(row.Reason),
		}, ";")
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func exportAmount(d decimal.Decimal) string {
	return strings.ReplaceAll(d.StringFixed(2), ".", ",")
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
