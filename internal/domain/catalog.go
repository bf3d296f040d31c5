package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a sellable item shown on the sales screen. Deletion is logical
// (IsActive = false) so historic entries keep referencing the name.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Color    string          `json:"color"`
	IsActive bool            `json:"is_active"`
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if p.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "price cannot be negative"}
	}
	return nil
}

type StockPriority string

const (
	PrioritySupply StockPriority = "SUPPLY"
	PriorityUrgent StockPriority = "URGENT"
)

// StockItem is a restockable supply that can be put on the request list.
type StockItem struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Priority StockPriority `json:"priority"`
	IsActive bool          `json:"is_active"`
}

func (s *StockItem) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if s.Priority != PrioritySupply && s.Priority != PriorityUrgent {
		return &ValidationError{Field: "priority", Reason: "unknown priority " + string(s.Priority)}
	}
	return nil
}

// AppConfig is the singleton business configuration row.
type AppConfig struct {
	ID             string `json:"id,omitempty"`
	BusinessName   string `json:"business_name"`
	TelegramToken  string `json:"telegram_token,omitempty"`
	TelegramChatID string `json:"telegram_chat_id,omitempty"`
}
