// Package stub implements a local stand-in for the granaboard backend.
// It serves the same REST contract the client consumes, backed by an
// sqlite database, and is used by the integration tests and the
// stubserver command during development. It is a fixture, not a
// production backend.
package stub

import (
	"github.com/granaboard/client-go/internal/types"
	"github.com/shopspring/decimal"
)

// Category represents a category of expenses.
type Category struct {
	ID   uint64 `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex"`
}

// Expense represents a single expense.
type Expense struct {
	ID          uint64          `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     types.Date      `json:"due_date"`
	PaymentDate *types.Date     `json:"payment_date"`
	Paid        bool            `json:"paid"`
	CategoryID  *uint64         `json:"-"`
	Category    *Category       `json:"category"`
}

// InstallmentExpense represents an installment purchase.
type InstallmentExpense struct {
	ID                   uint64          `json:"id" gorm:"primaryKey"`
	Name                 string          `json:"name"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	InstallmentsQuantity int             `json:"installments_quantity"`
	FirstDueDate         types.Date      `json:"first_due_date"`
	CategoryID           *uint64         `json:"-"`
	Category             *Category       `json:"category"`
}

// Asset represents a tradeable asset. Codes are stored upper case and are
// unique.
type Asset struct {
	ID   uint64 `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"uniqueIndex"`
	Type string `json:"type"`
}

// DividendCard aggregates the dividend payments of one month. There is at
// most one card per month and year.
type DividendCard struct {
	ID    uint64         `json:"id" gorm:"primaryKey"`
	Month int            `json:"month" gorm:"uniqueIndex:dividend_card_month_year"`
	Year  int            `json:"year" gorm:"uniqueIndex:dividend_card_month_year"`
	Items []DividendItem `json:"items" gorm:"foreignKey:CardID"`
}

// DividendItem represents a single dividend payment on a card.
type DividendItem struct {
	ID      uint64          `json:"id" gorm:"primaryKey"`
	CardID  uint64          `json:"-"`
	AssetID uint64          `json:"-"`
	Asset   Asset           `json:"asset"`
	Value   decimal.Decimal `json:"value"`
	Date    types.Date      `json:"date"`
}

// InvestmentCard aggregates the investment operations of one month. There
// is at most one card per month and year.
type InvestmentCard struct {
	ID    uint64           `json:"id" gorm:"primaryKey"`
	Month int              `json:"month" gorm:"uniqueIndex:investment_card_month_year"`
	Year  int              `json:"year" gorm:"uniqueIndex:investment_card_month_year"`
	Items []InvestmentItem `json:"items" gorm:"foreignKey:CardID"`
}

// InvestmentItem represents a single buy or sell operation on a card.
type InvestmentItem struct {
	ID            uint64          `json:"id" gorm:"primaryKey"`
	CardID        uint64          `json:"-"`
	AssetID       uint64          `json:"-"`
	Asset         Asset           `json:"asset"`
	OrderType     string          `json:"order_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	OperationDate types.Date      `json:"operation_date"`
}
