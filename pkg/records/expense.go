package records

import (
	"strings"

	"github.com/granaboard/client-go/internal/types"
	"github.com/shopspring/decimal"
)

// Expense represents a single expense.
type Expense struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     types.Date      `json:"due_date"`
	PaymentDate *types.Date     `json:"payment_date"` // nil while the expense is unpaid
	Category    *Category       `json:"category"`
	Paid        bool            `json:"paid"`
}

// ExpenseEditable is the set of fields accepted when creating or updating
// an expense. The category is referenced as a full record here and resolved
// down to its ID for the API.
type ExpenseEditable struct {
	Name        string
	Amount      decimal.Decimal
	DueDate     types.Date
	PaymentDate *types.Date
	Category    *Category
	Paid        bool
}

// ExpenseRequest is the wire shape the API expects for expense writes.
type ExpenseRequest struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     types.Date      `json:"due_date"`
	PaymentDate *types.Date     `json:"payment_date"`
	Paid        bool            `json:"paid"`
	CategoryID  *uint64         `json:"category_id"`
}

// Request resolves the editable into the wire shape.
func (e ExpenseEditable) Request() ExpenseRequest {
	request := ExpenseRequest{
		Name:        e.Name,
		Amount:      e.Amount,
		DueDate:     e.DueDate,
		PaymentDate: e.PaymentDate,
		Paid:        e.Paid,
	}

	if e.Category != nil {
		request.CategoryID = &e.Category.ID
	}

	return request
}

// Validate checks the client-side preconditions for the expense.
func (e ExpenseEditable) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrNameRequired
	}

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}
