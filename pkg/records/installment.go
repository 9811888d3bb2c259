package records

import (
	"github.com/granaboard/client-go/internal/types"
	"github.com/shopspring/decimal"
)

// InstallmentExpense represents an installment purchase. The backend expands
// it into the underlying recurring expense instances, so the client only
// ever reads these.
type InstallmentExpense struct {
	ID                   uint64          `json:"id"`
	Name                 string          `json:"name"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	InstallmentsQuantity int             `json:"installments_quantity"`
	FirstDueDate         types.Date      `json:"first_due_date"`
	Category             *Category       `json:"category"`
}

// InstallmentAmount returns the value of a single installment.
func (i InstallmentExpense) InstallmentAmount() decimal.Decimal {
	if i.InstallmentsQuantity <= 0 {
		return decimal.Zero
	}

	return i.TotalAmount.Div(decimal.NewFromInt(int64(i.InstallmentsQuantity))).Round(2)
}
