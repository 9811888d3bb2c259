package records

import (
	"time"

	"github.com/granaboard/client-go/internal/types"
	"github.com/shopspring/decimal"
)

// OrderType is the direction of an investment operation.
type OrderType string

const (
	OrderTypeBuy  OrderType = "BUY"
	OrderTypeSell OrderType = "SELL"
)

// Valid reports whether the order type is known.
func (t OrderType) Valid() bool {
	return t == OrderTypeBuy || t == OrderTypeSell
}

// InvestmentItem represents a single buy or sell operation. It belongs to
// exactly one InvestmentCard.
type InvestmentItem struct {
	ID            uint64          `json:"id"`
	Asset         Asset           `json:"asset"`
	OrderType     OrderType       `json:"order_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	OperationDate types.Date      `json:"operation_date"`
}

// TotalValue returns the gross value of the operation, quantity times
// unit price.
func (i InvestmentItem) TotalValue() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// SignedValue returns the cash-flow effect of the operation: negative for
// buys (outflow), positive for sells (inflow).
func (i InvestmentItem) SignedValue() decimal.Decimal {
	if i.OrderType == OrderTypeBuy {
		return i.TotalValue().Neg()
	}

	return i.TotalValue()
}

// InvestmentCard aggregates the investment operations of one month.
// The backend keeps at most one card per month and year.
type InvestmentCard struct {
	ID    uint64           `json:"id"`
	Month int              `json:"month"`
	Year  int              `json:"year"`
	Items []InvestmentItem `json:"items"`
}

// Key returns the month the card stands for.
func (c InvestmentCard) Key() types.Month {
	return types.NewMonth(c.Year, time.Month(c.Month))
}

// TotalInvested returns the sum of the buy operations on the card. Sells
// are not netted against it.
func (c InvestmentCard) TotalInvested() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		if item.OrderType == OrderTypeBuy {
			total = total.Add(item.TotalValue())
		}
	}

	return total
}

// TotalSold returns the sum of the sell operations on the card.
func (c InvestmentCard) TotalSold() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		if item.OrderType == OrderTypeSell {
			total = total.Add(item.TotalValue())
		}
	}

	return total
}

// InvestmentItemEditable is the set of fields accepted when adding or
// updating an investment operation.
type InvestmentItemEditable struct {
	Asset         *Asset
	OrderType     OrderType
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	OperationDate types.Date
}

// InvestmentItemRequest is the wire shape the API expects for investment
// item writes. Card is only set on create.
type InvestmentItemRequest struct {
	AssetID       uint64          `json:"asset_id"`
	OrderType     OrderType       `json:"order_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	OperationDate types.Date      `json:"operation_date"`
	Card          uint64          `json:"card,omitempty"`
}

// Request resolves the editable into the wire shape for creation on the
// given card.
func (e InvestmentItemEditable) Request(cardID uint64) InvestmentItemRequest {
	request := e.UpdateRequest()
	request.Card = cardID
	return request
}

// UpdateRequest resolves the editable into the wire shape for updates.
func (e InvestmentItemEditable) UpdateRequest() InvestmentItemRequest {
	request := InvestmentItemRequest{
		OrderType:     e.OrderType,
		Quantity:      e.Quantity,
		UnitPrice:     e.UnitPrice,
		OperationDate: e.OperationDate,
	}

	if e.Asset != nil {
		request.AssetID = e.Asset.ID
	}

	return request
}

// Validate checks the client-side preconditions for the operation.
func (e InvestmentItemEditable) Validate() error {
	if e.Asset == nil {
		return ErrAssetRequired
	}

	if !e.OrderType.Valid() {
		return ErrInvalidOrderType
	}

	if !e.Quantity.IsPositive() || !e.UnitPrice.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}
