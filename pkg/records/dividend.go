package records

import (
	"time"

	"github.com/granaboard/client-go/internal/types"
	"github.com/shopspring/decimal"
)

// DividendItem represents a single dividend payment. It belongs to exactly
// one DividendCard.
type DividendItem struct {
	ID    uint64          `json:"id"`
	Asset Asset           `json:"asset"`
	Value decimal.Decimal `json:"value"`
	Date  types.Date      `json:"date"`
}

// DividendCard aggregates the dividend payments received in one month.
// The backend keeps at most one card per month and year.
type DividendCard struct {
	ID    uint64         `json:"id"`
	Month int            `json:"month"`
	Year  int            `json:"year"`
	Items []DividendItem `json:"items"`
}

// Key returns the month the card stands for.
func (c DividendCard) Key() types.Month {
	return types.NewMonth(c.Year, time.Month(c.Month))
}

// TotalReceived returns the sum of all dividend payments on the card.
func (c DividendCard) TotalReceived() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Value)
	}

	return total
}

// DividendItemEditable is the set of fields accepted when adding or updating
// a dividend payment. The asset is referenced as a full record and resolved
// down to its ID for the API.
type DividendItemEditable struct {
	Asset *Asset
	Value decimal.Decimal
	Date  types.Date
}

// DividendItemRequest is the wire shape the API expects for dividend item
// writes. Card is only set on create, updates keep the item on its card.
type DividendItemRequest struct {
	Value   decimal.Decimal `json:"value"`
	Date    types.Date      `json:"date"`
	AssetID uint64          `json:"asset_id"`
	Card    uint64          `json:"card,omitempty"`
}

// Request resolves the editable into the wire shape for creation on the
// given card.
func (e DividendItemEditable) Request(cardID uint64) DividendItemRequest {
	request := e.UpdateRequest()
	request.Card = cardID
	return request
}

// UpdateRequest resolves the editable into the wire shape for updates.
func (e DividendItemEditable) UpdateRequest() DividendItemRequest {
	request := DividendItemRequest{
		Value: e.Value,
		Date:  e.Date,
	}

	if e.Asset != nil {
		request.AssetID = e.Asset.ID
	}

	return request
}

// Validate checks the client-side preconditions for the dividend payment.
func (e DividendItemEditable) Validate() error {
	if e.Asset == nil {
		return ErrAssetRequired
	}

	if !e.Value.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}
