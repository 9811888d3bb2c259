package records

import (
	"time"

	"github.com/granaboard/client-go/internal/types"
)

// MonthCardEditable is the set of fields accepted when opening a new month
// card, for both dividend and investment collections.
type MonthCardEditable struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Key returns the month the card stands for.
func (c MonthCardEditable) Key() types.Month {
	return types.NewMonth(c.Year, time.Month(c.Month))
}

// Validate checks the client-side preconditions for the month card.
func (c MonthCardEditable) Validate() error {
	if c.Month < 1 || c.Month > 12 {
		return ErrInvalidMonth
	}

	if c.Year <= 0 {
		return ErrInvalidYear
	}

	return nil
}
