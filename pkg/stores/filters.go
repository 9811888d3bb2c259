package stores

import "github.com/granaboard/client-go/pkg/records"

// ExpenseStatus selects the slice of the expense list a screen shows.
type ExpenseStatus string

const (
	StatusAll     ExpenseStatus = "all"
	StatusPending ExpenseStatus = "pending"
	StatusPaid    ExpenseStatus = "paid"
)

// FilterByStatus returns the expenses matching the status. It is a pure
// function over the snapshot: the input slice is never modified and the
// relative order of the items is preserved.
func FilterByStatus(items []records.Expense, status ExpenseStatus) []records.Expense {
	if status == StatusAll || status == "" {
		return items
	}

	filtered := make([]records.Expense, 0, len(items))
	for _, item := range items {
		if item.Paid == (status == StatusPaid) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}
