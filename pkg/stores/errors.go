package stores

import "errors"

// Load failures are normalized to fixed messages per domain. The raw
// transport error is logged, never stored.
var (
	ErrLoadExpenses     = errors.New("could not load the expenses")
	ErrLoadCategories   = errors.New("could not load the categories")
	ErrLoadInstallments = errors.New("could not load the installment purchases")
	ErrLoadAssets       = errors.New("could not load the assets")
	ErrLoadDividends    = errors.New("could not load the dividend cards")
	ErrLoadInvestments  = errors.New("could not load the investment cards")

	// ErrMonthAlreadyRegistered is raised by the advisory client-side check
	// before a month card create call. The server independently enforces
	// the same uniqueness.
	ErrMonthAlreadyRegistered = errors.New("this month is already registered")
)
