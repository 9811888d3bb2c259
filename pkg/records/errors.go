package records

import "errors"

var (
	ErrNameRequired     = errors.New("a name is required")
	ErrAmountNotPositive = errors.New("the amount must be larger than zero")
	ErrCodeRequired     = errors.New("an asset code is required")
	ErrInvalidAssetType = errors.New("the asset type must be one of ACAO, FII, BDR, ETF")
	ErrInvalidOrderType = errors.New("the order type must be BUY or SELL")
	ErrAssetRequired    = errors.New("an asset is required")
	ErrInvalidMonth     = errors.New("the month must be between 1 and 12")
	ErrInvalidYear      = errors.New("the year must be larger than zero")
)
