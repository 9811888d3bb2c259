package records

import "strings"

// AssetType is the kind of a tradeable asset.
type AssetType string

const (
	AssetTypeAcao AssetType = "ACAO" // Brazilian stock
	AssetTypeFII  AssetType = "FII"  // real estate fund
	AssetTypeBDR  AssetType = "BDR"  // Brazilian depositary receipt
	AssetTypeETF  AssetType = "ETF"
)

// Valid reports whether the asset type is one of the known kinds.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeAcao, AssetTypeFII, AssetTypeBDR, AssetTypeETF:
		return true
	}

	return false
}

// Asset represents a tradeable asset. Codes are unique within the backend.
type Asset struct {
	ID   uint64    `json:"id"`
	Code string    `json:"code"`
	Type AssetType `json:"type"`
}

// AssetEditable is the set of fields accepted when creating or updating
// an asset.
type AssetEditable struct {
	Code string    `json:"code"`
	Type AssetType `json:"type"`
}

// Normalized returns a copy with the asset code in its canonical upper-case
// form, which is how the backend stores and compares codes.
func (a AssetEditable) Normalized() AssetEditable {
	a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
	return a
}

// Validate checks the client-side preconditions for the asset.
func (a AssetEditable) Validate() error {
	if strings.TrimSpace(a.Code) == "" {
		return ErrCodeRequired
	}

	if !a.Type.Valid() {
		return ErrInvalidAssetType
	}

	return nil
}
