package stub

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var assetTypes = map[string]bool{"ACAO": true, "FII": true, "BDR": true, "ETF": true}

func (s *Server) registerAssetRoutes(r *gin.Engine) {
	r.GET("/assets/", s.listAssets)
	r.POST("/assets/", s.createAsset)
	r.PATCH("/assets/:id/", s.updateAsset)
	r.DELETE("/assets/:id/", s.deleteAsset)
}

func (s *Server) listAssets(c *gin.Context) {
	var assets []Asset
	if err := s.db.Order("code ASC").Find(&assets).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, assets)
}

type assetEditable struct {
	Code *string `json:"code"`
	Type *string `json:"type"`
}

// applyAsset copies the set fields onto the asset, normalizing the code to
// upper case. Codes must stay unique; ok is false when a response has
// been written.
func (s *Server) applyAsset(c *gin.Context, editable assetEditable, asset *Asset) (ok bool) {
	if editable.Code != nil {
		asset.Code = strings.ToUpper(strings.TrimSpace(*editable.Code))
	}
	if editable.Type != nil {
		asset.Type = *editable.Type
	}

	if asset.Code == "" {
		fieldError(c, "code", "This field may not be blank.")
		return false
	}
	if !assetTypes[asset.Type] {
		fieldError(c, "type", "\""+asset.Type+"\" is not a valid choice.")
		return false
	}

	var count int64
	s.db.Model(&Asset{}).Where("code = ? AND id != ?", asset.Code, asset.ID).Count(&count)
	if count > 0 {
		fieldError(c, "code", "asset with this code already exists.")
		return false
	}

	return true
}

func (s *Server) createAsset(c *gin.Context) {
	var editable assetEditable
	if !bindJSON(c, &editable) {
		return
	}

	var asset Asset
	if !s.applyAsset(c, editable, &asset) {
		return
	}

	if err := s.db.Create(&asset).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, asset)
}

func (s *Server) updateAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var asset Asset
	if err := s.db.First(&asset, id).Error; err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return
	}

	var editable assetEditable
	if !bindJSON(c, &editable) {
		return
	}

	if !s.applyAsset(c, editable, &asset) {
		return
	}

	if err := s.db.Save(&asset).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (s *Server) deleteAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var asset Asset
	if err := s.db.First(&asset, id).Error; err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return
	}

	// Assets referenced by dividend or investment records cannot be removed
	var references int64
	s.db.Model(&DividendItem{}).Where("asset_id = ?", id).Count(&references)
	if references == 0 {
		s.db.Model(&InvestmentItem{}).Where("asset_id = ?", id).Count(&references)
	}
	if references > 0 {
		detail(c, http.StatusBadRequest, "this asset is referenced by dividend or investment records")
		return
	}

	if err := s.db.Delete(&asset).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
