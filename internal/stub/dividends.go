package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/granaboard/client-go/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (s *Server) registerDividendRoutes(r *gin.Engine) {
	r.GET("/dividend-cards/", s.listDividendCards)
	r.POST("/dividend-cards/", s.createDividendCard)
	r.DELETE("/dividend-cards/:id/", s.deleteDividendCard)

	r.POST("/dividend-items/", s.createDividendItem)
	r.PATCH("/dividend-items/:id/", s.updateDividendItem)
	r.DELETE("/dividend-items/:id/", s.deleteDividendItem)
}

// cardQuery narrows a card listing by the optional year and month
// parameters.
func cardQuery(c *gin.Context, q *gorm.DB) *gorm.DB {
	if year, err := strconv.Atoi(c.Query("year")); err == nil {
		q = q.Where("year = ?", year)
	}
	if month, err := strconv.Atoi(c.Query("month")); err == nil {
		q = q.Where("month = ?", month)
	}

	return q
}

func (s *Server) listDividendCards(c *gin.Context) {
	offset, envelope := paginate(c)

	q := cardQuery(c, s.db.Model(&DividendCard{}))

	var count int64
	if err := q.Count(&count).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	cards := make([]DividendCard, 0)
	err := q.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, id ASC")
		}).
		Preload("Items.Asset").
		Order("year DESC, month DESC").
		Offset(offset).
		Limit(cardPageSize).
		Find(&cards).Error
	if err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, envelope(count, cards))
}

// validMonthCard checks the month and year of a new card. ok is false when
// a response has been written.
func validMonthCard(c *gin.Context, month, year int) (ok bool) {
	if month < 1 || month > 12 {
		fieldError(c, "month", "Ensure this value is between 1 and 12.")
		return false
	}
	if year < 1 {
		fieldError(c, "year", "Ensure this value is greater than 0.")
		return false
	}

	return true
}

func (s *Server) createDividendCard(c *gin.Context) {
	var editable struct {
		Month int `json:"month"`
		Year  int `json:"year"`
	}
	if !bindJSON(c, &editable) {
		return
	}

	if !validMonthCard(c, editable.Month, editable.Year) {
		return
	}

	var count int64
	s.db.Model(&DividendCard{}).Where("month = ? AND year = ?", editable.Month, editable.Year).Count(&count)
	if count > 0 {
		detail(c, http.StatusBadRequest, "month already registered")
		return
	}

	card := DividendCard{Month: editable.Month, Year: editable.Year, Items: []DividendItem{}}
	if err := s.db.Create(&card).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, card)
}

func (s *Server) deleteDividendCard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var card DividendCard
	if err := s.db.First(&card, id).Error; err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return
	}

	// Contained items are deleted with the card
	if err := s.db.Where("card_id = ?", id).Delete(&DividendItem{}).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.db.Delete(&card).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

type dividendItemEditable struct {
	Value   *decimal.Decimal `json:"value"`
	Date    *types.Date      `json:"date"`
	AssetID *uint64          `json:"asset_id"`
	Card    *uint64          `json:"card"`
}

func (s *Server) applyDividendItem(c *gin.Context, editable dividendItemEditable, item *DividendItem) (ok bool) {
	if editable.Value != nil {
		item.Value = *editable.Value
	}
	if editable.Date != nil {
		item.Date = *editable.Date
	}
	if editable.AssetID != nil {
		var asset Asset
		if err := s.db.First(&asset, *editable.AssetID).Error; err != nil {
			fieldError(c, "asset_id", "Invalid pk \""+strconv.FormatUint(*editable.AssetID, 10)+"\" - object does not exist.")
			return false
		}
		item.AssetID = *editable.AssetID
		item.Asset = asset
	}

	if !item.Value.IsPositive() {
		fieldError(c, "value", "Ensure this value is greater than 0.")
		return false
	}

	return true
}

func (s *Server) createDividendItem(c *gin.Context) {
	var editable dividendItemEditable
	if !bindJSON(c, &editable) {
		return
	}

	if editable.Card == nil {
		fieldError(c, "card", "This field is required.")
		return
	}

	var card DividendCard
	if err := s.db.First(&card, *editable.Card).Error; err != nil {
		fieldError(c, "card", "Invalid pk \""+strconv.FormatUint(*editable.Card, 10)+"\" - object does not exist.")
		return
	}

	if editable.AssetID == nil {
		fieldError(c, "asset_id", "This field is required.")
		return
	}

	item := DividendItem{CardID: card.ID}
	if !s.applyDividendItem(c, editable, &item) {
		return
	}

	if err := s.db.Omit("Asset").Create(&item).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateDividendItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item DividendItem
	if err := s.db.Preload("Asset").First(&item, id).Error; err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return
	}

	var editable dividendItemEditable
	if !bindJSON(c, &editable) {
		return
	}

	if !s.applyDividendItem(c, editable, &item) {
		return
	}

	if err := s.db.Omit("Asset").Save(&item).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteDividendItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item DividendItem
	if err := s.db.First(&item, id).Error; err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return
	}

	if err := s.db.Delete(&item).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
