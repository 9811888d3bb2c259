package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/granaboard/client-go/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (s *Server) registerInvestmentRoutes(r *gin.Engine) {
	r.GET("/investment-cards/", s.listInvestmentCards)
	r.POST("/investment-cards/", s.createInvestmentCard)
	r.DELETE("/investment-cards/:id/", s.deleteInvestmentCard)

	r.POST("/investment-items/", s.createInvestmentItem)
	r.PATCH("/investment-items/:id/", s.updateInvestmentItem)
	r.DELETE("/investment-items/:id/", s.deleteInvestmentItem)
}

func (s *Server) listInvestmentCards(c *gin.Context) {
	offset, envelope := paginate(c)

	q := cardQuery(c, s.db.Model(&InvestmentCard{}))

	var count int64
	if err := q.Count(&count).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	cards := make([]InvestmentCard, 0)
	err := q.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("operation_date ASC, id ASC")
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

func (s *Server) createInvestmentCard(c *gin.Context) {
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
	s.db.Model(&InvestmentCard{}).Where("month = ? AND year = ?", editable.Month, editable.Year).Count(&count)
	if count > 0 {
		detail(c, http.StatusBadRequest, "month already registered")
		return
	}

	card := InvestmentCard{Month: editable.Month, Year: editable.Year, Items: []InvestmentItem{}}
	if err := s.db.Create(&card).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, card)
}

func (s *Server) deleteInvestmentCard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var card InvestmentCard
	if err := s.db.First(&card, id).Error; err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return
	}

	// Contained items are deleted with the card
	if err := s.db.Where("card_id = ?", id).Delete(&InvestmentItem{}).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.db.Delete(&card).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

type investmentItemEditable struct {
	AssetID       *uint64          `json:"asset_id"`
	OrderType     *string          `json:"order_type"`
	Quantity      *decimal.Decimal `json:"quantity"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	OperationDate *types.Date      `json:"operation_date"`
	Card          *uint64          `json:"card"`
}

func (s *Server) applyInvestmentItem(c *gin.Context, editable investmentItemEditable, item *InvestmentItem) (ok bool) {
	if editable.OrderType != nil {
		item.OrderType = *editable.OrderType
	}
	if editable.Quantity != nil {
		item.Quantity = *editable.Quantity
	}
	if editable.UnitPrice != nil {
		item.UnitPrice = *editable.UnitPrice
	}
	if editable.OperationDate != nil {
		item.OperationDate = *editable.OperationDate
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

	if item.OrderType != "BUY" && item.OrderType != "SELL" {
		fieldError(c, "order_type", "\""+item.OrderType+"\" is not a valid choice.")
		return false
	}
	if !item.Quantity.IsPositive() {
		fieldError(c, "quantity", "Ensure this value is greater than 0.")
		return false
	}
	if !item.UnitPrice.IsPositive() {
		fieldError(c, "unit_price", "Ensure this value is greater than 0.")
		return false
	}

	return true
}

func (s *Server) createInvestmentItem(c *gin.Context) {
	var editable investmentItemEditable
	if !bindJSON(c, &editable) {
		return
	}

	if editable.Card == nil {
		fieldError(c, "card", "This field is required.")
		return
	}

	var card InvestmentCard
	if err := s.db.First(&card, *editable.Card).Error; err != nil {
		fieldError(c, "card", "Invalid pk \""+strconv.FormatUint(*editable.Card, 10)+"\" - object does not exist.")
		return
	}

	if editable.AssetID == nil {
		fieldError(c, "asset_id", "This field is required.")
		return
	}

	item := InvestmentItem{CardID: card.ID}
	if !s.applyInvestmentItem(c, editable, &item) {
		return
	}

	if err := s.db.Omit("Asset").Create(&item).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateInvestmentItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item InvestmentItem
	if err := s.db.Preload("Asset").First(&item, id).Error; err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return
	}

	var editable investmentItemEditable
	if !bindJSON(c, &editable) {
		return
	}

	if !s.applyInvestmentItem(c, editable, &item) {
		return
	}

	if err := s.db.Omit("Asset").Save(&item).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteInvestmentItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item InvestmentItem
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
