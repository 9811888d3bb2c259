package stub

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/granaboard/client-go/internal/types"
	"github.com/shopspring/decimal"
)

func (s *Server) registerInstallmentRoutes(r *gin.Engine) {
	r.GET("/installments/", s.listInstallments)
	r.POST("/installments/", s.createInstallment)
}

func (s *Server) listInstallments(c *gin.Context) {
	var installments []InstallmentExpense
	if err := s.db.Preload("Category").Order("first_due_date ASC, id ASC").Find(&installments).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, installments)
}

func (s *Server) createInstallment(c *gin.Context) {
	var editable struct {
		Name                 string          `json:"name"`
		TotalAmount          decimal.Decimal `json:"total_amount"`
		InstallmentsQuantity int             `json:"installments_quantity"`
		FirstDueDate         types.Date      `json:"first_due_date"`
		CategoryID           *uint64         `json:"category_id"`
	}
	if !bindJSON(c, &editable) {
		return
	}

	if strings.TrimSpace(editable.Name) == "" {
		fieldError(c, "name", "This field may not be blank.")
		return
	}
	if !editable.TotalAmount.IsPositive() {
		fieldError(c, "total_amount", "Ensure this value is greater than 0.")
		return
	}
	if editable.InstallmentsQuantity < 1 {
		fieldError(c, "installments_quantity", "Ensure this value is greater than or equal to 1.")
		return
	}

	installment := InstallmentExpense{
		Name:                 strings.TrimSpace(editable.Name),
		TotalAmount:          editable.TotalAmount,
		InstallmentsQuantity: editable.InstallmentsQuantity,
		FirstDueDate:         editable.FirstDueDate,
	}

	if editable.CategoryID != nil {
		var category Category
		if err := s.db.First(&category, *editable.CategoryID).Error; err != nil {
			fieldError(c, "category_id", "Invalid pk \""+strconv.FormatUint(*editable.CategoryID, 10)+"\" - object does not exist.")
			return
		}
		installment.CategoryID = editable.CategoryID
		installment.Category = &category
	}

	if err := s.db.Omit("Category").Create(&installment).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, installment)
}
