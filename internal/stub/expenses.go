package stub

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/granaboard/client-go/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

func (s *Server) registerExpenseRoutes(r *gin.Engine) {
	r.GET("/expenses/", s.listExpenses)
	r.POST("/expenses/", s.createExpense)
	r.PATCH("/expenses/:id/", s.updateExpense)
	r.DELETE("/expenses/:id/", s.deleteExpense)
}

func (s *Server) listExpenses(c *gin.Context) {
	var expenses []Expense
	if err := s.db.Preload("Category").Order("due_date ASC, id ASC").Find(&expenses).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	// Date and search filtering happens in memory, the fixture datasets
	// are small.
	filtered := make([]Expense, 0, len(expenses))
	year, _ := strconv.Atoi(c.Query("due_date__year"))
	month, _ := strconv.Atoi(c.Query("due_date__month"))
	search := strings.ToLower(c.Query("search"))

	for _, expense := range expenses {
		due := time.Time(expense.DueDate)
		if year != 0 && due.Year() != year {
			continue
		}
		if month != 0 && int(due.Month()) != month {
			continue
		}
		if search != "" && !glob.Glob("*"+search+"*", strings.ToLower(expense.Name)) {
			continue
		}

		filtered = append(filtered, expense)
	}

	c.JSON(http.StatusOK, filtered)
}

type expenseEditable struct {
	Name        *string          `json:"name"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *types.Date      `json:"due_date"`
	PaymentDate *types.Date      `json:"payment_date"`
	Paid        *bool            `json:"paid"`
	CategoryID  *uint64          `json:"category_id"`
}

// applyExpense copies the set fields onto the expense. The category reference is
// resolved against the database; ok is false when a response has been
// written.
func (s *Server) applyExpense(c *gin.Context, editable expenseEditable, expense *Expense) (ok bool) {
	if editable.Name != nil {
		expense.Name = strings.TrimSpace(*editable.Name)
	}
	if editable.Amount != nil {
		expense.Amount = *editable.Amount
	}
	if editable.DueDate != nil {
		expense.DueDate = *editable.DueDate
	}
	if editable.PaymentDate != nil {
		expense.PaymentDate = editable.PaymentDate
	}
	if editable.Paid != nil {
		expense.Paid = *editable.Paid
	}
	if editable.CategoryID != nil {
		var category Category
		if err := s.db.First(&category, *editable.CategoryID).Error; err != nil {
			fieldError(c, "category_id", "Invalid pk \""+strconv.FormatUint(*editable.CategoryID, 10)+"\" - object does not exist.")
			return false
		}
		expense.CategoryID = editable.CategoryID
		expense.Category = &category
	}

	if expense.Name == "" {
		fieldError(c, "name", "This field may not be blank.")
		return false
	}
	if !expense.Amount.IsPositive() {
		fieldError(c, "amount", "Ensure this value is greater than 0.")
		return false
	}

	return true
}

func (s *Server) createExpense(c *gin.Context) {
	var editable expenseEditable
	if !bindJSON(c, &editable) {
		return
	}

	var expense Expense
	if !s.applyExpense(c, editable, &expense) {
		return
	}

	if err := s.db.Omit("Category").Create(&expense).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (s *Server) updateExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var expense Expense
	if err := s.db.Preload("Category").First(&expense, id).Error; err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return
	}

	var editable expenseEditable
	if !bindJSON(c, &editable) {
		return
	}

	if !s.applyExpense(c, editable, &expense) {
		return
	}

	if err := s.db.Omit("Category").Save(&expense).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, expense)
}

func (s *Server) deleteExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var expense Expense
	if err := s.db.First(&expense, id).Error; err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return
	}

	if err := s.db.Delete(&expense).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
