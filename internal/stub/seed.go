package stub

import (
	"time"

	"github.com/granaboard/client-go/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed fills an empty database with a small demo dataset for local
// development.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	month := types.MonthOf(now)

	housing := Category{Name: "Housing"}
	groceries := Category{Name: "Groceries"}
	if err := db.Create(&housing).Error; err != nil {
		return err
	}
	if err := db.Create(&groceries).Error; err != nil {
		return err
	}

	expenses := []Expense{
		{
			Name:       "Rent",
			Amount:     decimal.NewFromInt(1500),
			DueDate:    types.NewDate(month.Year(), month.Month(), 5),
			CategoryID: &housing.ID,
		},
		{
			Name:       "Supermarket",
			Amount:     decimal.NewFromFloat(412.37),
			DueDate:    types.NewDate(month.Year(), month.Month(), 12),
			Paid:       true,
			CategoryID: &groceries.ID,
		},
	}
	if err := db.Create(&expenses).Error; err != nil {
		return err
	}

	installment := InstallmentExpense{
		Name:                 "Notebook",
		TotalAmount:          decimal.NewFromInt(3600),
		InstallmentsQuantity: 12,
		FirstDueDate:         types.NewDate(month.Year(), month.Month(), 20),
	}
	if err := db.Create(&installment).Error; err != nil {
		return err
	}

	petr4 := Asset{Code: "PETR4", Type: "ACAO"}
	hglg11 := Asset{Code: "HGLG11", Type: "FII"}
	if err := db.Create(&petr4).Error; err != nil {
		return err
	}
	if err := db.Create(&hglg11).Error; err != nil {
		return err
	}

	dividendCard := DividendCard{Month: int(month.Month()), Year: month.Year()}
	if err := db.Create(&dividendCard).Error; err != nil {
		return err
	}
	dividends := []DividendItem{
		{CardID: dividendCard.ID, AssetID: hglg11.ID, Value: decimal.NewFromFloat(12.40), Date: types.NewDate(month.Year(), month.Month(), 14)},
		{CardID: dividendCard.ID, AssetID: petr4.ID, Value: decimal.NewFromFloat(35.02), Date: types.NewDate(month.Year(), month.Month(), 22)},
	}
	if err := db.Create(&dividends).Error; err != nil {
		return err
	}

	investmentCard := InvestmentCard{Month: int(month.Month()), Year: month.Year()}
	if err := db.Create(&investmentCard).Error; err != nil {
		return err
	}
	investments := []InvestmentItem{
		{CardID: investmentCard.ID, AssetID: petr4.ID, OrderType: "BUY", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromFloat(38.12), OperationDate: types.NewDate(month.Year(), month.Month(), 3)},
		{CardID: investmentCard.ID, AssetID: hglg11.ID, OrderType: "BUY", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromFloat(160.55), OperationDate: types.NewDate(month.Year(), month.Month(), 10)},
	}

	return db.Create(&investments).Error
}
