package stub

import (
	"fmt"
	"net/http"

	"github.com/granaboard/client-go/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	recorder := suite.request(http.MethodPost, "/categories/", map[string]any{"name": "  Housing "})
	suite.assertHTTPStatus(http.StatusCreated, recorder)

	var category Category
	suite.decodeResponse(recorder, &category)
	suite.Assert().Equal("Housing", category.Name)
	suite.Assert().NotZero(category.ID)
}

func (suite *TestSuiteStandard) TestCategoryCreateInvalid() {
	recorder := suite.request(http.MethodPost, "/categories/", map[string]any{"name": "  "})
	suite.assertHTTPStatus(http.StatusBadRequest, recorder)

	var response map[string][]string
	suite.decodeResponse(recorder, &response)
	suite.Assert().Equal([]string{"This field may not be blank."}, response["name"])
}

func (suite *TestSuiteStandard) TestCategoryCreateDuplicate() {
	suite.Require().NoError(suite.db.Create(&Category{Name: "Housing"}).Error)

	recorder := suite.request(http.MethodPost, "/categories/", map[string]any{"name": "Housing"})
	suite.assertHTTPStatus(http.StatusBadRequest, recorder)

	var response map[string][]string
	suite.decodeResponse(recorder, &response)
	suite.Assert().Equal([]string{"category with this name already exists."}, response["name"])
}

func (suite *TestSuiteStandard) TestCategoryListSorted() {
	suite.Require().NoError(suite.db.Create(&Category{Name: "Transport"}).Error)
	suite.Require().NoError(suite.db.Create(&Category{Name: "Housing"}).Error)

	recorder := suite.request(http.MethodGet, "/categories/", nil)
	suite.assertHTTPStatus(http.StatusOK, recorder)

	var categories []Category
	suite.decodeResponse(recorder, &categories)
	suite.Require().Len(categories, 2)
	suite.Assert().Equal("Housing", categories[0].Name)
}

func (suite *TestSuiteStandard) TestExpenseCreateResolvesCategory() {
	category := Category{Name: "Housing"}
	suite.Require().NoError(suite.db.Create(&category).Error)

	recorder := suite.request(http.MethodPost, "/expenses/", map[string]any{
		"name":        "Rent",
		"amount":      "1500",
		"due_date":    "2026-03-05",
		"category_id": category.ID,
	})
	suite.assertHTTPStatus(http.StatusCreated, recorder)

	var expense Expense
	suite.decodeResponse(recorder, &expense)
	suite.Assert().Equal("Rent", expense.Name)
	suite.Require().NotNil(expense.Category)
	suite.Assert().Equal("Housing", expense.Category.Name)
}

func (suite *TestSuiteStandard) TestExpenseCreateUnknownCategory() {
	recorder := suite.request(http.MethodPost, "/expenses/", map[string]any{
		"name":        "Rent",
		"amount":      "1500",
		"due_date":    "2026-03-05",
		"category_id": 857,
	})
	suite.assertHTTPStatus(http.StatusBadRequest, recorder)

	var response map[string][]string
	suite.decodeResponse(recorder, &response)
	suite.Assert().Equal([]string{"Invalid pk \"857\" - object does not exist."}, response["category_id"])
}

func (suite *TestSuiteStandard) TestExpensePatchPaid() {
	expense := Expense{Name: "Rent", Amount: decimal.NewFromInt(1500), DueDate: types.NewDate(2026, 3, 5)}
	suite.Require().NoError(suite.db.Create(&expense).Error)

	recorder := suite.request(http.MethodPatch, fmt.Sprintf("/expenses/%d/", expense.ID), map[string]any{
		"paid":         true,
		"payment_date": "2026-03-04",
	})
	suite.assertHTTPStatus(http.StatusOK, recorder)

	var updated Expense
	suite.decodeResponse(recorder, &updated)
	suite.Assert().True(updated.Paid)
	suite.Require().NotNil(updated.PaymentDate)
	suite.Assert().True(updated.PaymentDate.Equal(types.NewDate(2026, 3, 4)))
	// The untouched fields stay as they were.
	suite.Assert().Equal("Rent", updated.Name)
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	expense := Expense{Name: "Rent", Amount: decimal.NewFromInt(1500), DueDate: types.NewDate(2026, 3, 5)}
	suite.Require().NoError(suite.db.Create(&expense).Error)

	recorder := suite.request(http.MethodDelete, fmt.Sprintf("/expenses/%d/", expense.ID), nil)
	suite.assertHTTPStatus(http.StatusNoContent, recorder)

	recorder = suite.request(http.MethodDelete, fmt.Sprintf("/expenses/%d/", expense.ID), nil)
	suite.assertHTTPStatus(http.StatusNotFound, recorder)
}

func (suite *TestSuiteStandard) TestExpenseListFilters() {
	suite.Require().NoError(suite.db.Create(&Expense{Name: "Rent", Amount: decimal.NewFromInt(1500), DueDate: types.NewDate(2026, 3, 5)}).Error)
	suite.Require().NoError(suite.db.Create(&Expense{Name: "Internet", Amount: decimal.NewFromInt(99), DueDate: types.NewDate(2026, 4, 10)}).Error)

	recorder := suite.request(http.MethodGet, "/expenses/?due_date__year=2026&due_date__month=3", nil)
	suite.assertHTTPStatus(http.StatusOK, recorder)

	var expenses []Expense
	suite.decodeResponse(recorder, &expenses)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("Rent", expenses[0].Name)

	recorder = suite.request(http.MethodGet, "/expenses/?search=NET", nil)
	suite.decodeResponse(recorder, &expenses)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("Internet", expenses[0].Name)
}

func (suite *TestSuiteStandard) TestInstallmentCreate() {
	recorder := suite.request(http.MethodPost, "/installments/", map[string]any{
		"name":                  "Fridge",
		"total_amount":          "3000",
		"installments_quantity": 10,
		"first_due_date":        "2026-02-01",
	})
	suite.assertHTTPStatus(http.StatusCreated, recorder)

	var installment InstallmentExpense
	suite.decodeResponse(recorder, &installment)
	suite.Assert().Equal(10, installment.InstallmentsQuantity)
}

func (suite *TestSuiteStandard) TestAssetCreateUppercases() {
	recorder := suite.request(http.MethodPost, "/assets/", map[string]any{"code": "petr4", "type": "ACAO"})
	suite.assertHTTPStatus(http.StatusCreated, recorder)

	var asset Asset
	suite.decodeResponse(recorder, &asset)
	suite.Assert().Equal("PETR4", asset.Code)
}

func (suite *TestSuiteStandard) TestAssetCreateInvalidType() {
	recorder := suite.request(http.MethodPost, "/assets/", map[string]any{"code": "PETR4", "type": "CRYPTO"})
	suite.assertHTTPStatus(http.StatusBadRequest, recorder)

	var response map[string][]string
	suite.decodeResponse(recorder, &response)
	suite.Assert().Equal([]string{"\"CRYPTO\" is not a valid choice."}, response["type"])
}

func (suite *TestSuiteStandard) TestAssetDeleteReferenced() {
	asset := Asset{Code: "PETR4", Type: "ACAO"}
	suite.Require().NoError(suite.db.Create(&asset).Error)

	card := DividendCard{Month: 3, Year: 2026}
	suite.Require().NoError(suite.db.Create(&card).Error)
	item := DividendItem{CardID: card.ID, AssetID: asset.ID, Value: decimal.NewFromInt(10), Date: types.NewDate(2026, 3, 10)}
	suite.Require().NoError(suite.db.Omit("Asset").Create(&item).Error)

	recorder := suite.request(http.MethodDelete, fmt.Sprintf("/assets/%d/", asset.ID), nil)
	suite.assertHTTPStatus(http.StatusBadRequest, recorder)

	var count int64
	suite.Require().NoError(suite.db.Model(&Asset{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestDividendCardCreate() {
	recorder := suite.request(http.MethodPost, "/dividend-cards/", map[string]any{"month": 3, "year": 2026})
	suite.assertHTTPStatus(http.StatusCreated, recorder)

	var card DividendCard
	suite.decodeResponse(recorder, &card)
	suite.Assert().Equal(3, card.Month)
	suite.Assert().NotNil(card.Items)
}

func (suite *TestSuiteStandard) TestDividendCardCreateDuplicate() {
	suite.Require().NoError(suite.db.Create(&DividendCard{Month: 3, Year: 2026}).Error)

	recorder := suite.request(http.MethodPost, "/dividend-cards/", map[string]any{"month": 3, "year": 2026})
	suite.assertHTTPStatus(http.StatusBadRequest, recorder)

	var response map[string]string
	suite.decodeResponse(recorder, &response)
	suite.Assert().Equal("month already registered", response["detail"])
}

func (suite *TestSuiteStandard) TestDividendCardCreateInvalidMonth() {
	recorder := suite.request(http.MethodPost, "/dividend-cards/", map[string]any{"month": 13, "year": 2026})
	suite.assertHTTPStatus(http.StatusBadRequest, recorder)

	var response map[string][]string
	suite.decodeResponse(recorder, &response)
	suite.Assert().Equal([]string{"Ensure this value is between 1 and 12."}, response["month"])
}

func (suite *TestSuiteStandard) TestDividendCardPagination() {
	for month := 1; month <= 12; month++ {
		suite.Require().NoError(suite.db.Create(&DividendCard{Month: month, Year: 2025}).Error)
	}
	suite.Require().NoError(suite.db.Create(&DividendCard{Month: 1, Year: 2026}).Error)

	recorder := suite.request(http.MethodGet, "/dividend-cards/", nil)
	suite.assertHTTPStatus(http.StatusOK, recorder)

	var envelope struct {
		Count    int            `json:"count"`
		Next     *string        `json:"next"`
		Previous *string        `json:"previous"`
		Results  []DividendCard `json:"results"`
	}
	suite.decodeResponse(recorder, &envelope)

	suite.Assert().Equal(13, envelope.Count)
	suite.Assert().Len(envelope.Results, 12)
	suite.Require().NotNil(envelope.Next)
	suite.Assert().Contains(*envelope.Next, "page=2")
	suite.Assert().Nil(envelope.Previous)

	recorder = suite.request(http.MethodGet, "/dividend-cards/?page=2", nil)
	suite.decodeResponse(recorder, &envelope)

	suite.Assert().Len(envelope.Results, 1)
	suite.Assert().Nil(envelope.Next)
	suite.Require().NotNil(envelope.Previous)
	suite.Assert().Contains(*envelope.Previous, "page=1")
}

func (suite *TestSuiteStandard) TestDividendItemCreateRequiresCard() {
	recorder := suite.request(http.MethodPost, "/dividend-items/", map[string]any{
		"value": "10",
		"date":  "2026-03-10",
	})
	suite.assertHTTPStatus(http.StatusBadRequest, recorder)

	var response map[string][]string
	suite.decodeResponse(recorder, &response)
	suite.Assert().Equal([]string{"This field is required."}, response["card"])
}

func (suite *TestSuiteStandard) TestDividendCardDeleteCascades() {
	card := DividendCard{Month: 3, Year: 2026}
	suite.Require().NoError(suite.db.Create(&card).Error)

	asset := Asset{Code: "PETR4", Type: "ACAO"}
	suite.Require().NoError(suite.db.Create(&asset).Error)

	item := DividendItem{CardID: card.ID, AssetID: asset.ID, Value: decimal.NewFromInt(10), Date: types.NewDate(2026, 3, 10)}
	suite.Require().NoError(suite.db.Omit("Asset").Create(&item).Error)

	recorder := suite.request(http.MethodDelete, fmt.Sprintf("/dividend-cards/%d/", card.ID), nil)
	suite.assertHTTPStatus(http.StatusNoContent, recorder)

	var count int64
	suite.Require().NoError(suite.db.Model(&DividendItem{}).Count(&count).Error)
	suite.Assert().Zero(count)
}

func (suite *TestSuiteStandard) TestInvestmentItemCreateInvalidOrderType() {
	card := InvestmentCard{Month: 4, Year: 2026}
	suite.Require().NoError(suite.db.Create(&card).Error)

	asset := Asset{Code: "PETR4", Type: "ACAO"}
	suite.Require().NoError(suite.db.Create(&asset).Error)

	recorder := suite.request(http.MethodPost, "/investment-items/", map[string]any{
		"card":           card.ID,
		"asset_id":       asset.ID,
		"order_type":     "HOLD",
		"quantity":       "1",
		"unit_price":     "1",
		"operation_date": "2026-04-01",
	})
	suite.assertHTTPStatus(http.StatusBadRequest, recorder)

	var response map[string][]string
	suite.decodeResponse(recorder, &response)
	suite.Assert().Equal([]string{"\"HOLD\" is not a valid choice."}, response["order_type"])
}

func (suite *TestSuiteStandard) TestInvestmentCardListItemsOrdered() {
	card := InvestmentCard{Month: 4, Year: 2026}
	suite.Require().NoError(suite.db.Create(&card).Error)

	asset := Asset{Code: "PETR4", Type: "ACAO"}
	suite.Require().NoError(suite.db.Create(&asset).Error)

	late := InvestmentItem{CardID: card.ID, AssetID: asset.ID, OrderType: "BUY", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5), OperationDate: types.NewDate(2026, 4, 20)}
	suite.Require().NoError(suite.db.Omit("Asset").Create(&late).Error)
	early := InvestmentItem{CardID: card.ID, AssetID: asset.ID, OrderType: "SELL", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5), OperationDate: types.NewDate(2026, 4, 2)}
	suite.Require().NoError(suite.db.Omit("Asset").Create(&early).Error)

	recorder := suite.request(http.MethodGet, "/investment-cards/", nil)
	suite.assertHTTPStatus(http.StatusOK, recorder)

	var envelope struct {
		Results []InvestmentCard `json:"results"`
	}
	suite.decodeResponse(recorder, &envelope)

	suite.Require().Len(envelope.Results, 1)
	suite.Require().Len(envelope.Results[0].Items, 2)
	suite.Assert().Equal("SELL", envelope.Results[0].Items[0].OrderType)
}
