package stores_test

import (
	"context"

	"github.com/granaboard/client-go/internal/stub"
	"github.com/granaboard/client-go/internal/types"
	"github.com/granaboard/client-go/pkg/stores"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestInstallmentsFetch() {
	installment := stub.InstallmentExpense{
		Name:                 "Fridge",
		TotalAmount:          decimal.NewFromInt(3000),
		InstallmentsQuantity: 10,
		FirstDueDate:         types.NewDate(2026, 2, 1),
	}
	suite.Require().NoError(suite.db.Create(&installment).Error)

	store := stores.NewInstallmentsStore(suite.client, suite.notify)

	err := store.Fetch(context.Background())
	suite.Require().NoError(err)

	items := store.Snapshot().Items
	suite.Require().Len(items, 1)
	suite.Assert().Equal("Fridge", items[0].Name)
	suite.Assert().True(items[0].InstallmentAmount().Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestInstallmentsFetchError() {
	suite.server.Close()

	store := stores.NewInstallmentsStore(suite.client, suite.notify)

	err := store.Fetch(context.Background())
	suite.Require().ErrorIs(err, stores.ErrLoadInstallments)
	suite.Assert().Equal(stores.ErrLoadInstallments.Error(), suite.notify.lastError())
}
