package stores_test

import (
	"context"
	"time"

	"github.com/granaboard/client-go/internal/stub"
	"github.com/granaboard/client-go/internal/types"
	"github.com/granaboard/client-go/pkg/records"
	"github.com/granaboard/client-go/pkg/stores"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createDividendCard(month, year int) stub.DividendCard {
	card := stub.DividendCard{Month: month, Year: year}
	if err := suite.db.Create(&card).Error; err != nil {
		suite.Require().FailNowf("Dividend card could not be saved", "%v", err)
	}

	return card
}

func (suite *TestSuiteStandard) createInvestmentCard(month, year int) stub.InvestmentCard {
	card := stub.InvestmentCard{Month: month, Year: year}
	if err := suite.db.Create(&card).Error; err != nil {
		suite.Require().FailNowf("Investment card could not be saved", "%v", err)
	}

	return card
}

func (suite *TestSuiteStandard) TestDividendsFetchPagination() {
	for month := 1; month <= 12; month++ {
		suite.createDividendCard(month, 2025)
	}
	for month := 1; month <= 3; month++ {
		suite.createDividendCard(month, 2026)
	}

	store := stores.NewDividendsStore(suite.client, suite.notify)

	err := store.Fetch(context.Background(), stores.CardFilters{}, 1)
	suite.Require().NoError(err)

	snapshot := store.Snapshot()
	suite.Assert().Len(snapshot.Items, 12)
	suite.Assert().Equal(15, snapshot.Count)

	// Cards are served newest month first.
	suite.Assert().True(snapshot.Items[0].Key().Equal(types.NewMonth(2026, time.March)))

	err = store.Fetch(context.Background(), stores.CardFilters{}, 2)
	suite.Require().NoError(err)

	snapshot = store.Snapshot()
	suite.Assert().Len(snapshot.Items, 3)
	suite.Assert().Equal(15, snapshot.Count)
}

func (suite *TestSuiteStandard) TestDividendsFetchFiltered() {
	suite.createDividendCard(3, 2025)
	suite.createDividendCard(3, 2026)
	suite.createDividendCard(4, 2026)

	store := stores.NewDividendsStore(suite.client, suite.notify)

	err := store.Fetch(context.Background(), stores.CardFilters{Year: 2026}, 1)
	suite.Require().NoError(err)
	suite.Assert().Len(store.Snapshot().Items, 2)

	err = store.Fetch(context.Background(), stores.CardFilters{Year: 2026, Month: 3}, 1)
	suite.Require().NoError(err)

	snapshot := store.Snapshot()
	suite.Require().Len(snapshot.Items, 1)
	suite.Assert().True(snapshot.Items[0].Key().Equal(types.NewMonth(2026, time.March)))
}

func (suite *TestSuiteStandard) TestDividendsAddMonthCard() {
	store := stores.NewDividendsStore(suite.client, suite.notify)
	suite.Require().NoError(store.Fetch(context.Background(), stores.CardFilters{}, 1))

	err := store.AddMonthCard(context.Background(), records.MonthCardEditable{Month: 3, Year: 2026})
	suite.Require().NoError(err)

	items := store.Snapshot().Items
	suite.Require().Len(items, 1)
	suite.Assert().True(items[0].Key().Equal(types.NewMonth(2026, time.March)))
	suite.Assert().Contains(suite.notify.successes, "month card created")
}

func (suite *TestSuiteStandard) TestDividendsAddMonthCardDuplicateLoaded() {
	suite.createDividendCard(3, 2026)

	store := stores.NewDividendsStore(suite.client, suite.notify)
	suite.Require().NoError(store.Fetch(context.Background(), stores.CardFilters{}, 1))

	calls := suite.transport.calls.Load()

	err := store.AddMonthCard(context.Background(), records.MonthCardEditable{Month: 3, Year: 2026})
	suite.Require().ErrorIs(err, stores.ErrMonthAlreadyRegistered)

	// The duplicate is caught locally, no request is made.
	suite.Assert().Equal(calls, suite.transport.calls.Load())
	suite.Assert().Equal(stores.ErrMonthAlreadyRegistered.Error(), suite.notify.lastError())
}

func (suite *TestSuiteStandard) TestDividendsAddMonthCardDuplicateOnServer() {
	// The card exists on the server but is not loaded, so the advisory
	// check passes and the server rejects the create.
	suite.createDividendCard(3, 2026)

	store := stores.NewDividendsStore(suite.client, suite.notify)

	err := store.AddMonthCard(context.Background(), records.MonthCardEditable{Month: 3, Year: 2026})
	suite.Require().Error(err)
	suite.Assert().Equal("month already registered", suite.notify.lastError())
}

func (suite *TestSuiteStandard) TestDividendsAddMonthCardInvalid() {
	store := stores.NewDividendsStore(suite.client, suite.notify)

	err := store.AddMonthCard(context.Background(), records.MonthCardEditable{Month: 13, Year: 2026})
	suite.Require().ErrorIs(err, records.ErrInvalidMonth)
	suite.Assert().Zero(suite.transport.calls.Load())
}

func (suite *TestSuiteStandard) TestDividendsItemLifecycle() {
	card := suite.createDividendCard(3, 2026)
	asset := suite.createAsset("PETR4", records.AssetTypeAcao)

	store := stores.NewDividendsStore(suite.client, suite.notify)
	suite.Require().NoError(store.Fetch(context.Background(), stores.CardFilters{}, 1))

	err := store.AddItem(context.Background(), card.ID, records.DividendItemEditable{
		Asset: &records.Asset{ID: asset.ID},
		Value: decimal.NewFromFloat(12.34),
		Date:  types.NewDate(2026, 3, 10),
	})
	suite.Require().NoError(err)

	items := store.Snapshot().Items
	suite.Require().Len(items, 1)
	suite.Require().Len(items[0].Items, 1)
	suite.Assert().Equal("PETR4", items[0].Items[0].Asset.Code)
	suite.Assert().True(items[0].TotalReceived().Equal(decimal.NewFromFloat(12.34)))

	itemID := items[0].Items[0].ID

	err = store.UpdateItem(context.Background(), itemID, records.DividendItemEditable{
		Asset: &records.Asset{ID: asset.ID},
		Value: decimal.NewFromInt(20),
		Date:  types.NewDate(2026, 3, 11),
	})
	suite.Require().NoError(err)

	items = store.Snapshot().Items
	suite.Require().Len(items[0].Items, 1)
	suite.Assert().True(items[0].TotalReceived().Equal(decimal.NewFromInt(20)))

	err = store.DeleteItem(context.Background(), itemID)
	suite.Require().NoError(err)
	suite.Assert().Empty(store.Snapshot().Items[0].Items)
}

func (suite *TestSuiteStandard) TestDividendsAddItemUnknownAsset() {
	card := suite.createDividendCard(3, 2026)

	store := stores.NewDividendsStore(suite.client, suite.notify)
	suite.Require().NoError(store.Fetch(context.Background(), stores.CardFilters{}, 1))

	err := store.AddItem(context.Background(), card.ID, records.DividendItemEditable{
		Asset: &records.Asset{ID: 9999},
		Value: decimal.NewFromInt(10),
		Date:  types.NewDate(2026, 3, 10),
	})
	suite.Require().Error(err)
	suite.Assert().Equal("could not add the dividend", suite.notify.lastError())
	suite.Assert().Empty(store.Snapshot().Items[0].Items)
}

func (suite *TestSuiteStandard) TestDividendsDeleteCard() {
	card := suite.createDividendCard(3, 2026)
	asset := suite.createAsset("PETR4", records.AssetTypeAcao)

	item := stub.DividendItem{
		CardID:  card.ID,
		AssetID: asset.ID,
		Value:   decimal.NewFromInt(10),
		Date:    types.NewDate(2026, 3, 10),
	}
	suite.Require().NoError(suite.db.Omit("Asset").Create(&item).Error)

	store := stores.NewDividendsStore(suite.client, suite.notify)
	suite.Require().NoError(store.Fetch(context.Background(), stores.CardFilters{}, 1))

	err := store.DeleteCard(context.Background(), card.ID)
	suite.Require().NoError(err)
	suite.Assert().Empty(store.Snapshot().Items)

	// The contained items are gone as well.
	var count int64
	suite.Require().NoError(suite.db.Model(&stub.DividendItem{}).Count(&count).Error)
	suite.Assert().Zero(count)
}

func (suite *TestSuiteStandard) TestInvestmentsMonthCard() {
	store := stores.NewInvestmentsStore(suite.client, suite.notify)
	suite.Require().NoError(store.Fetch(context.Background(), stores.CardFilters{}, 1))

	err := store.AddMonthCard(context.Background(), records.MonthCardEditable{Month: 4, Year: 2026})
	suite.Require().NoError(err)

	calls := suite.transport.calls.Load()

	err = store.AddMonthCard(context.Background(), records.MonthCardEditable{Month: 4, Year: 2026})
	suite.Require().ErrorIs(err, stores.ErrMonthAlreadyRegistered)
	suite.Assert().Equal(calls, suite.transport.calls.Load())
}

func (suite *TestSuiteStandard) TestInvestmentsItemsAndTotals() {
	card := suite.createInvestmentCard(4, 2026)
	asset := suite.createAsset("PETR4", records.AssetTypeAcao)

	store := stores.NewInvestmentsStore(suite.client, suite.notify)
	suite.Require().NoError(store.Fetch(context.Background(), stores.CardFilters{}, 1))

	err := store.AddItem(context.Background(), card.ID, records.InvestmentItemEditable{
		Asset:         &records.Asset{ID: asset.ID},
		OrderType:     records.OrderTypeBuy,
		Quantity:      decimal.NewFromInt(10),
		UnitPrice:     decimal.NewFromInt(5),
		OperationDate: types.NewDate(2026, 4, 1),
	})
	suite.Require().NoError(err)

	err = store.AddItem(context.Background(), card.ID, records.InvestmentItemEditable{
		Asset:         &records.Asset{ID: asset.ID},
		OrderType:     records.OrderTypeSell,
		Quantity:      decimal.NewFromInt(4),
		UnitPrice:     decimal.NewFromInt(5),
		OperationDate: types.NewDate(2026, 4, 15),
	})
	suite.Require().NoError(err)

	items := store.Snapshot().Items
	suite.Require().Len(items, 1)
	suite.Require().Len(items[0].Items, 2)
	suite.Assert().True(items[0].TotalInvested().Equal(decimal.NewFromInt(50)))
	suite.Assert().True(items[0].TotalSold().Equal(decimal.NewFromInt(20)))
}

func (suite *TestSuiteStandard) TestInvestmentsAddItemInvalid() {
	store := stores.NewInvestmentsStore(suite.client, suite.notify)

	err := store.AddItem(context.Background(), 1, records.InvestmentItemEditable{
		Asset:         &records.Asset{ID: 1},
		OrderType:     "HOLD",
		Quantity:      decimal.NewFromInt(1),
		UnitPrice:     decimal.NewFromInt(1),
		OperationDate: types.NewDate(2026, 4, 1),
	})
	suite.Require().ErrorIs(err, records.ErrInvalidOrderType)
	suite.Assert().Zero(suite.transport.calls.Load())
}

func (suite *TestSuiteStandard) TestInvestmentsFetchError() {
	suite.server.Close()

	store := stores.NewInvestmentsStore(suite.client, suite.notify)

	err := store.Fetch(context.Background(), stores.CardFilters{}, 1)
	suite.Require().ErrorIs(err, stores.ErrLoadInvestments)
	suite.Assert().ErrorIs(store.Snapshot().Err, stores.ErrLoadInvestments)
}
