package stub

import (
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the sqlite database at dsn. Use ":memory:" for tests.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate migrates all models so that the schema is correct.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		Category{},
		Expense{},
		InstallmentExpense{},
		Asset{},
		DividendCard{},
		DividendItem{},
		InvestmentCard{},
		InvestmentItem{},
	)
}
