package repository

import (
	"context"
	"testing"
	"time"

	"storeapi/internal/domain/model"
	"storeapi/internal/infra/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var baseTime = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// setupTestDB はテスト毎にインメモリのSQLiteを作る
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(db.SQLiteDialector(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// :memory: は接続ごとに別DBになる
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func seedProduct(t *testing.T, r *ProductGormRepository, name string, price string) model.Product {
	t.Helper()
	p, err := r.Create(context.Background(), model.Product{
		Name:  name,
		Price: decimal.RequireFromString(price),
		Lifecycle: model.Lifecycle{
			CreatedAt: baseTime,
			UpdatedAt: baseTime,
		},
	})
	require.NoError(t, err)
	return p
}

func seedOrder(t *testing.T, r *OrderGormRepository, name string, description string, date string, productIDs ...int64) model.Order {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	require.NoError(t, err)

	o, err := r.Create(context.Background(), model.Order{
		Name:        name,
		Description: description,
		Date:        datatypes.Date(d),
		Lifecycle: model.Lifecycle{
			CreatedAt: baseTime,
			UpdatedAt: baseTime,
		},
	})
	require.NoError(t, err)
	require.NoError(t, r.ReplaceProducts(context.Background(), o.ID, productIDs))
	return o
}

func dateOf(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	require.NoError(t, err)
	return &d
}
