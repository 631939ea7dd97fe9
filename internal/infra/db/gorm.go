package db

import (
	"fmt"

	"storeapi/internal/config"
	"storeapi/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	}

	switch cfg.DBDriver {
	case config.DriverSQLite:
		return gorm.Open(SQLiteDialector(cfg.SQLitePath), gormCfg)
	case config.DriverPostgres:
		return gorm.Open(postgres.Open(cfg.PostgresDSN()), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", cfg.DBDriver)
	}
}

// Migrate は products / orders / order_products を作る。
func Migrate(db *gorm.DB) error {
	//中間テーブルは自前のモデルで
	if err := db.SetupJoinTable(&model.Order{}, "Products", &model.OrderProduct{}); err != nil {
		return fmt.Errorf("setup join table: %w", err)
	}
	if err := db.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderProduct{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func gormLogLevel(level string) logger.LogLevel {
	if level == "debug" {
		return logger.Info
	}
	return logger.Silent
}
