package model

import "github.com/shopspring/decimal"

const (
	ProductNameMaxLen         = 100
	ProductPriceMaxDigits     = 8
	ProductPriceDecimalPlaces = 2
)

type Product struct {
	ID    int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string          `gorm:"type:varchar(100);not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	Lifecycle
}
