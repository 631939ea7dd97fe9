package model

import "gorm.io/datatypes"

const (
	OrderNameMaxLen        = 100
	OrderDescriptionMaxLen = 255
)

type Order struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null" json:"name"`
	Description string         `gorm:"type:varchar(255);not null" json:"description"`
	Date        datatypes.Date `gorm:"not null;index" json:"date"`
	// 論理削除された商品も含む（読み込みは常にUnscoped）
	Products []Product `gorm:"many2many:order_products;" json:"products"`
	Lifecycle
}

// 注文と商品の中間テーブル
type OrderProduct struct {
	OrderID   int64 `gorm:"primaryKey"`
	ProductID int64 `gorm:"primaryKey;index"`
}

func (OrderProduct) TableName() string {
	return "order_products"
}
