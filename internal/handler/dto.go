package handler

import (
	"time"

	"storeapi/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 書き込み系のリクエスト（nilは未送信）
type ProductRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

type OrderRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	ProductIDs  *[]int64 `json:"product_ids"`
}

type ProductResponse struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	Name      string     `json:"name"`
	Price     string     `json:"price"`
}

// 商品は id ではなく全項目を入れ子で返す
type OrderResponse struct {
	ID          int64             `json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	IsDeleted   bool              `json:"is_deleted"`
	DeletedAt   *time.Time        `json:"deleted_at"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Date        string            `json:"date"`
	Products    []ProductResponse `json:"products"`
}

type PageResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func toProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		IsDeleted: p.IsDeleted(),
		DeletedAt: p.DeletedTime(),
		Name:      p.Name,
		Price:     p.Price.StringFixed(model.ProductPriceDecimalPlaces),
	}
}

func toOrderResponse(o model.Order) OrderResponse {
	products := make([]ProductResponse, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, toProductResponse(p))
	}

	return OrderResponse{
		ID:          o.ID,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		IsDeleted:   o.IsDeleted(),
		DeletedAt:   o.DeletedTime(),
		Name:        o.Name,
		Description: o.Description,
		Date:        time.Time(o.Date).Format("2006-01-02"),
		Products:    products,
	}
}
