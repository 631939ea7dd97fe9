package repository

import (
	"context"
	"time"

	"storeapi/internal/domain/model"
)

// 一覧検索（id昇順）
type ProductListQuery struct {
	Scope Scope
	Page  int
	Limit int
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64, scope Scope) (model.Product, error)
	FindByIDs(ctx context.Context, ids []int64, scope Scope) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	MarkDeleted(ctx context.Context, id int64, at time.Time) error
	MarkRestored(ctx context.Context, id int64, at time.Time) error
}
