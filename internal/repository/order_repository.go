package repository

import (
	"context"
	"time"

	"storeapi/internal/domain/model"
)

// 並び替え対象のカラム
type OrderOrdering struct {
	Column string
	Desc   bool
}

type OrderListQuery struct {
	Scope Scope
	Page  int
	Limit int

	// 日付の範囲（両端を含む）
	DateFrom *time.Time
	DateTo   *time.Time

	// name / description の部分一致。全語がどちらかにマッチすること
	Terms []string

	Ordering []OrderOrdering
}

// 注文の取得結果には常に商品（削除済みを含む）が入る。
type OrderRepository interface {
	List(ctx context.Context, q OrderListQuery) ([]model.Order, int64, error)
	FindByID(ctx context.Context, id int64, scope Scope) (model.Order, error)

	Create(ctx context.Context, o model.Order) (model.Order, error)
	Update(ctx context.Context, o model.Order) error
	// 中間テーブルを丸ごと置き換える
	ReplaceProducts(ctx context.Context, orderID int64, productIDs []int64) error
	MarkDeleted(ctx context.Context, id int64, at time.Time) error
	MarkRestored(ctx context.Context, id int64, at time.Time) error
}
