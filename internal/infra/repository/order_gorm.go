package repository

import (
	"context"
	"strings"
	"time"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db     *gorm.DB
	policy softDeletePolicy[model.Order]
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{
		db:     db,
		policy: newSoftDeletePolicy[model.Order](db),
	}
}

// 注文の商品は削除済みも必ず返す（既定のスコープは使わない）
func preloadAllProducts(db *gorm.DB) *gorm.DB {
	return db.Preload("Products", func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped().Order("id asc")
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *OrderGormRepository) filtered(ctx context.Context, q repo.OrderListQuery) *gorm.DB {
	tx := scoped(r.db.WithContext(ctx), q.Scope).Model(&model.Order{})

	//期間絞り込み
	if q.DateFrom != nil {
		tx = tx.Where(clause.Gte{Column: clause.Column{Name: "date"}, Value: datatypes.Date(*q.DateFrom)})
	}
	if q.DateTo != nil {
		tx = tx.Where(clause.Lte{Column: clause.Column{Name: "date"}, Value: datatypes.Date(*q.DateTo)})
	}

	//name/descriptionの部分一致（大文字小文字は区別しない）
	for _, term := range q.Terms {
		like := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		tx = tx.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, like, like)
	}

	return tx
}

func (r *OrderGormRepository) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, int64, error) {
	var total int64
	if err := r.filtered(ctx, q).Count(&total).Error; err != nil {
		return []model.Order{}, 0, translateError(err)
	}

	tx := r.filtered(ctx, q)

	//sort（指定なしは日付の新しい順）
	ordering := q.Ordering
	if len(ordering) == 0 {
		ordering = []repo.OrderOrdering{{Column: "date", Desc: true}}
	}
	for _, o := range ordering {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})

	var items []model.Order
	offset := (q.Page - 1) * q.Limit
	if err := preloadAllProducts(tx).Offset(offset).Limit(q.Limit).Find(&items).Error; err != nil {
		return []model.Order{}, 0, translateError(err)
	}

	return items, total, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id int64, scope repo.Scope) (model.Order, error) {
	var o model.Order
	err := preloadAllProducts(scoped(r.db.WithContext(ctx), scope)).Where("id = ?", id).First(&o).Error
	if err != nil {
		return model.Order{}, translateError(err)
	}
	return o, nil
}

// 注文本体だけ保存する。商品は ReplaceProducts で
func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&o).Error; err != nil {
		return model.Order{}, translateError(err)
	}
	return o, nil
}

func (r *OrderGormRepository) Update(ctx context.Context, o model.Order) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"name":        o.Name,
		"description": o.Description,
		"date":        o.Date,
		"updated_at":  o.UpdatedAt,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) ReplaceProducts(ctx context.Context, orderID int64, productIDs []int64) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("order_id = ?", orderID).Delete(&model.OrderProduct{}).Error; err != nil {
		return translateError(err)
	}

	rows := make([]model.OrderProduct, 0, len(productIDs))
	seen := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, model.OrderProduct{OrderID: orderID, ProductID: id})
	}
	if len(rows) == 0 {
		return nil
	}

	if err := db.Create(&rows).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *OrderGormRepository) MarkDeleted(ctx context.Context, id int64, at time.Time) error {
	return r.policy.markDeleted(ctx, id, at)
}

func (r *OrderGormRepository) MarkRestored(ctx context.Context, id int64, at time.Time) error {
	return r.policy.markRestored(ctx, id, at)
}
