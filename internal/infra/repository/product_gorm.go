package repository

import (
	"context"
	"time"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db     *gorm.DB
	policy softDeletePolicy[model.Product]
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{
		db:     db,
		policy: newSoftDeletePolicy[model.Product](db),
	}
}

// 範囲内の商品を id 昇順・ページング付きで返す。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	base := func() *gorm.DB {
		return scoped(r.db.WithContext(ctx), q.Scope).Model(&model.Product{})
	}

	//total（件数）
	if err := base().Count(&total).Error; err != nil {
		return []model.Product{}, 0, translateError(err)
	}

	offset := (q.Page - 1) * q.Limit
	if err := base().Order("id asc").Offset(offset).Limit(q.Limit).Find(&products).Error; err != nil {
		return []model.Product{}, 0, translateError(err)
	}

	return products, total, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64, scope repo.Scope) (model.Product, error) {
	var p model.Product
	err := scoped(r.db.WithContext(ctx), scope).Where("id = ?", id).First(&p).Error
	if err != nil {
		return model.Product{}, translateError(err)
	}
	return p, nil
}

// まとめて取得（存在しないIDは結果に含まれない）
func (r *ProductGormRepository) FindByIDs(ctx context.Context, ids []int64, scope repo.Scope) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	var products []model.Product
	err := scoped(r.db.WithContext(ctx), scope).
		Where("id IN ?", ids).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, translateError(err)
	}
	return products, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, translateError(err)
	}
	return p, nil
}

// 有効な商品だけ更新できる。created_at は触らない
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":       p.Name,
		"price":      p.Price,
		"updated_at": p.UpdatedAt,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 論理削除
func (r *ProductGormRepository) MarkDeleted(ctx context.Context, id int64, at time.Time) error {
	return r.policy.markDeleted(ctx, id, at)
}

// 論理削除の取り消し
func (r *ProductGormRepository) MarkRestored(ctx context.Context, id int64, at time.Time) error {
	return r.policy.markRestored(ctx, id, at)
}
