package repository

import (
	"context"
	"time"

	repo "storeapi/internal/repository"

	"gorm.io/gorm"
)

// 参照範囲ごとにクエリを切り替える
func scoped(db *gorm.DB, scope repo.Scope) *gorm.DB {
	switch scope {
	case repo.ScopeAll:
		return db.Unscoped()
	case repo.ScopeDeleted:
		return db.Unscoped().Where("deleted_at IS NOT NULL")
	default:
		return db
	}
}

// softDeletePolicy は Lifecycle を埋め込んだモデル共通の削除/復元。
// 物理削除はしない。
type softDeletePolicy[T any] struct {
	db *gorm.DB
}

func newSoftDeletePolicy[T any](db *gorm.DB) softDeletePolicy[T] {
	return softDeletePolicy[T]{db: db}
}

// 削除済みでも deleted_at を打ち直す
func (p softDeletePolicy[T]) markDeleted(ctx context.Context, id int64, at time.Time) error {
	return p.stamp(ctx, id, map[string]interface{}{
		"deleted_at": at,
		"updated_at": at,
	})
}

func (p softDeletePolicy[T]) markRestored(ctx context.Context, id int64, at time.Time) error {
	return p.stamp(ctx, id, map[string]interface{}{
		"deleted_at": nil,
		"updated_at": at,
	})
}

func (p softDeletePolicy[T]) stamp(ctx context.Context, id int64, values map[string]interface{}) error {
	res := p.db.WithContext(ctx).
		Unscoped().
		Model(new(T)).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
