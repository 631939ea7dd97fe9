package model

import (
	"time"

	"gorm.io/gorm"
)

// Lifecycle は全エンティティ共通のタイムスタンプ。
// deleted_at が NULL のものだけが有効（論理削除）。
type Lifecycle struct {
	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (l Lifecycle) IsDeleted() bool {
	return l.DeletedAt.Valid
}

// 削除日時（有効ならnil）
func (l Lifecycle) DeletedTime() *time.Time {
	if !l.DeletedAt.Valid {
		return nil
	}
	t := l.DeletedAt.Time
	return &t
}
