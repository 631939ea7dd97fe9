package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// レコード＋中間テーブルの書き込みに失敗（制約違反など）
	ErrIntegrity = errors.New("integrity failure")
)

// Scope は論理削除に対する参照範囲。呼び出し側が毎回明示する。
type Scope int

const (
	// deleted_at IS NULL のみ
	ScopeActive Scope = iota
	// 削除済みも含む全件
	ScopeAll
	// deleted_at IS NOT NULL のみ（restore用）
	ScopeDeleted
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeDeleted:
		return "deleted"
	default:
		return "active"
	}
}
