package usecase

import "time"

type Clock interface {
	Now() time.Time
}

// DBの精度（マイクロ秒）に揃えた現在時刻。返した値と読み直した値を一致させる
func nowOf(c Clock) time.Time {
	return c.Now().UTC().Truncate(time.Microsecond)
}

// 作成/更新/削除/復元の回数を記録する（metrics）
type LifecycleRecorder interface {
	Record(entity string, action string)
}

type nopRecorder struct{}

func (nopRecorder) Record(string, string) {}

const (
	EntityProduct = "product"
	EntityOrder   = "order"

	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionRestore = "restore"
)
