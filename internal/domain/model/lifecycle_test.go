package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestLifecycle_IsDeleted(t *testing.T) {
	var l Lifecycle
	assert.False(t, l.IsDeleted())
	assert.Nil(t, l.DeletedTime())

	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	l.DeletedAt = gorm.DeletedAt{Time: at, Valid: true}
	assert.True(t, l.IsDeleted())
	if assert.NotNil(t, l.DeletedTime()) {
		assert.True(t, l.DeletedTime().Equal(at))
	}
}

func TestOrderProduct_TableName(t *testing.T) {
	assert.Equal(t, "order_products", OrderProduct{}.TableName())
}
