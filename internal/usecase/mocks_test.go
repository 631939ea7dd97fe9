package usecase_test

import (
	"context"
	"sync"
	"time"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64, scope repo.Scope) (model.Product, error) {
	args := m.Called(ctx, id, scope)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDs(ctx context.Context, ids []int64, scope repo.Scope) ([]model.Product, error) {
	args := m.Called(ctx, ids, scope)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	if fn, ok := args.Get(0).(func(context.Context, model.Product) model.Product); ok {
		return fn(ctx, p), args.Error(1)
	}
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) MarkDeleted(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *ProductRepoMock) MarkRestored(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id int64, scope repo.Scope) (model.Order, error) {
	args := m.Called(ctx, id, scope)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) Update(ctx context.Context, o model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepoMock) ReplaceProducts(ctx context.Context, orderID int64, productIDs []int64) error {
	args := m.Called(ctx, orderID, productIDs)
	return args.Error(0)
}

func (m *OrderRepoMock) MarkDeleted(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *OrderRepoMock) MarkRestored(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type RecorderMock struct{ mock.Mock }

func (m *RecorderMock) Record(entity string, action string) {
	m.Called(entity, action)
}

// tx内でもモックをそのまま渡す
type txReposStub struct {
	products repo.ProductRepository
	orders   repo.OrderRepository
}

func (r *txReposStub) Products() repo.ProductRepository { return r.products }
func (r *txReposStub) Orders() repo.OrderRepository     { return r.orders }

type passThroughTx struct {
	repos *txReposStub
	calls int
}

func (tm *passThroughTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	tm.calls++
	return fn(tm.repos)
}

// 呼ぶたびに1秒進む
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// ナノ秒まで持つ時刻を返す
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
