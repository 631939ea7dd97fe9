package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"gorm.io/datatypes"
)

type OrderUsecase struct {
	tx       repo.TransactionManager
	orders   repo.OrderRepository
	clock    Clock
	pageSize int
	recorder LifecycleRecorder
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	clock Clock,
	pageSize int,
	recorder LifecycleRecorder,
) *OrderUsecase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &OrderUsecase{
		tx:       tx,
		orders:   orders,
		clock:    clock,
		pageSize: pageSize,
		recorder: recorder,
	}
}

type OrderInput struct {
	Name        *string
	Description *string
	Date        *string // YYYY-MM-DD
	ProductIDs  *[]int64
}

type orderFields struct {
	name        string
	description string
	date        time.Time
}

// create=true のときだけ product_ids の空を弾く
func validateOrderInput(in OrderInput, partial bool, create bool) (FieldErrors, orderFields) {
	fe := FieldErrors{}
	var f orderFields

	f.name = validateText(fe, "name", in.Name, model.OrderNameMaxLen, partial)
	f.description = validateText(fe, "description", in.Description, model.OrderDescriptionMaxLen, partial)

	if in.Date == nil {
		if !partial {
			fe.Add("date", msgRequired)
		}
	} else {
		d, err := parseDate(*in.Date)
		if err != nil {
			fe.Add("date", msgDateFormat)
		}
		f.date = d
	}

	if in.ProductIDs == nil {
		if !partial {
			fe.Add("product_ids", msgRequired)
		}
	} else if create && len(*in.ProductIDs) == 0 {
		fe.Add("product_ids", msgNoProducts)
	}

	return fe, f
}

// 商品は削除済みも含めて解決する
func resolveProducts(ctx context.Context, r repo.TxRepos, ids []int64) ([]int64, error) {
	found, err := r.Products().FindByIDs(ctx, ids, repo.ScopeAll)
	if err != nil {
		return nil, err
	}

	exists := make(map[int64]struct{}, len(found))
	for _, p := range found {
		exists[p.ID] = struct{}{}
	}

	fe := FieldErrors{}
	resolved := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := exists[id]; !ok {
			fe.Add("product_ids", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		resolved = append(resolved, id)
	}
	if !fe.Empty() {
		return nil, NewValidationError(fe)
	}
	return resolved, nil
}

// GET /orders の入力（クエリ文字列のまま）
type ListOrdersInput struct {
	Page     int
	DateGte  string
	DateLte  string
	Search   string
	Ordering string
}

var orderingFields = map[string]struct{}{
	"name": {},
	"date": {},
}

// "-date,name" -> [{date desc} {name asc}]（知らない項目は無視）
func parseOrdering(s string) []repo.OrderOrdering {
	var out []repo.OrderOrdering
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		col := strings.TrimPrefix(part, "-")
		if _, ok := orderingFields[col]; !ok {
			continue
		}
		out = append(out, repo.OrderOrdering{Column: col, Desc: desc})
	}
	return out
}

func (u *OrderUsecase) List(ctx context.Context, in ListOrdersInput) (Page[model.Order], error) {
	if err := checkPage(in.Page); err != nil {
		return Page[model.Order]{}, err
	}

	q := repo.OrderListQuery{
		Scope:    repo.ScopeActive,
		Page:     in.Page,
		Limit:    u.pageSize,
		Terms:    splitTerms(in.Search),
		Ordering: parseOrdering(in.Ordering),
	}

	//日付の範囲
	fe := FieldErrors{}
	if v := strings.TrimSpace(in.DateGte); v != "" {
		d, err := parseDate(v)
		if err != nil {
			fe.Add("date__gte", msgInvalidDate)
		} else {
			q.DateFrom = &d
		}
	}
	if v := strings.TrimSpace(in.DateLte); v != "" {
		d, err := parseDate(v)
		if err != nil {
			fe.Add("date__lte", msgInvalidDate)
		} else {
			q.DateTo = &d
		}
	}
	if !fe.Empty() {
		return Page[model.Order]{}, NewValidationError(fe)
	}

	items, total, err := u.orders.List(ctx, q)
	if err != nil {
		return Page[model.Order]{}, newDBError(err)
	}
	if err := checkPageInRange(in.Page, total, u.pageSize); err != nil {
		return Page[model.Order]{}, err
	}

	return Page[model.Order]{
		Items:    items,
		Count:    total,
		Page:     in.Page,
		PageSize: u.pageSize,
	}, nil
}

func (u *OrderUsecase) Get(ctx context.Context, id int64) (model.Order, error) {
	o, err := u.orders.FindByID(ctx, id, repo.ScopeActive)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, msgNotFound)
	}
	if err != nil {
		return model.Order{}, newDBError(err)
	}
	return o, nil
}

// 注文本体と中間テーブルは同じトランザクションで
func (u *OrderUsecase) Create(ctx context.Context, in OrderInput) (model.Order, error) {
	fe, f := validateOrderInput(in, false, true)
	if !fe.Empty() {
		return model.Order{}, NewValidationError(fe)
	}

	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		productIDs, err := resolveProducts(ctx, r, *in.ProductIDs)
		if err != nil {
			return err
		}

		now := nowOf(u.clock)
		o, err := r.Orders().Create(ctx, model.Order{
			Name:        f.name,
			Description: f.description,
			Date:        datatypes.Date(f.date),
			Lifecycle: model.Lifecycle{
				CreatedAt: now,
				UpdatedAt: now,
			},
		})
		if err != nil {
			return err
		}

		if err := r.Orders().ReplaceProducts(ctx, o.ID, productIDs); err != nil {
			return err
		}

		//商品つきで読み直す
		out, err = r.Orders().FindByID(ctx, o.ID, repo.ScopeActive)
		return err
	})
	if err != nil {
		return model.Order{}, asUsecaseError(err)
	}

	u.recorder.Record(EntityOrder, ActionCreate)
	return out, nil
}

func (u *OrderUsecase) Replace(ctx context.Context, id int64, in OrderInput) (model.Order, error) {
	return u.update(ctx, id, in, false)
}

// product_ids がなければ商品はそのまま
func (u *OrderUsecase) Patch(ctx context.Context, id int64, in OrderInput) (model.Order, error) {
	return u.update(ctx, id, in, true)
}

func (u *OrderUsecase) update(ctx context.Context, id int64, in OrderInput, partial bool) (model.Order, error) {
	fe, f := validateOrderInput(in, partial, false)
	if !fe.Empty() {
		return model.Order{}, NewValidationError(fe)
	}

	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, id, repo.ScopeActive)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, msgNotFound)
		}
		if err != nil {
			return err
		}

		var productIDs []int64
		if in.ProductIDs != nil {
			productIDs, err = resolveProducts(ctx, r, *in.ProductIDs)
			if err != nil {
				return err
			}
		}

		if in.Name != nil {
			o.Name = f.name
		}
		if in.Description != nil {
			o.Description = f.description
		}
		if in.Date != nil {
			o.Date = datatypes.Date(f.date)
		}
		o.UpdatedAt = nowOf(u.clock)

		if err := r.Orders().Update(ctx, o); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, msgNotFound)
			}
			return err
		}

		//送られたら丸ごと置き換え（空も可）
		if in.ProductIDs != nil {
			if err := r.Orders().ReplaceProducts(ctx, o.ID, productIDs); err != nil {
				return err
			}
		}

		out, err = r.Orders().FindByID(ctx, o.ID, repo.ScopeActive)
		return err
	})
	if err != nil {
		return model.Order{}, asUsecaseError(err)
	}

	u.recorder.Record(EntityOrder, ActionUpdate)
	return out, nil
}

func (u *OrderUsecase) Delete(ctx context.Context, id int64) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, id, repo.ScopeActive); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, msgNotFound)
			}
			return err
		}
		return r.Orders().MarkDeleted(ctx, id, nowOf(u.clock))
	})
	if err != nil {
		return asUsecaseError(err)
	}

	u.recorder.Record(EntityOrder, ActionDelete)
	return nil
}

func (u *OrderUsecase) Restore(ctx context.Context, id int64) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, id, repo.ScopeDeleted); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, msgNotFoundOrDeleted)
			}
			return err
		}
		return r.Orders().MarkRestored(ctx, id, nowOf(u.clock))
	})
	if err != nil {
		return asUsecaseError(err)
	}

	u.recorder.Record(EntityOrder, ActionRestore)
	return nil
}
