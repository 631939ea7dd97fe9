package usecase

import (
	"context"
	"errors"
	"net/http"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	tx       repo.TransactionManager
	products repo.ProductRepository
	clock    Clock
	pageSize int
	recorder LifecycleRecorder
}

// DI
func NewProductUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	clock Clock,
	pageSize int,
	recorder LifecycleRecorder,
) *ProductUsecase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &ProductUsecase{
		tx:       tx,
		products: products,
		clock:    clock,
		pageSize: pageSize,
		recorder: recorder,
	}
}

// 作成/更新の入力。nilは「送られていない」
type ProductInput struct {
	Name  *string
	Price *decimal.Decimal
}

func validateProductInput(in ProductInput, partial bool) (FieldErrors, string) {
	fe := FieldErrors{}
	name := validateText(fe, "name", in.Name, model.ProductNameMaxLen, partial)

	if in.Price == nil {
		if !partial {
			fe.Add("price", msgRequired)
		}
	} else if validateDecimal(fe, "price", *in.Price, model.ProductPriceMaxDigits, model.ProductPriceDecimalPlaces) {
		if in.Price.IsNegative() {
			fe.Add("price", msgNegativePrice)
		}
	}
	return fe, name
}

// GET /products（有効な商品のみ・id昇順）
func (u *ProductUsecase) List(ctx context.Context, page int) (Page[model.Product], error) {
	if err := checkPage(page); err != nil {
		return Page[model.Product]{}, err
	}

	items, total, err := u.products.List(ctx, repo.ProductListQuery{
		Scope: repo.ScopeActive,
		Page:  page,
		Limit: u.pageSize,
	})
	if err != nil {
		return Page[model.Product]{}, newDBError(err)
	}
	if err := checkPageInRange(page, total, u.pageSize); err != nil {
		return Page[model.Product]{}, err
	}

	return Page[model.Product]{
		Items:    items,
		Count:    total,
		Page:     page,
		PageSize: u.pageSize,
	}, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.products.FindByID(ctx, id, repo.ScopeActive)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, msgNotFound)
	}
	if err != nil {
		return model.Product{}, newDBError(err)
	}
	return p, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	fe, name := validateProductInput(in, false)
	if !fe.Empty() {
		return model.Product{}, NewValidationError(fe)
	}

	var created model.Product
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := nowOf(u.clock)
		p, err := r.Products().Create(ctx, model.Product{
			Name:  name,
			Price: *in.Price,
			Lifecycle: model.Lifecycle{
				CreatedAt: now,
				UpdatedAt: now,
			},
		})
		if err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return model.Product{}, asUsecaseError(err)
	}

	u.recorder.Record(EntityProduct, ActionCreate)
	return created, nil
}

// PUT（全項目必須）
func (u *ProductUsecase) Replace(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	return u.update(ctx, id, in, false)
}

// PATCH（送られた項目だけ）
func (u *ProductUsecase) Patch(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	return u.update(ctx, id, in, true)
}

func (u *ProductUsecase) update(ctx context.Context, id int64, in ProductInput, partial bool) (model.Product, error) {
	fe, name := validateProductInput(in, partial)
	if !fe.Empty() {
		return model.Product{}, NewValidationError(fe)
	}

	var updated model.Product
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//更新対象は有効なものだけ
		p, err := r.Products().FindByID(ctx, id, repo.ScopeActive)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, msgNotFound)
		}
		if err != nil {
			return err
		}

		if in.Name != nil {
			p.Name = name
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		p.UpdatedAt = nowOf(u.clock)

		if err := r.Products().Update(ctx, p); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, msgNotFound)
			}
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return model.Product{}, asUsecaseError(err)
	}

	u.recorder.Record(EntityProduct, ActionUpdate)
	return updated, nil
}

// 論理削除（有効なものだけ）
func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Products().FindByID(ctx, id, repo.ScopeActive); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, msgNotFound)
			}
			return err
		}
		return r.Products().MarkDeleted(ctx, id, nowOf(u.clock))
	})
	if err != nil {
		return asUsecaseError(err)
	}

	u.recorder.Record(EntityProduct, ActionDelete)
	return nil
}

// 復元（削除済みのものだけ）
func (u *ProductUsecase) Restore(ctx context.Context, id int64) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Products().FindByID(ctx, id, repo.ScopeDeleted); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, msgNotFoundOrDeleted)
			}
			return err
		}
		return r.Products().MarkRestored(ctx, id, nowOf(u.clock))
	})
	if err != nil {
		return asUsecaseError(err)
	}

	u.recorder.Record(EntityProduct, ActionRestore)
	return nil
}
