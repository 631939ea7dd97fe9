package repository

import (
	"errors"
	"fmt"
	"strings"

	repo "storeapi/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DBのエラーをrepositoryのエラーに寄せる
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}

	// 23xxx: integrity constraint violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return fmt.Errorf("%w: %s (SQLSTATE %s)", repo.ErrIntegrity, pgErr.Message, pgErr.Code)
	}
	return err
}
