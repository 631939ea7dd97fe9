package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// FieldErrors はフィールドごとのエラーメッセージ
type FieldErrors map[string][]string

func (f FieldErrors) Add(field string, msg string) {
	f[field] = append(f[field], msg)
}

func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

type HTTPError struct {
	Status  int
	Message string
	Fields  FieldErrors
	Err     error
}

func (e *HTTPError) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("%d: %s (%s)", e.Status, e.Message, strings.Join(keys, ","))
	}
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// 400（フィールドごとの理由つき）
func NewValidationError(fields FieldErrors) error {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: "validation error",
		Fields:  fields,
	}
}

// 500。原因はログ用に持っておく
func newDBError(err error) error {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "db error",
		Err:     err,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// fn内で返したHTTPErrorはそのまま、それ以外はdb error
func asUsecaseError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsHTTPError(err); ok {
		return err
	}
	return newDBError(err)
}

const (
	msgNotFound          = "Not found."
	msgNotFoundOrDeleted = "Item not found or not deleted."
	msgInvalidPage       = "Invalid page."
)
