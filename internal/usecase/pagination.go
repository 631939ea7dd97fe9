package usecase

import "net/http"

// 一覧の結果（1ページ分）
type Page[T any] struct {
	Items    []T
	Count    int64
	Page     int
	PageSize int
}

func (p Page[T]) LastPage() int {
	return lastPage(p.Count, p.PageSize)
}

func (p Page[T]) HasNext() bool {
	return p.Page < p.LastPage()
}

func (p Page[T]) HasPrevious() bool {
	return p.Page > 1
}

// 0件でも1ページ目はある
func lastPage(count int64, size int) int {
	if count <= 0 || size <= 0 {
		return 1
	}
	return int((count + int64(size) - 1) / int64(size))
}

func checkPage(page int) error {
	if page < 1 {
		return NewHTTPError(http.StatusNotFound, msgInvalidPage)
	}
	return nil
}

func checkPageInRange(page int, count int64, size int) error {
	if page > lastPage(count, size) {
		return NewHTTPError(http.StatusNotFound, msgInvalidPage)
	}
	return nil
}
