package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ?page=（既定1）。数字でなければ false
func pageParam(c echo.Context) (int, bool) {
	v := c.QueryParam("page")
	if v == "" {
		return 1, true
	}
	page, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return page, true
}

func invalidPage(c echo.Context) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invalid page."})
}

// 同じクエリでページだけ差し替えたURL
func pageLink(c echo.Context, page int) *string {
	q := url.Values{}
	for k, v := range c.QueryParams() {
		q[k] = append([]string(nil), v...)
	}
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}

	u := url.URL{
		Scheme:   c.Scheme(),
		Host:     c.Request().Host,
		Path:     c.Request().URL.Path,
		RawQuery: q.Encode(),
	}
	s := u.String()
	return &s
}

func toPageResponse[M any, R any](c echo.Context, p usecase.Page[M], conv func(M) R) PageResponse[R] {
	results := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		results = append(results, conv(item))
	}

	out := PageResponse[R]{
		Count:   p.Count,
		Results: results,
	}
	if p.HasNext() {
		out.Next = pageLink(c, p.Page+1)
	}
	if p.HasPrevious() {
		out.Previous = pageLink(c, p.Page-1)
	}
	return out
}
