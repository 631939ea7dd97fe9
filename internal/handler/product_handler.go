package handler

import (
	"net/http"
	"strconv"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/products")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.replace)
	g.PATCH("/:id", h.patch)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/restore", h.restore)
}

// 数字でないIDは存在しない扱い
func idParam(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *ProductHandler) list(c echo.Context) error {
	page, ok := pageParam(c)
	if !ok {
		return invalidPage(c)
	}

	out, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toPageResponse(c, out, toProductResponse))
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	p, err := h.uc.Create(c.Request().Context(), usecase.ProductInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toProductResponse(p))
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c)
	}

	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *ProductHandler) replace(c echo.Context) error {
	return h.update(c, false)
}

func (h *ProductHandler) patch(c echo.Context) error {
	return h.update(c, true)
}

func (h *ProductHandler) update(c echo.Context, partial bool) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c)
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	in := usecase.ProductInput{Name: req.Name, Price: req.Price}

	ctx := c.Request().Context()
	save := h.uc.Replace
	if partial {
		save = h.uc.Patch
	}

	p, err := save(ctx, id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// POST /products/:id/restore
func (h *ProductHandler) restore(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c)
	}

	if err := h.uc.Restore(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
