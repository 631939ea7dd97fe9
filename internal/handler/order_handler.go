package handler

import (
	"net/http"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /orders（一覧は日付の範囲・検索・並び替えつき）
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/orders")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.replace)
	g.PATCH("/:id", h.patch)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/restore", h.restore)
}

// GET /orders?date__gte=&date__lte=&search=&ordering=&page=
func (h *OrderHandler) list(c echo.Context) error {
	page, ok := pageParam(c)
	if !ok {
		return invalidPage(c)
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListOrdersInput{
		Page:     page,
		DateGte:  c.QueryParam("date__gte"),
		DateLte:  c.QueryParam("date__lte"),
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toPageResponse(c, out, toOrderResponse))
}

func bindOrder(c echo.Context) (usecase.OrderInput, error) {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return usecase.OrderInput{}, err
	}
	return usecase.OrderInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		ProductIDs:  req.ProductIDs,
	}, nil
}

func (h *OrderHandler) create(c echo.Context) error {
	in, err := bindOrder(c)
	if err != nil {
		return invalidBody(c)
	}

	o, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toOrderResponse(o))
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c)
	}

	o, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponse(o))
}

func (h *OrderHandler) replace(c echo.Context) error {
	return h.update(c, false)
}

func (h *OrderHandler) patch(c echo.Context) error {
	return h.update(c, true)
}

func (h *OrderHandler) update(c echo.Context, partial bool) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c)
	}

	in, err := bindOrder(c)
	if err != nil {
		return invalidBody(c)
	}

	save := h.uc.Replace
	if partial {
		save = h.uc.Patch
	}

	o, err := save(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

func (h *OrderHandler) delete(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) restore(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return notFound(c)
	}

	if err := h.uc.Restore(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
