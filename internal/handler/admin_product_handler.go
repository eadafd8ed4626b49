package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 商品セレクトの選択肢API
type AdminProductHandler struct {
	cfg config.Config
	uc  *usecase.ProductUsecase
}

func NewAdminProductHandler(cfg config.Config, uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{cfg: cfg, uc: uc}
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin")
	admin.Use(middleware.AuthJWT(h.cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.GET("/products/options", h.options)
}

func (h *AdminProductHandler) options(c echo.Context) error {
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.ListOptions(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
