package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ダッシュボード統計とナビゲーションバッジ
type OrderStatsHandler struct {
	cfg config.Config
	uc  *usecase.OrderStatsUsecase
}

func NewOrderStatsHandler(cfg config.Config, uc *usecase.OrderStatsUsecase) *OrderStatsHandler {
	return &OrderStatsHandler{cfg: cfg, uc: uc}
}

func (h *OrderStatsHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin")
	admin.Use(middleware.AuthJWT(h.cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.GET("/stats/orders", h.stats)
	admin.GET("/orders/badge", h.badge)
}

func (h *OrderStatsHandler) stats(c echo.Context) error {
	out, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderStatsHandler) badge(c echo.Context) error {
	out, err := h.uc.NavigationBadge(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
