package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 注文フォームのリアクティブ再計算
type OrderFormHandler struct {
	cfg config.Config
	uc  *usecase.OrderFormUsecase
}

func NewOrderFormHandler(cfg config.Config, uc *usecase.OrderFormUsecase) *OrderFormHandler {
	return &OrderFormHandler{cfg: cfg, uc: uc}
}

func (h *OrderFormHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin")
	admin.Use(middleware.AuthJWT(h.cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.POST("/orders/form/react", h.react)
}

func (h *OrderFormHandler) react(c echo.Context) error {
	var req usecase.FormReactInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.React(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
