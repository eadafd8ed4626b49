package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/schema"

	"github.com/labstack/echo/v4"
)

// リソースのフォーム・テーブル定義を返す。クライアントはこれで画面を組む。
type SchemaHandler struct {
	cfg config.Config
}

func NewSchemaHandler(cfg config.Config) *SchemaHandler {
	return &SchemaHandler{cfg: cfg}
}

func (h *SchemaHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin")
	admin.Use(middleware.AuthJWT(h.cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.GET("/schemas/orders", h.orders)
	admin.GET("/schemas/users", h.users)
}

func (h *SchemaHandler) orders(c echo.Context) error {
	return c.JSON(http.StatusOK, schema.OrderResource())
}

func (h *SchemaHandler) users(c echo.Context) error {
	return c.JSON(http.StatusOK, schema.UserResource())
}
