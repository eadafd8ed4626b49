package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// 商品セレクトの選択肢を返すだけ（商品はこのパネルからは読み取り専用）
type ProductUsecase struct {
	products repo.ProductRepository
}

// DI
func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

type ProductOptionOutput struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (u *ProductUsecase) ListOptions(ctx context.Context, q string, limit int) ([]ProductOptionOutput, error) {
	if len(q) > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid q")
	}

	products, err := u.products.ListOptions(ctx, repo.ProductOptionQuery{Q: q, Limit: limit})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ProductOptionOutput, 0, len(products))
	for _, p := range products {
		outs = append(outs, ProductOptionOutput{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return outs, nil
}
