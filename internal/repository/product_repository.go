package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品セレクトの検索条件
type ProductOptionQuery struct {
	Q     string
	Limit int
}

// 商品はこのパネルからは読み取り専用。
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (model.Product, error)

	//検索可能セレクト用の選択肢（有効な商品のみ）
	ListOptions(ctx context.Context, q ProductOptionQuery) ([]model.Product, error)
}
