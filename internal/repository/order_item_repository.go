package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderItemRepository interface {
	//注文の明細を丸ごと入れ替える（保存時は常に再構築する）
	ReplaceForOrder(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
