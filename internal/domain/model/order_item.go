package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemは注文明細1行。
// unit_amountは商品選択時点の価格スナップショットで、保存後は商品から再取得しない。
type OrderItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64           `gorm:"not null;index" json:"order_id"`
	ProductID   int64           `gorm:"not null;index" json:"product_id"`
	Quantity    int64           `gorm:"not null;default:1" json:"quantity"`
	UnitAmount  decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unit_amount"`
	TotalAmount decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
