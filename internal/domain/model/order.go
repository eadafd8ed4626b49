package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCOD          PaymentMethod = "cod"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
)

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

type ShippingMethod string

const (
	ShippingMethodFedex  ShippingMethod = "fedex"
	ShippingMethodUPS    ShippingMethod = "ups"
	ShippingMethodAmazon ShippingMethod = "amazon"
)

// Orderは注文。grand_totalは保存時に明細合計から再計算される。
type Order struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64           `gorm:"not null;index" json:"user_id"`
	PaymentMethod  PaymentMethod   `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentStatus  PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	Status         OrderStatus     `gorm:"type:varchar(20);not null;index;default:'new'" json:"status"`
	Currency       Currency        `gorm:"type:varchar(3);not null;index;default:'USD'" json:"currency"`
	ShippingMethod ShippingMethod  `gorm:"type:varchar(20)" json:"shipping_method"`
	Notes          string          `gorm:"type:text" json:"notes"`
	GrandTotal     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"grand_total"`

	//明細は注文と一緒に削除される
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
