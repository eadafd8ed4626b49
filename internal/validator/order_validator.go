package validator

import (
	"context"
	"errors"

	"app/internal/domain/model"
	"app/internal/usecase"
)

var (
	ErrCustomerRequired     = errors.New("customer is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment_method")
	ErrInvalidPaymentStatus = errors.New("invalid payment_status")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrInvalidShipping      = errors.New("invalid shipping_method")
	ErrNoItems              = errors.New("at least one item is required")
	ErrProductRequired      = errors.New("product is required")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidUnitAmount    = errors.New("invalid unit_amount")
	ErrDuplicateProduct     = errors.New("duplicate product")
)

type orderValidator struct{}

func NewOrderValidator() usecase.OrderValidator {
	return &orderValidator{}
}

// 保存前の入力検証。参照先の存在チェックはusecase側でTx内に行う。
func (v *orderValidator) ValidateSave(ctx context.Context, in usecase.OrderInput) error {
	if in.UserID <= 0 {
		return ErrCustomerRequired
	}

	switch model.PaymentMethod(in.PaymentMethod) {
	case model.PaymentMethodCreditCard, model.PaymentMethodPaypal,
		model.PaymentMethodBankTransfer, model.PaymentMethodCOD:
		// OK
	default:
		return ErrInvalidPaymentMethod
	}

	switch model.PaymentStatus(in.PaymentStatus) {
	case model.PaymentStatusPending, model.PaymentStatusPaid, model.PaymentStatusFailed:
		// OK
	default:
		return ErrInvalidPaymentStatus
	}

	switch model.OrderStatus(in.Status) {
	case model.OrderStatusNew, model.OrderStatusProcessing, model.OrderStatusShipped,
		model.OrderStatusDelivered, model.OrderStatusCanceled:
		// OK
	default:
		return ErrInvalidStatus
	}

	switch model.Currency(in.Currency) {
	case model.CurrencyINR, model.CurrencyUSD, model.CurrencyEUR, model.CurrencyGBP:
		// OK
	default:
		return ErrInvalidCurrency
	}

	//shipping_methodは未指定でもよい
	switch model.ShippingMethod(in.ShippingMethod) {
	case "", model.ShippingMethodFedex, model.ShippingMethodUPS, model.ShippingMethodAmazon:
		// OK
	default:
		return ErrInvalidShipping
	}

	if len(in.Items) == 0 {
		return ErrNoItems
	}

	seen := make(map[int64]bool, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return ErrProductRequired
		}
		if it.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if it.UnitAmount.IsNegative() {
			return ErrInvalidUnitAmount
		}
		//同じ注文内で同じ商品は1行だけ
		if seen[it.ProductID] {
			return ErrDuplicateProduct
		}
		seen[it.ProductID] = true
	}

	return nil
}
