package usecase

import (
	"context"
	"net/http"

	"app/internal/currency"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// ナビゲーションバッジをsuccessにする閾値（これを超えたらsuccess）
const navigationBadgeThreshold = 10

type BadgeSeverity string

const (
	BadgeSeveritySuccess BadgeSeverity = "success"
	BadgeSeverityDanger  BadgeSeverity = "danger"
)

type OrderStatsUsecase struct {
	orders repo.OrderRepository
}

func NewOrderStatsUsecase(orders repo.OrderRepository) *OrderStatsUsecase {
	return &OrderStatsUsecase{orders: orders}
}

type CurrencyAverage struct {
	Currency string          `json:"currency"`
	Average  decimal.Decimal `json:"average"`
	Display  string          `json:"display"`
}

type OrderStatsOutput struct {
	NewOrders        int64 `json:"new_orders"`
	ProcessingOrders int64 `json:"processing_orders"`
	ShippedOrders    int64 `json:"shipped_orders"`

	//対応通貨の固定順。注文が0件の通貨は含めない（平均は未定義）
	AveragePriceByCurrency []CurrencyAverage `json:"average_price_by_currency"`
}

type NavigationBadgeOutput struct {
	Count    int64         `json:"count"`
	Severity BadgeSeverity `json:"severity"`
}

// ダッシュボードの統計
func (u *OrderStatsUsecase) Stats(ctx context.Context) (OrderStatsOutput, error) {
	newCount, err := u.orders.CountByStatus(ctx, model.OrderStatusNew)
	if err != nil {
		return OrderStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	processingCount, err := u.orders.CountByStatus(ctx, model.OrderStatusProcessing)
	if err != nil {
		return OrderStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	shippedCount, err := u.orders.CountByStatus(ctx, model.OrderStatusShipped)
	if err != nil {
		return OrderStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	averages := make([]CurrencyAverage, 0, len(currency.Supported))
	for _, cur := range currency.Supported {
		avg, ok, err := u.orders.AverageGrandTotalByCurrency(ctx, cur)
		if err != nil {
			return OrderStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			//0件の通貨は出力しない
			continue
		}

		avg = avg.Round(2)
		averages = append(averages, CurrencyAverage{
			Currency: string(cur),
			Average:  avg,
			Display:  currency.Format(avg, cur),
		})
	}

	return OrderStatsOutput{
		NewOrders:              newCount,
		ProcessingOrders:       processingCount,
		ShippedOrders:          shippedCount,
		AveragePriceByCurrency: averages,
	}, nil
}

// ナビゲーションバッジ（全注文数と色）
func (u *OrderStatsUsecase) NavigationBadge(ctx context.Context) (NavigationBadgeOutput, error) {
	count, err := u.orders.CountAll(ctx)
	if err != nil {
		return NavigationBadgeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	severity := BadgeSeverityDanger
	if count > navigationBadgeThreshold {
		severity = BadgeSeveritySuccess
	}

	return NavigationBadgeOutput{Count: count, Severity: severity}, nil
}
