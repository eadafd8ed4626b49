package usecase

import (
	"context"
	"net/http"

	"app/internal/currency"
	"app/internal/domain/model"
	"app/internal/pricing"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// フォームから届くイベント種別
const (
	FormEventProductSelected = "product_selected"
	FormEventQuantityChanged = "quantity_changed"
	FormEventHydrate         = "hydrate"
)

// 編集中フォームの再計算。状態はクライアントが持ち、ここは計算だけする。
type OrderFormUsecase struct {
	products repo.ProductRepository
}

func NewOrderFormUsecase(products repo.ProductRepository) *OrderFormUsecase {
	return &OrderFormUsecase{products: products}
}

type FormReactInput struct {
	Event string `json:"event"`

	//対象の行
	Line pricing.LineState `json:"line"`

	//同じrepeater内の他の行（合計プレビューと重複チェックに使う）
	Siblings []pricing.LineState `json:"siblings"`

	Currency string `json:"currency"`
}

type FormReactOutput struct {
	Line pricing.LineState `json:"line"`

	//編集中のプレビュー値。保存時に改めて再計算される
	GrandTotal        decimal.Decimal `json:"grand_total"`
	GrandTotalDisplay string          `json:"grand_total_display"`
}

func (u *OrderFormUsecase) React(ctx context.Context, in FormReactInput) (FormReactOutput, error) {
	line := in.Line
	if line.Key == "" {
		line.Key = uuid.NewString()
	}

	switch in.Event {
	case FormEventProductSelected:
		if line.ProductID <= 0 {
			return FormReactOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}

		//同じ注文内で同じ商品は選べない
		for _, s := range in.Siblings {
			if s.Key != line.Key && s.ProductID == line.ProductID {
				return FormReactOutput{}, NewHTTPError(http.StatusBadRequest, "duplicate product")
			}
		}

		//見つからない商品は価格0として扱う（エラーにしない）
		price := decimal.Zero
		found := false
		p, err := u.products.FindByID(ctx, line.ProductID)
		if err == nil {
			price = p.Price
			found = true
		} else if err != repo.ErrNotFound {
			return FormReactOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		line = pricing.OnProductSelected(line, line.ProductID, price, found)

	case FormEventQuantityChanged:
		//最小数量はフォーム層で弾く（計算エンジンは検証しない）
		if line.Quantity < 1 {
			return FormReactOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		line = pricing.OnQuantityChanged(line, line.Quantity)

	case FormEventHydrate:
		line = pricing.OnHydrate(line)

	default:
		return FormReactOutput{}, NewHTTPError(http.StatusBadRequest, "invalid event")
	}

	//合計プレビュー
	all := make([]pricing.LineState, 0, len(in.Siblings)+1)
	for _, s := range in.Siblings {
		if s.Key == line.Key {
			continue
		}
		all = append(all, s)
	}
	all = append(all, line)
	grandTotal := pricing.ComputeGrandTotal(all)

	cur := model.Currency(in.Currency)
	if in.Currency == "" {
		cur = model.CurrencyUSD
	}

	return FormReactOutput{
		Line:              line,
		GrandTotal:        grandTotal,
		GrandTotalDisplay: currency.Format(grandTotal, cur),
	}, nil
}
