// Package pricing は注文明細のリアクティブな金額計算。
// UIやDBの型に依存しない純粋な状態遷移関数として持つ。
package pricing

import "github.com/shopspring/decimal"

// LineState は編集中の明細1行の状態。
type LineState struct {
	Key         string          `json:"key"`
	ProductID   int64           `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	UnitAmount  decimal.Decimal `json:"unit_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// 商品が選択されたときの遷移。
// 見つからない商品は価格0として扱う（エラーにはしない）。
// 数量が未入力なら1で計算する。
func OnProductSelected(s LineState, productID int64, price decimal.Decimal, found bool) LineState {
	if !found {
		price = decimal.Zero
	}
	s.ProductID = productID
	s.UnitAmount = price
	s.TotalAmount = price.Mul(decimal.NewFromInt(effectiveQuantity(s.Quantity)))
	return s
}

// 数量が変わったときの遷移。
// 数量の下限チェックはフォーム層の責務で、ここでは計算だけする。
func OnQuantityChanged(s LineState, quantity int64) LineState {
	s.Quantity = quantity
	s.TotalAmount = s.UnitAmount.Mul(decimal.NewFromInt(quantity))
	return s
}

// 保存済みの行を編集用に読み込んだときの遷移。
// total_amountは保存値を信用せずquantity×unit_amountで再計算する。
// unit_amountは商品から再取得しない（過去の注文の価格を変えないため）。
func OnHydrate(s LineState) LineState {
	s.TotalAmount = s.UnitAmount.Mul(decimal.NewFromInt(effectiveQuantity(s.Quantity)))
	return s
}

// ComputeGrandTotal は明細合計。total_amount未設定は0として足す。
// 純粋関数で、順序にも呼び出し回数にも依存しない。
func ComputeGrandTotal(items []LineState) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalAmount)
	}
	return total
}

func effectiveQuantity(q int64) int64 {
	if q <= 0 {
		return 1
	}
	return q
}
