// Package currency は通貨の表示整形。
package currency

import (
	"app/internal/domain/model"

	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported は対応通貨。統計の出力順はこの並びで固定。
var Supported = []model.Currency{
	model.CurrencyUSD,
	model.CurrencyEUR,
	model.CurrencyINR,
	model.CurrencyGBP,
}

// IsSupported はcodeが対応通貨かどうか。
func IsSupported(code model.Currency) bool {
	for _, c := range Supported {
		if c == code {
			return true
		}
	}
	return false
}

// Format は金額を通貨記号付きで整形する。
// ISOコードとして解釈できないものは「CODE 0.00」形式で返す。
func Format(amount decimal.Decimal, code model.Currency) string {
	unit, err := xcurrency.ParseISO(string(code))
	if err != nil {
		return string(code) + " " + amount.StringFixed(2)
	}

	f, _ := amount.Round(2).Float64()
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", xcurrency.Symbol(unit.Amount(f)))
}
