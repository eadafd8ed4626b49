package currency

import (
	"testing"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// 統計の出力順をここで固定する
func TestSupported_FixedOrder(t *testing.T) {
	want := []model.Currency{
		model.CurrencyUSD,
		model.CurrencyEUR,
		model.CurrencyINR,
		model.CurrencyGBP,
	}
	assert.Equal(t, want, Supported)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported(model.CurrencyUSD))
	assert.True(t, IsSupported(model.CurrencyGBP))
	assert.False(t, IsSupported(model.Currency("JPY")))
	assert.False(t, IsSupported(model.Currency("")))
}

func TestFormat_ContainsAmount(t *testing.T) {
	got := Format(decimal.RequireFromString("59.97"), model.CurrencyUSD)
	assert.Contains(t, got, "59.97")
}

func TestFormat_UnknownCode_Fallback(t *testing.T) {
	got := Format(decimal.RequireFromString("12.5"), model.Currency("ZZZ"))
	assert.Equal(t, "ZZZ 12.50", got)
}
