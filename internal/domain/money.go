package domain

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// formatMoney mantém as duas casas decimais na saída ("85.00" e não "85")
func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyScale)
}
