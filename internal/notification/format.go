package notification

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formata um valor no padrão brasileiro (1.234,56) com o número de casas informado
func FormatBRL(value decimal.Decimal, places int32) string {
	fixed := value.Abs().StringFixed(places)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if value.Round(places).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}

	return b.String()
}

func salesLabel(count int) string {
	if count == 1 {
		return "venda"
	}
	return "vendas"
}
