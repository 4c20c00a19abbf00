package domain

import "github.com/shopspring/decimal"

// MoneyScale é a quantidade de casas decimais usadas em valores monetários, no cálculo e no JSON
const MoneyScale = 2

var hundred = decimal.NewFromInt(100)

// CalculateCommission calcula a comissão de um valor com base na taxa percentual do vendedor.
// Exemplo: R$ 1000,00 com taxa de 8.5 resulta em R$ 85,00.
// O arredondamento é feito para 2 casas, com empate afastando-se do zero.
func CalculateCommission(amount, rate decimal.Decimal) decimal.Decimal {
	if amount.IsZero() || rate.IsZero() {
		return decimal.Zero
	}

	return amount.Mul(rate).Div(hundred).Round(MoneyScale)
}
