package inventory

import "github.com/shopspring/decimal"

// MarginPct implementa el cálculo de margen bruto (servicio de dominio).
// Margen = (Precio - Costo) / Precio * 100, redondeado a un decimal.
// El segundo retorno es false cuando costo o precio son cero: la razón no
// tiene sentido y dividiría por cero.
func MarginPct(cost, price decimal.Decimal) (decimal.Decimal, bool) {
	if cost.IsZero() || price.IsZero() {
		return decimal.Zero, false
	}
	hundred := decimal.NewFromInt(100)
	return price.Sub(cost).Div(price).Mul(hundred).Round(1), true
}
