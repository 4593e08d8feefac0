package services

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PricedLine is one resolved cart line: the unit price is already the menu price.
type PricedLine struct {
	Price    decimal.Decimal
	Quantity int
}

func (l PricedLine) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals applies tax as an exact percentage of the subtotal, then
// subtracts the discount. The total is not floored at zero.
func ComputeTotals(lines []PricedLine, taxRatePercent, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
	}
	tax := subtotal.Mul(taxRatePercent).Div(hundred)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(tax).Sub(discount),
	}
}
