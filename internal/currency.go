package internal

import (
	"fmt"

	"stockfolio/internal/domain"

	"github.com/shopspring/decimal"
)

// All stored values are USD. EUR display values are derived at a fixed rate;
// live rate sourcing is deliberately out of scope.
var usdToEurRate = decimal.NewFromFloat(1.11)

// Convert renders a USD amount in the target display currency, rounded to 2
// decimals. The currency enum is closed at the data-model level, so an
// unknown value here is a programmer error, not user input.
func Convert(amountUSD decimal.Decimal, currency domain.Currency) decimal.Decimal {
	switch currency {
	case domain.CurrencyUSD:
		return amountUSD.Round(2)
	case domain.CurrencyEUR:
		return amountUSD.Div(usdToEurRate).Round(2)
	}
	panic(fmt.Sprintf("unsupported currency %q", currency))
}

// TotalValue is the portfolio's total holding value in its display currency.
func TotalValue(p domain.Portfolio) decimal.Decimal {
	return Convert(p.TotalValueUSD(), p.Currency)
}
