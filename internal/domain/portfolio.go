package domain

import (
	"github.com/shopspring/decimal"
)

// Currency is the display currency of a portfolio. All stock values are
// stored in USD and converted for display only.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyEUR
}

// Stock is one purchased position inside a portfolio. InitialValue and
// LatestValue are USD prices per share.
type Stock struct {
	ID           string          `json:"id"`
	Symbol       string          `json:"symbol"`
	InitialValue decimal.Decimal `json:"initialValue"`
	LatestValue  decimal.Decimal `json:"latestValue"`
	Quantity     int             `json:"quantity"`
}

// TotalValueUSD is the holding's latest value times quantity.
func (s Stock) TotalValueUSD() decimal.Decimal {
	return s.LatestValue.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

type Portfolio struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Currency Currency `json:"currency"`
	Stocks   []Stock  `json:"stocks"`
}

func (p Portfolio) DeepCopy() Portfolio {
	out := p
	out.Stocks = make([]Stock, len(p.Stocks))
	copy(out.Stocks, p.Stocks)
	return out
}

func (p Portfolio) HeldSymbols() []string {
	symbols := []string{}
	for _, s := range p.Stocks {
		symbols = append(symbols, s.Symbol)
	}
	return symbols
}

// TotalValueUSD sums latest value times quantity over all holdings.
func (p Portfolio) TotalValueUSD() decimal.Decimal {
	total := decimal.Zero
	for _, s := range p.Stocks {
		total = total.Add(s.TotalValueUSD())
	}
	return total
}
