package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one day's open price for a symbol. Date is a UTC midnight.
type PricePoint struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// HistoricalSeries holds every known daily price point for one symbol, sorted
// ascending by date, plus the day the series was last fetched. A refresh
// replaces the whole series; points are never merged individually.
type HistoricalSeries struct {
	Symbol     string       `json:"symbol"`
	UpdateDate time.Time    `json:"updateDate"`
	Points     []PricePoint `json:"historicalValues"`
}

// DayQuote is the close price for a symbol on one specific day. Close is nil
// when the upstream record exists but carries no close price.
type DayQuote struct {
	Date  time.Time
	Close *decimal.Decimal
}
