package repository

import (
	"errors"
	"fmt"
	"time"

	"stockfolio/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// ErrInvalidResponse means the provider answered but the payload carried no
// usable price fields.
var ErrInvalidResponse = errors.New("invalid response from price provider")

// PriceGateway fetches quotes from the upstream market data provider. Every
// call is a single attempt; callers decide whether a failure is surfaced or
// degraded.
type PriceGateway interface {
	// CurrentPrice returns the latest traded price for a ticker.
	CurrentPrice(symbol string) (decimal.Decimal, error)
	// HistoricalPriceOnDate returns the close price for one specific day.
	// A nil quote with nil error means the provider has no record for that
	// day. A quote with a nil Close means the record exists but carries no
	// close price.
	HistoricalPriceOnDate(symbol string, date time.Time) (*domain.DayQuote, error)
	// HistoricalSeries returns up to 5 years of daily open prices, sorted
	// ascending by date.
	HistoricalSeries(symbol string) ([]domain.PricePoint, error)
}

type priceGatewayHandler struct{}

func NewPriceGateway() PriceGateway {
	return priceGatewayHandler{}
}

func (h priceGatewayHandler) CurrentPrice(symbol string) (decimal.Decimal, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return decimal.Zero, fmt.Errorf("no quote data for %s", symbol)
	}
	return decimal.NewFromFloat(q.RegularMarketPrice), nil
}

func (h priceGatewayHandler) HistoricalPriceOnDate(symbol string, date time.Time) (*domain.DayQuote, error) {
	day := dayOf(date)
	end := day.AddDate(0, 0, 1)
	params := &chart.Params{
		Start:    datetime.New(&day),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	for iter.Next() {
		bar := iter.Bar()
		barDay := dayOf(time.Unix(int64(bar.Timestamp), 0))
		if !barDay.Equal(day) {
			continue
		}
		dq := &domain.DayQuote{Date: barDay}
		if !bar.Close.IsZero() {
			close := bar.Close
			dq.Close = &close
		}
		return dq, nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get price for %s on %s: %w", symbol, day.Format(time.DateOnly), err)
	}

	return nil, nil
}

func (h priceGatewayHandler) HistoricalSeries(symbol string) ([]domain.PricePoint, error) {
	now := time.Now()
	start := now.AddDate(-5, 0, 0)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	bars := 0
	points := []domain.PricePoint{}
	for iter.Next() {
		bars++
		bar := iter.Bar()
		if bar.Open.IsZero() {
			continue
		}
		points = append(points, domain.PricePoint{
			Date:  dayOf(time.Unix(int64(bar.Timestamp), 0)),
			Value: bar.Open,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get series for %s: %w", symbol, err)
	}
	if bars > 0 && len(points) == 0 {
		return nil, fmt.Errorf("no open prices in series for %s: %w", symbol, ErrInvalidResponse)
	}

	return points, nil
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
