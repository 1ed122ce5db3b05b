package internal

import (
	"encoding/json"
	"time"

	"stockfolio/internal/domain"

	"github.com/shopspring/decimal"
)

// ChartRow is one calendar day of chart data. Values holds each symbol's
// price for that day; a symbol with no data point on that day is simply
// absent, which the chart renders as a gap between known points.
type ChartRow struct {
	Date   time.Time
	Values map[string]decimal.Decimal
}

// MarshalJSON flattens the row into the shape the chart consumes:
// {"date":"2020-01-02","AAPL":72.5,"MSFT":158.3}
func (r ChartRow) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"date": r.Date.Format(time.DateOnly),
	}
	for symbol, value := range r.Values {
		out[symbol] = value.InexactFloat64()
	}
	return json.Marshal(out)
}

// AlignDailySeries builds one row per calendar day from start to end
// inclusive, pulling each series' value for exactly that day where one
// exists. Output is ascending by date and always end-start+1 rows long,
// however sparse the underlying data. start after end yields nil.
func AlignDailySeries(seriesSet []domain.HistoricalSeries, start, end time.Time) []ChartRow {
	start = TruncateToDay(start)
	end = TruncateToDay(end)
	if start.After(end) {
		return nil
	}

	type indexedSeries struct {
		symbol string
		byDate map[string]decimal.Decimal
	}
	indexes := make([]indexedSeries, 0, len(seriesSet))
	for _, s := range seriesSet {
		byDate := make(map[string]decimal.Decimal, len(s.Points))
		for _, p := range s.Points {
			byDate[p.Date.Format(time.DateOnly)] = p.Value
		}
		indexes = append(indexes, indexedSeries{symbol: s.Symbol, byDate: byDate})
	}

	rows := []ChartRow{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(time.DateOnly)
		row := ChartRow{
			Date:   day,
			Values: map[string]decimal.Decimal{},
		}
		for _, s := range indexes {
			if value, ok := s.byDate[key]; ok {
				row.Values[s.symbol] = value
			}
		}
		rows = append(rows, row)
	}

	return rows
}
