package internal

import (
	"encoding/json"
	"testing"

	"stockfolio/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_AlignDailySeries(t *testing.T) {
	t.Run("missing day leaves a gap, not a zero", func(t *testing.T) {
		d0 := NewDate(2020, 5, 1)
		series := []domain.HistoricalSeries{{
			Symbol: "AAPL",
			Points: []domain.PricePoint{
				{Date: d0, Value: decimal.NewFromInt(100)},
				{Date: NewDate(2020, 5, 3), Value: decimal.NewFromInt(110)},
			},
		}}

		rows := AlignDailySeries(series, d0, NewDate(2020, 5, 3))

		require.Len(t, rows, 3)
		require.True(t, rows[0].Values["AAPL"].Equal(decimal.NewFromInt(100)))
		_, ok := rows[1].Values["AAPL"]
		require.False(t, ok, "day without data must not carry the symbol key")
		require.True(t, rows[2].Values["AAPL"].Equal(decimal.NewFromInt(110)))
	})

	t.Run("row count covers the whole range regardless of data", func(t *testing.T) {
		rows := AlignDailySeries(
			[]domain.HistoricalSeries{{Symbol: "AAPL", Points: []domain.PricePoint{}}},
			NewDate(2020, 5, 1),
			NewDate(2020, 5, 10),
		)

		require.Len(t, rows, 10)
		for i := 1; i < len(rows); i++ {
			require.True(t, rows[i-1].Date.Before(rows[i].Date))
		}
	})

	t.Run("single day range yields one row", func(t *testing.T) {
		d := NewDate(2020, 5, 1)
		rows := AlignDailySeries(nil, d, d)
		require.Len(t, rows, 1)
		require.True(t, rows[0].Date.Equal(d))
	})

	t.Run("start after end yields nothing", func(t *testing.T) {
		rows := AlignDailySeries(nil, NewDate(2020, 5, 2), NewDate(2020, 5, 1))
		require.Nil(t, rows)
	})

	t.Run("multiple series on one day share the row", func(t *testing.T) {
		d := NewDate(2020, 5, 1)
		series := []domain.HistoricalSeries{
			{Symbol: "AAPL", Points: []domain.PricePoint{{Date: d, Value: decimal.NewFromInt(100)}}},
			{Symbol: "MSFT", Points: []domain.PricePoint{{Date: d, Value: decimal.NewFromInt(200)}}},
		}

		rows := AlignDailySeries(series, d, d)

		require.Len(t, rows, 1)
		require.Len(t, rows[0].Values, 2)
	})
}

func Test_ChartRow_MarshalJSON(t *testing.T) {
	row := ChartRow{
		Date: NewDate(2020, 5, 1),
		Values: map[string]decimal.Decimal{
			"AAPL": decimal.NewFromFloat(72.5),
		},
	}

	blob, err := json.Marshal(row)
	require.NoError(t, err)
	require.JSONEq(t, `{"date":"2020-05-01","AAPL":72.5}`, string(blob))
}
