package internal

import (
	"github.com/montanaflynn/stats"
)

// SeriesStats summarizes one symbol's values across the charted range.
type SeriesStats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Stdev float64 `json:"stdev"`
}

// SummarizeChart computes per-symbol stats over aligned chart rows. Symbols
// with no values in the range are omitted.
func SummarizeChart(rows []ChartRow, symbols []string) (map[string]SeriesStats, error) {
	out := map[string]SeriesStats{}

	for _, symbol := range symbols {
		data := []float64{}
		for _, row := range rows {
			if value, ok := row.Values[symbol]; ok {
				data = append(data, value.InexactFloat64())
			}
		}
		if len(data) == 0 {
			continue
		}

		min, err := stats.Min(data)
		if err != nil {
			return nil, err
		}
		max, err := stats.Max(data)
		if err != nil {
			return nil, err
		}
		mean, err := stats.Mean(data)
		if err != nil {
			return nil, err
		}
		stdev := 0.0
		if len(data) > 1 {
			stdev, err = stats.StandardDeviationSample(data)
			if err != nil {
				return nil, err
			}
		}

		out[symbol] = SeriesStats{Min: min, Max: max, Mean: mean, Stdev: stdev}
	}

	return out, nil
}
