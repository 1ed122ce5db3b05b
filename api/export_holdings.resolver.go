package api

import (
	"stockfolio/internal"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type holdingCsvRow struct {
	Portfolio     string  `csv:"portfolio"`
	Symbol        string  `csv:"symbol"`
	Quantity      int     `csv:"quantity"`
	Currency      string  `csv:"currency"`
	PurchaseValue float64 `csv:"purchase_value"`
	LatestValue   float64 `csv:"latest_value"`
	TotalValue    float64 `csv:"total_value"`
}

// exportHoldings dumps every holding across all portfolios as CSV, with
// values converted to each portfolio's display currency.
func (m ApiHandler) exportHoldings(c *gin.Context) {
	rows := []holdingCsvRow{}
	for _, p := range m.Store.Portfolios() {
		for _, s := range p.Stocks {
			rows = append(rows, holdingCsvRow{
				Portfolio:     p.Name,
				Symbol:        s.Symbol,
				Quantity:      s.Quantity,
				Currency:      string(p.Currency),
				PurchaseValue: internal.Convert(s.InitialValue, p.Currency).InexactFloat64(),
				LatestValue:   internal.Convert(s.LatestValue, p.Currency).InexactFloat64(),
				TotalValue:    internal.Convert(s.TotalValueUSD(), p.Currency).InexactFloat64(),
			})
		}
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=holdings.csv")
	c.Data(200, "text/csv", []byte(out))
}
