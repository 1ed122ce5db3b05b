package api

import (
	"stockfolio/internal"
	"stockfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type listPortfoliosResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Currency   domain.Currency `json:"currency"`
	Stocks     []stockView     `json:"stocks"`
	TotalValue float64         `json:"totalValue"`
}

type stockView struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	InitialValue float64 `json:"initialValue"`
	LatestValue  float64 `json:"latestValue"`
	Quantity     int     `json:"quantity"`
	TotalValue   float64 `json:"totalValue"`
}

func (m ApiHandler) listPortfolios(c *gin.Context) {
	out := []listPortfoliosResponse{}
	for _, p := range m.Store.Portfolios() {
		view := listPortfoliosResponse{
			ID:         p.ID,
			Name:       p.Name,
			Currency:   p.Currency,
			Stocks:     []stockView{},
			TotalValue: internal.TotalValue(p).InexactFloat64(),
		}
		for _, s := range p.Stocks {
			view.Stocks = append(view.Stocks, stockView{
				ID:           s.ID,
				Symbol:       s.Symbol,
				InitialValue: internal.Convert(s.InitialValue, p.Currency).InexactFloat64(),
				LatestValue:  internal.Convert(s.LatestValue, p.Currency).InexactFloat64(),
				Quantity:     s.Quantity,
				TotalValue:   internal.Convert(s.TotalValueUSD(), p.Currency).InexactFloat64(),
			})
		}
		out = append(out, view)
	}

	c.JSON(200, out)
}
