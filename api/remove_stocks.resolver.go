package api

import (
	"stockfolio/internal"

	"github.com/gin-gonic/gin"
)

type removeStocksRequest struct {
	StockIDs []string `json:"stockIds"`
}

func (m ApiHandler) removeStocks(c *gin.Context) {
	var requestBody removeStocksRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	m.Store.Dispatch(c.Request.Context(), internal.RemoveStocksAction{
		PortfolioID: c.Param("id"),
		StockIDs:    requestBody.StockIDs,
	})

	c.JSON(200, map[string]string{"message": "ok"})
}
