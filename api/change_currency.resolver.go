package api

import (
	"fmt"

	"stockfolio/internal"
	"stockfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type changeCurrencyRequest struct {
	Currency string `json:"currency"`
}

func (m ApiHandler) changeCurrency(c *gin.Context) {
	var requestBody changeCurrencyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	currency := domain.Currency(requestBody.Currency)
	if !currency.Valid() {
		returnErrorJsonCode(fmt.Errorf("unsupported currency %q", requestBody.Currency), c, 400)
		return
	}

	m.Store.Dispatch(c.Request.Context(), internal.ChangeCurrencyAction{
		PortfolioID: c.Param("id"),
		Currency:    currency,
	})

	c.JSON(200, map[string]string{"message": "ok"})
}
