package api

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"stockfolio/internal/app"

	"github.com/gin-gonic/gin"
)

type addStockRequest struct {
	Symbol   string `json:"symbol"`
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

var dateFormatRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// validateAddStock mirrors the form checks of the web UI. The date check is
// format-only; calendar validity is not enforced here and an impossible date
// surfaces later as missing upstream data.
func validateAddStock(requestBody addStockRequest) error {
	if requestBody.Symbol == "" || len(requestBody.Symbol) > 5 {
		return fmt.Errorf("Symbol has to be under 6 characters long")
	}
	if !dateFormatRegex.MatchString(requestBody.Date) {
		return fmt.Errorf("Please enter past date in format: yyyy-mm-dd")
	}
	if requestBody.Quantity < 1 {
		return fmt.Errorf("Number of shares has to be a positive whole number")
	}
	return nil
}

func (m ApiHandler) addStock(c *gin.Context) {
	var requestBody addStockRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}
	if err := validateAddStock(requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	purchaseDate, err := time.Parse(time.DateOnly, requestBody.Date)
	if err != nil {
		// well-formed but impossible date, e.g. 2020-13-45
		returnErrorJsonCode(app.ErrNoStockData, c, 422)
		return
	}

	err = m.Portfolio.AddStock(c.Request.Context(), c.Param("id"), requestBody.Symbol, purchaseDate, requestBody.Quantity)
	if errors.Is(err, app.ErrNoStockData) || errors.Is(err, app.ErrNoStockPrice) {
		returnErrorJsonCode(err, c, 422)
		return
	}
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
