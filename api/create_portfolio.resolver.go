package api

import (
	"fmt"

	"stockfolio/internal"

	"github.com/gin-gonic/gin"
)

type createPortfolioRequest struct {
	Name string `json:"name"`
}

func (m ApiHandler) createPortfolio(c *gin.Context) {
	var requestBody createPortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}
	if requestBody.Name == "" {
		returnErrorJsonCode(fmt.Errorf("portfolio name is required"), c, 400)
		return
	}

	m.Store.Dispatch(c.Request.Context(), internal.AddPortfolioAction{
		Name: requestBody.Name,
	})

	c.JSON(200, map[string]string{"message": "ok"})
}
