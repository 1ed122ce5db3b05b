package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) refreshPortfolio(c *gin.Context) {
	err := m.Portfolio.RefreshHoldings(c.Request.Context(), c.Param("id"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
