package api

import (
	"stockfolio/internal"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) deletePortfolio(c *gin.Context) {
	m.Store.Dispatch(c.Request.Context(), internal.RemovePortfolioAction{
		PortfolioID: c.Param("id"),
	})

	c.JSON(200, map[string]string{"message": "ok"})
}
