package api

import (
	"fmt"
	"time"

	"stockfolio/internal"
	"stockfolio/internal/app"
	"stockfolio/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApiHandler is the HTTP surface the web UI talks to. One endpoint per user
// gesture; all state lives in the store and cache behind the handlers.
type ApiHandler struct {
	Store     *internal.PortfolioStore
	Portfolio app.PortfolioHandler
	Logger    *zap.SugaredLogger
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stockfolio"})
	})
	router.GET("/portfolios", m.listPortfolios)
	router.POST("/portfolios", m.createPortfolio)
	router.DELETE("/portfolios/:id", m.deletePortfolio)
	router.POST("/portfolios/:id/stocks", m.addStock)
	router.POST("/portfolios/:id/stocks/remove", m.removeStocks)
	router.POST("/portfolios/:id/refresh", m.refreshPortfolio)
	router.PUT("/portfolios/:id/currency", m.changeCurrency)
	router.POST("/chart", m.chart)
	router.GET("/holdings/export", m.exportHoldings)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware puts the logger into the request context for the
// layers below and logs one line per request.
func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	ctx.Request = ctx.Request.WithContext(
		logger.AddToContext(ctx.Request.Context(), m.Logger),
	)

	start := time.Now().UTC()
	ctx.Next()

	m.Logger.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
