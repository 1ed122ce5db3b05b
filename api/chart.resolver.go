package api

import (
	"fmt"
	"time"

	"stockfolio/internal"

	"github.com/gin-gonic/gin"
)

type chartRequest struct {
	Symbols   []string `json:"symbols"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
}

type chartResponse struct {
	Rows  []internal.ChartRow             `json:"rows"`
	Stats map[string]internal.SeriesStats `json:"stats"`
}

func (m ApiHandler) chart(c *gin.Context) {
	var requestBody chartRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	// default range is the previous 30 days
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -30)
	var err error
	if requestBody.EndDate != "" {
		end, err = time.Parse(time.DateOnly, requestBody.EndDate)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid end date: %w", err), c, 400)
			return
		}
	}
	if requestBody.StartDate != "" {
		start, err = time.Parse(time.DateOnly, requestBody.StartDate)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid start date: %w", err), c, 400)
			return
		}
	}
	if start.After(end) {
		returnErrorJsonCode(fmt.Errorf("start date is after end date"), c, 400)
		return
	}

	rows, stats, err := m.Portfolio.Chart(c.Request.Context(), requestBody.Symbols, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, chartResponse{
		Rows:  rows,
		Stats: stats,
	})
}
