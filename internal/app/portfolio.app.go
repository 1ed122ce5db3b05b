package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"stockfolio/internal"
	"stockfolio/internal/domain"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
)

// User-facing failure messages for the add-stock flow. The UI shows these
// verbatim next to the form, so the wording is part of the contract.
var (
	ErrNoStockData  = errors.New("No data for stock")
	ErrNoStockPrice = errors.New("Could not find price for the stock")
)

const refreshHoldingsWorkers = 4

// PortfolioHandler orchestrates the flows that need price data before a
// state transition: it reads from the gateway first, then dispatches a pure
// action. The reducer itself never does I/O.
type PortfolioHandler struct {
	Store        *internal.PortfolioStore
	HistoryCache *internal.HistoryCache
	PriceGateway repository.PriceGateway
}

// AddStock validates that the gateway knows the symbol on the purchase date,
// then commits the holding with both the historical close and the current
// price. The two error values are returned as-is for display; anything else
// is an upstream failure.
func (h PortfolioHandler) AddStock(ctx context.Context, portfolioID, symbol string, purchaseDate time.Time, quantity int) error {
	log := logger.FromContext(ctx)

	latest, err := h.PriceGateway.CurrentPrice(symbol)
	if err != nil {
		return fmt.Errorf("failed to get current price for %s: %w", symbol, err)
	}

	dayQuote, err := h.PriceGateway.HistoricalPriceOnDate(symbol, purchaseDate)
	if err != nil {
		log.Warnw("historical price lookup failed", "symbol", symbol, "error", err)
		return ErrNoStockData
	}
	if dayQuote == nil {
		return ErrNoStockData
	}
	if dayQuote.Close == nil {
		return ErrNoStockPrice
	}

	h.Store.Dispatch(ctx, internal.AddStockAction{
		PortfolioID: portfolioID,
		Symbol:      symbol,
		Value:       *dayQuote.Close,
		Latest:      latest,
		Quantity:    quantity,
	})
	return nil
}

// RefreshHoldings re-fetches the current price for every holding in the
// portfolio and commits one replacement stock sequence. Ids, quantities and
// purchase prices are preserved. A symbol whose fetch fails keeps its last
// known price.
func (h PortfolioHandler) RefreshHoldings(ctx context.Context, portfolioID string) error {
	log := logger.FromContext(ctx)

	portfolio, ok := h.Store.Find(portfolioID)
	if !ok {
		return fmt.Errorf("no portfolio with id %s", portfolioID)
	}

	stocks := make([]domain.Stock, len(portfolio.Stocks))
	copy(stocks, portfolio.Stocks)

	inputCh := make(chan int, len(stocks))
	for i := range stocks {
		inputCh <- i
	}
	close(inputCh)

	var wg sync.WaitGroup
	for w := 0; w < refreshHoldingsWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range inputCh {
				price, err := h.PriceGateway.CurrentPrice(stocks[i].Symbol)
				if err != nil {
					log.Warnw("failed to refresh price, keeping last known value",
						"symbol", stocks[i].Symbol, "error", err)
					continue
				}
				stocks[i].LatestValue = price
			}
		}()
	}
	wg.Wait()

	h.Store.Dispatch(ctx, internal.UpdateStocksAction{
		PortfolioID: portfolioID,
		Stocks:      stocks,
	})
	return nil
}

// Chart refreshes the history cache for the requested symbols and returns
// date-aligned rows plus per-symbol summary stats for the range. Rows are
// only built once every symbol has a cache entry; a partial set yields no
// rows rather than a partial chart.
func (h PortfolioHandler) Chart(ctx context.Context, symbols []string, start, end time.Time) ([]internal.ChartRow, map[string]internal.SeriesStats, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		return []internal.ChartRow{}, map[string]internal.SeriesStats{}, nil
	}

	if err := h.HistoryCache.Refresh(ctx, symbols); err != nil {
		log.Warnw("failed to persist refreshed history", "error", err)
	}

	seriesSet, ok := h.HistoryCache.SeriesFor(symbols)
	if !ok {
		return []internal.ChartRow{}, map[string]internal.SeriesStats{}, nil
	}

	rows := internal.AlignDailySeries(seriesSet, start, end)
	summary, err := internal.SummarizeChart(rows, symbols)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to summarize chart: %w", err)
	}

	return rows, summary, nil
}
