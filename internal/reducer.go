package internal

import (
	"context"
	"strings"

	"stockfolio/internal/domain"
	"stockfolio/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Action is the closed set of portfolio state transitions. Every action is a
// plain value; anything requiring I/O happens before the action is built
// (see internal/app).
type Action interface {
	isAction()
}

type AddPortfolioAction struct {
	Name string
}

type RemovePortfolioAction struct {
	PortfolioID string
}

type AddStockAction struct {
	PortfolioID string
	Symbol      string
	// Value is the purchase price, Latest the current price, both USD.
	Value    decimal.Decimal
	Latest   decimal.Decimal
	Quantity int
}

type RemoveStocksAction struct {
	PortfolioID string
	StockIDs    []string
}

type UpdateStocksAction struct {
	PortfolioID string
	// Stocks replaces the portfolio's holdings wholesale. The caller must
	// preserve ids and quantities of existing holdings.
	Stocks []domain.Stock
}

type ChangeCurrencyAction struct {
	PortfolioID string
	Currency    domain.Currency
}

func (AddPortfolioAction) isAction()    {}
func (RemovePortfolioAction) isAction() {}
func (AddStockAction) isAction()        {}
func (RemoveStocksAction) isAction()    {}
func (UpdateStocksAction) isAction()    {}
func (ChangeCurrencyAction) isAction()  {}

// Apply is a pure reducer over the portfolio collection. It never mutates
// the previous state: every change returns a freshly built slice, so
// observers can rely on reference equality for change detection. Referencing
// an unknown portfolio id is a logged no-op, never an error.
func Apply(ctx context.Context, state []domain.Portfolio, action Action) []domain.Portfolio {
	log := logger.FromContext(ctx)

	switch a := action.(type) {
	case AddPortfolioAction:
		next := make([]domain.Portfolio, 0, len(state)+1)
		next = append(next, state...)
		next = append(next, domain.Portfolio{
			ID:       uuid.NewString(),
			Name:     a.Name,
			Currency: domain.CurrencyEUR,
			Stocks:   []domain.Stock{},
		})
		return next

	case RemovePortfolioAction:
		next := make([]domain.Portfolio, 0, len(state))
		for _, p := range state {
			if p.ID != a.PortfolioID {
				next = append(next, p)
			}
		}
		return next

	case AddStockAction:
		idx := findPortfolio(state, a.PortfolioID)
		if idx == -1 {
			log.Warnw("could not find portfolio with correct id", "portfolioId", a.PortfolioID)
			return state
		}
		p := state[idx].DeepCopy()
		p.Stocks = append(p.Stocks, domain.Stock{
			ID:           uuid.NewString(),
			Symbol:       strings.ToUpper(a.Symbol),
			InitialValue: a.Value,
			LatestValue:  a.Latest,
			Quantity:     a.Quantity,
		})
		return replacePortfolio(state, idx, p)

	case RemoveStocksAction:
		idx := findPortfolio(state, a.PortfolioID)
		if idx == -1 {
			log.Warnw("could not find portfolio with correct id", "portfolioId", a.PortfolioID)
			return state
		}
		remove := map[string]bool{}
		for _, id := range a.StockIDs {
			remove[id] = true
		}
		p := state[idx]
		stocks := []domain.Stock{}
		for _, s := range p.Stocks {
			if !remove[s.ID] {
				stocks = append(stocks, s)
			}
		}
		p.Stocks = stocks
		return replacePortfolio(state, idx, p)

	case UpdateStocksAction:
		idx := findPortfolio(state, a.PortfolioID)
		if idx == -1 {
			log.Warnw("could not find portfolio with correct id", "portfolioId", a.PortfolioID)
			return state
		}
		p := state[idx]
		p.Stocks = make([]domain.Stock, len(a.Stocks))
		copy(p.Stocks, a.Stocks)
		return replacePortfolio(state, idx, p)

	case ChangeCurrencyAction:
		idx := findPortfolio(state, a.PortfolioID)
		if idx == -1 {
			log.Warnw("could not find portfolio with correct id", "portfolioId", a.PortfolioID)
			return state
		}
		p := state[idx]
		p.Currency = a.Currency
		return replacePortfolio(state, idx, p)
	}

	log.Warnw("ignoring unknown action", "action", action)
	return state
}

func findPortfolio(state []domain.Portfolio, id string) int {
	for i, p := range state {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func replacePortfolio(state []domain.Portfolio, idx int, p domain.Portfolio) []domain.Portfolio {
	next := make([]domain.Portfolio, len(state))
	copy(next, state)
	next[idx] = p
	return next
}
