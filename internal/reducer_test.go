package internal

import (
	"context"
	"testing"

	"stockfolio/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func Test_Apply_AddPortfolio(t *testing.T) {
	ctx := context.Background()

	t.Run("appends with defaults", func(t *testing.T) {
		next := Apply(ctx, []domain.Portfolio{}, AddPortfolioAction{Name: "retirement"})

		require.Len(t, next, 1)
		require.Equal(t, "retirement", next[0].Name)
		require.Equal(t, domain.CurrencyEUR, next[0].Currency)
		require.Empty(t, next[0].Stocks)
		require.NotEmpty(t, next[0].ID)
	})

	t.Run("ids are pairwise unique", func(t *testing.T) {
		state := []domain.Portfolio{}
		for i := 0; i < 50; i++ {
			state = Apply(ctx, state, AddPortfolioAction{Name: "p"})
		}
		state = Apply(ctx, state, RemovePortfolioAction{PortfolioID: state[10].ID})
		for i := 0; i < 10; i++ {
			state = Apply(ctx, state, AddPortfolioAction{Name: "q"})
		}

		seen := map[string]bool{}
		for _, p := range state {
			require.False(t, seen[p.ID], "duplicate portfolio id %s", p.ID)
			seen[p.ID] = true
		}
	})

	t.Run("does not mutate previous state", func(t *testing.T) {
		prev := []domain.Portfolio{{ID: "p1", Name: "one"}}
		next := Apply(ctx, prev, AddPortfolioAction{Name: "two"})

		require.Len(t, prev, 1)
		require.Len(t, next, 2)
	})
}

func Test_Apply_RemovePortfolio(t *testing.T) {
	ctx := context.Background()
	state := []domain.Portfolio{
		{ID: "p1", Name: "one"},
		{ID: "p2", Name: "two"},
	}

	t.Run("removes matching portfolio", func(t *testing.T) {
		next := Apply(ctx, state, RemovePortfolioAction{PortfolioID: "p1"})

		require.Len(t, next, 1)
		require.Equal(t, "p2", next[0].ID)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		next := Apply(ctx, state, RemovePortfolioAction{PortfolioID: "missing"})

		require.Equal(t, "", cmp.Diff(state, next, decimalComparer))
	})
}

func Test_Apply_AddStock(t *testing.T) {
	ctx := context.Background()
	state := []domain.Portfolio{
		{ID: "p1", Name: "one", Currency: domain.CurrencyEUR, Stocks: []domain.Stock{}},
	}

	t.Run("appends stock with fresh id and uppercased symbol", func(t *testing.T) {
		next := Apply(ctx, state, AddStockAction{
			PortfolioID: "p1",
			Symbol:      "aapl",
			Value:       decimal.NewFromInt(100),
			Latest:      decimal.NewFromInt(200),
			Quantity:    2,
		})

		require.Len(t, next[0].Stocks, 1)
		added := next[0].Stocks[0]
		require.NotEmpty(t, added.ID)
		require.Equal(t, "AAPL", added.Symbol)
		require.True(t, added.InitialValue.Equal(decimal.NewFromInt(100)))
		require.True(t, added.LatestValue.Equal(decimal.NewFromInt(200)))
		require.Equal(t, 2, added.Quantity)

		// previous snapshot untouched
		require.Empty(t, state[0].Stocks)
	})

	t.Run("missing portfolio returns state unchanged", func(t *testing.T) {
		next := Apply(ctx, state, AddStockAction{PortfolioID: "missing", Symbol: "AAPL", Quantity: 1})

		require.Same(t, &state[0], &next[0])
	})
}

func Test_Apply_RemoveStocks(t *testing.T) {
	ctx := context.Background()
	state := []domain.Portfolio{
		{ID: "p1", Stocks: []domain.Stock{
			{ID: "s1", Symbol: "AAPL"},
			{ID: "s2", Symbol: "MSFT"},
			{ID: "s3", Symbol: "NOK"},
		}},
	}

	t.Run("removes all matching, skips unknown ids", func(t *testing.T) {
		next := Apply(ctx, state, RemoveStocksAction{
			PortfolioID: "p1",
			StockIDs:    []string{"s1", "s3", "nope"},
		})

		require.Len(t, next[0].Stocks, 1)
		require.Equal(t, "s2", next[0].Stocks[0].ID)
	})

	t.Run("removed id is never resurrected by a later add", func(t *testing.T) {
		next := Apply(ctx, state, RemoveStocksAction{PortfolioID: "p1", StockIDs: []string{"s1"}})
		next = Apply(ctx, next, AddStockAction{PortfolioID: "p1", Symbol: "TSLA", Quantity: 1})

		for _, s := range next[0].Stocks {
			if s.Symbol == "TSLA" {
				require.NotEqual(t, "s1", s.ID)
			}
		}
	})

	t.Run("missing portfolio returns state unchanged", func(t *testing.T) {
		next := Apply(ctx, state, RemoveStocksAction{PortfolioID: "missing", StockIDs: []string{"s1"}})

		require.Same(t, &state[0], &next[0])
	})
}

func Test_Apply_UpdateStocks(t *testing.T) {
	ctx := context.Background()
	state := []domain.Portfolio{
		{ID: "p1", Stocks: []domain.Stock{
			{ID: "s1", Symbol: "AAPL", LatestValue: decimal.NewFromInt(100), Quantity: 2},
		}},
	}

	t.Run("replaces the whole stock sequence", func(t *testing.T) {
		replacement := []domain.Stock{
			{ID: "s1", Symbol: "AAPL", LatestValue: decimal.NewFromInt(150), Quantity: 2},
		}
		next := Apply(ctx, state, UpdateStocksAction{PortfolioID: "p1", Stocks: replacement})

		require.True(t, next[0].Stocks[0].LatestValue.Equal(decimal.NewFromInt(150)))
		require.True(t, state[0].Stocks[0].LatestValue.Equal(decimal.NewFromInt(100)))
	})

	t.Run("missing portfolio returns state unchanged", func(t *testing.T) {
		next := Apply(ctx, state, UpdateStocksAction{PortfolioID: "missing", Stocks: nil})

		require.Same(t, &state[0], &next[0])
	})
}

func Test_Apply_ChangeCurrency(t *testing.T) {
	ctx := context.Background()
	state := []domain.Portfolio{
		{ID: "p1", Currency: domain.CurrencyEUR},
	}

	t.Run("sets display currency", func(t *testing.T) {
		next := Apply(ctx, state, ChangeCurrencyAction{PortfolioID: "p1", Currency: domain.CurrencyUSD})

		require.Equal(t, domain.CurrencyUSD, next[0].Currency)
		require.Equal(t, domain.CurrencyEUR, state[0].Currency)
	})

	t.Run("missing id leaves state unchanged by value", func(t *testing.T) {
		next := Apply(ctx, state, ChangeCurrencyAction{PortfolioID: "missing", Currency: domain.CurrencyUSD})

		require.Equal(t, "", cmp.Diff(state, next, decimalComparer))
	})
}
