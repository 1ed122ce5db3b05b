package internal

import (
	"context"
	"testing"

	"stockfolio/internal/domain"
	"stockfolio/internal/repository"

	"github.com/stretchr/testify/require"
)

type countingSnapshots struct {
	repository.SnapshotRepository
	saves int
}

func (c *countingSnapshots) Save(key string, blob []byte) error {
	c.saves++
	return c.SnapshotRepository.Save(key, blob)
}

func Test_PortfolioStore(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatch persists and a new store reloads the state", func(t *testing.T) {
		snaps := repository.NewMemorySnapshotRepository()
		store, err := NewPortfolioStore(snaps)
		require.NoError(t, err)

		store.Dispatch(ctx, AddPortfolioAction{Name: "retirement"})

		reloaded, err := NewPortfolioStore(snaps)
		require.NoError(t, err)
		portfolios := reloaded.Portfolios()
		require.Len(t, portfolios, 1)
		require.Equal(t, "retirement", portfolios[0].Name)
		require.Equal(t, domain.CurrencyEUR, portfolios[0].Currency)
	})

	t.Run("no-op action skips persistence and keeps the snapshot", func(t *testing.T) {
		snaps := &countingSnapshots{SnapshotRepository: repository.NewMemorySnapshotRepository()}
		store, err := NewPortfolioStore(snaps)
		require.NoError(t, err)

		store.Dispatch(ctx, AddPortfolioAction{Name: "one"})
		savesAfterAdd := snaps.saves
		prev := store.Portfolios()

		next := store.Dispatch(ctx, ChangeCurrencyAction{PortfolioID: "missing", Currency: domain.CurrencyUSD})

		require.Equal(t, savesAfterAdd, snaps.saves)
		require.Same(t, &prev[0], &next[0])
	})

	t.Run("find", func(t *testing.T) {
		snaps := repository.NewMemorySnapshotRepository()
		store, err := NewPortfolioStore(snaps)
		require.NoError(t, err)

		state := store.Dispatch(ctx, AddPortfolioAction{Name: "one"})

		found, ok := store.Find(state[0].ID)
		require.True(t, ok)
		require.Equal(t, "one", found.Name)

		_, ok = store.Find("missing")
		require.False(t, ok)
	})
}
