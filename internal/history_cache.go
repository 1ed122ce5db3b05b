package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"stockfolio/internal/domain"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
)

const refreshWorkers = 4

// HistoryCache owns one historical series per symbol ever requested. A
// series fetched today (UTC calendar day) is reused for the rest of the day;
// older series are replaced wholesale on the next refresh. All updates from
// one Refresh call are committed as a single map swap, so observers see
// either the fully previous or the fully updated cache.
type HistoryCache struct {
	mu      sync.RWMutex
	series  map[string]domain.HistoricalSeries
	gateway repository.PriceGateway

	snapshots repository.SnapshotRepository
	now       func() time.Time
}

func NewHistoryCache(gateway repository.PriceGateway, snapshots repository.SnapshotRepository) (*HistoryCache, error) {
	blob, err := snapshots.Load(repository.HistoricalValuesSnapshotKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load historical values snapshot: %w", err)
	}

	stored := []domain.HistoricalSeries{}
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &stored); err != nil {
			return nil, fmt.Errorf("failed to parse historical values snapshot: %w", err)
		}
	}
	series := make(map[string]domain.HistoricalSeries, len(stored))
	for _, s := range stored {
		series[s.Symbol] = s
	}

	return &HistoryCache{
		series:    series,
		gateway:   gateway,
		snapshots: snapshots,
		now:       time.Now,
	}, nil
}

// Snapshot returns the committed series map. Committed maps are never
// mutated afterwards, so the same map pointer means no refresh has landed.
func (c *HistoryCache) Snapshot() map[string]domain.HistoricalSeries {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.series
}

// SeriesFor returns the series for every requested symbol, in request order.
// ok is false when any symbol has no cached entry at all.
func (c *HistoryCache) SeriesFor(symbols []string) ([]domain.HistoricalSeries, bool) {
	snapshot := c.Snapshot()
	out := make([]domain.HistoricalSeries, 0, len(symbols))
	for _, symbol := range symbols {
		s, ok := snapshot[symbol]
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// Refresh makes sure every requested symbol has a series fetched today.
// Symbols already fetched today are left untouched; the rest are fetched
// concurrently and committed in one swap. A symbol whose fetch fails or
// returns an unusable payload still gets an entry, with no points, so the
// chart shows a gap instead of the whole batch failing.
func (c *HistoryCache) Refresh(ctx context.Context, symbols []string) error {
	log := logger.FromContext(ctx)
	prev := c.Snapshot()
	today := TruncateToDay(c.now())

	toFetch := []string{}
	seen := map[string]bool{}
	for _, symbol := range symbols {
		if seen[symbol] {
			continue
		}
		seen[symbol] = true

		entry, ok := prev[symbol]
		if ok && SameCalendarDay(entry.UpdateDate, today) {
			log.Debugw("series already fetched today", "symbol", symbol)
			continue
		}
		toFetch = append(toFetch, symbol)
	}
	if len(toFetch) == 0 {
		return nil
	}

	fetched := c.fetchAll(ctx, toFetch, today)

	next := make(map[string]domain.HistoricalSeries, len(prev)+len(fetched))
	for symbol, s := range prev {
		next[symbol] = s
	}
	for _, s := range fetched {
		next[s.Symbol] = s
	}

	c.mu.Lock()
	c.series = next
	c.mu.Unlock()

	return c.persist(next)
}

func (c *HistoryCache) fetchAll(ctx context.Context, symbols []string, today time.Time) []domain.HistoricalSeries {
	log := logger.FromContext(ctx)

	inputCh := make(chan string, len(symbols))
	for _, symbol := range symbols {
		inputCh <- symbol
	}
	close(inputCh)

	var (
		mu      sync.Mutex
		fetched = []domain.HistoricalSeries{}
		wg      sync.WaitGroup
	)
	for i := 0; i < refreshWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range inputCh {
				points, err := c.gateway.HistoricalSeries(symbol)
				if errors.Is(err, repository.ErrInvalidResponse) {
					log.Warnw("invalid response for symbol, storing empty series", "symbol", symbol, "error", err)
					points = []domain.PricePoint{}
				} else if err != nil {
					log.Warnw("failed to fetch series, storing empty series", "symbol", symbol, "error", err)
					points = []domain.PricePoint{}
				}

				mu.Lock()
				fetched = append(fetched, domain.HistoricalSeries{
					Symbol:     symbol,
					UpdateDate: today,
					Points:     points,
				})
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return fetched
}

func (c *HistoryCache) persist(series map[string]domain.HistoricalSeries) error {
	stored := make([]domain.HistoricalSeries, 0, len(series))
	for _, s := range series {
		stored = append(stored, s)
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].Symbol < stored[j].Symbol })

	blob, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to serialize historical values: %w", err)
	}
	if err := c.snapshots.Save(repository.HistoricalValuesSnapshotKey, blob); err != nil {
		return fmt.Errorf("failed to persist historical values: %w", err)
	}
	return nil
}
