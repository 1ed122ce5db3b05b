package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"stockfolio/internal/domain"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
)

// PortfolioStore owns the portfolio collection. Dispatch runs the pure
// reducer against the current snapshot and swaps in the result, so readers
// always see a complete state, never a partial write. The snapshot is
// persisted after every committed change, last write wins.
type PortfolioStore struct {
	mu         sync.Mutex
	portfolios []domain.Portfolio
	snapshots  repository.SnapshotRepository
}

func NewPortfolioStore(snapshots repository.SnapshotRepository) (*PortfolioStore, error) {
	blob, err := snapshots.Load(repository.PortfoliosSnapshotKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolios snapshot: %w", err)
	}

	portfolios := []domain.Portfolio{}
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &portfolios); err != nil {
			return nil, fmt.Errorf("failed to parse portfolios snapshot: %w", err)
		}
	}

	return &PortfolioStore{
		portfolios: portfolios,
		snapshots:  snapshots,
	}, nil
}

// Portfolios returns the current snapshot. The returned slice is never
// mutated after commit; treat it as read-only.
func (s *PortfolioStore) Portfolios() []domain.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolios
}

func (s *PortfolioStore) Find(id string) (domain.Portfolio, bool) {
	for _, p := range s.Portfolios() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Portfolio{}, false
}

// Dispatch applies an action and returns the resulting snapshot.
func (s *PortfolioStore) Dispatch(ctx context.Context, action Action) []domain.Portfolio {
	s.mu.Lock()
	prev := s.portfolios
	next := Apply(ctx, prev, action)
	s.portfolios = next
	s.mu.Unlock()

	if !sameSnapshot(prev, next) {
		s.persist(ctx, next)
	}
	return next
}

func (s *PortfolioStore) persist(ctx context.Context, portfolios []domain.Portfolio) {
	log := logger.FromContext(ctx)
	blob, err := json.Marshal(portfolios)
	if err != nil {
		log.Errorw("failed to serialize portfolios", "error", err)
		return
	}
	if err := s.snapshots.Save(repository.PortfoliosSnapshotKey, blob); err != nil {
		log.Errorw("failed to persist portfolios", "error", err)
	}
}

// sameSnapshot reports whether the reducer returned the previous snapshot
// unchanged (a no-op action). The reducer builds a fresh slice for every
// real change, so a shared backing array means nothing happened.
func sameSnapshot(prev, next []domain.Portfolio) bool {
	if len(prev) != len(next) {
		return false
	}
	if len(prev) == 0 {
		return true
	}
	return &prev[0] == &next[0]
}
