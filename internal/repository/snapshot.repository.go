package repository

import (
	"sync"
)

// Snapshot keys for the two independently persisted state buckets.
const (
	PortfoliosSnapshotKey       = "portfolios"
	HistoricalValuesSnapshotKey = "historicalValues"
)

// SnapshotRepository stores opaque JSON state blobs. Load returns (nil, nil)
// when no snapshot exists for the key. Writes are last-write-wins; there are
// no cross-key transactions.
type SnapshotRepository interface {
	Load(key string) ([]byte, error)
	Save(key string, blob []byte) error
}

type memorySnapshotRepositoryHandler struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemorySnapshotRepository() SnapshotRepository {
	return &memorySnapshotRepositoryHandler{
		blobs: map[string][]byte{},
	}
}

func (h *memorySnapshotRepositoryHandler) Load(key string) ([]byte, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	blob, ok := h.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (h *memorySnapshotRepositoryHandler) Save(key string, blob []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	stored := make([]byte, len(blob))
	copy(stored, blob)
	h.blobs[key] = stored
	return nil
}
