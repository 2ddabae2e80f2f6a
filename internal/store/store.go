// Package store is the record store: it owns the immutable snapshot of the
// restaurant and order collections that every query runs against.
package store

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"restaurant-dashboard/internal/domain"
)

// Snapshot is one point-in-time copy of both collections. A snapshot is
// never mutated after Load returns; queries share it read-only.
type Snapshot struct {
	Restaurants []domain.Restaurant
	Orders      []domain.Order
}

// Source loads a complete snapshot from a backing medium.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Store hands out the current snapshot and swaps in fresh ones atomically.
// In-flight queries keep the snapshot they started with; no query ever
// observes a partially reloaded state.
type Store struct {
	src  Source
	snap atomic.Pointer[Snapshot]
	lg   *zap.Logger
}

func New(src Source, lg *zap.Logger) *Store {
	s := &Store{src: src, lg: lg}
	s.snap.Store(&Snapshot{})
	return s
}

// Reload loads a fresh snapshot and swaps it in. On failure the previous
// snapshot stays active.
func (s *Store) Reload(ctx context.Context) error {
	snap, err := s.src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	s.snap.Store(snap)
	s.lg.Info("snapshot_loaded",
		zap.Int("restaurants", len(snap.Restaurants)),
		zap.Int("orders", len(snap.Orders)),
	)
	return nil
}

// Snapshot returns the currently active snapshot.
func (s *Store) Snapshot() *Snapshot { return s.snap.Load() }
