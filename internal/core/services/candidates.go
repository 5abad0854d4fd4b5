package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driven"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driving"
	"github.com/calder-labs/litorg-cli/internal/logger"
)

// Ensure CandidateCache implements the interface.
var _ driving.CandidateService = (*CandidateCache)(nil)

// CandidateCache holds the full (citation, source) candidate list for
// the record store, regenerated wholesale whenever the store file has
// been modified after the cache was generated. There is no partial
// invalidation and no per-entry expiry: the store is a personal
// reference collection, small enough to list in full.
type CandidateCache struct {
	mu sync.Mutex

	store driven.RecordStore
	clock driven.Clock

	generatedAt time.Time
	entries     []domain.Candidate
	populated   bool
}

// NewCandidateCache creates a cache over store using clock for
// freshness decisions.
func NewCandidateCache(store driven.RecordStore, clock driven.Clock) *CandidateCache {
	return &CandidateCache{
		store: store,
		clock: clock,
	}
}

// Candidates returns the cached candidate list, regenerating it first
// when the store has been modified since the last generation or the
// cache was never populated. The generation timestamp is taken before
// the listing query runs, so a store write racing the regeneration
// still invalidates the cache on the next call.
func (c *CandidateCache) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mtime, err := c.store.ModTime()
	if err != nil {
		return nil, fmt.Errorf("reading store mtime: %w", err)
	}

	if !c.populated || c.generatedAt.Before(mtime) {
		logger.Debug("candidate cache stale (generated %v, store modified %v), regenerating",
			c.generatedAt, mtime)

		now := c.clock.Now()
		entries, err := c.store.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing candidates: %w", err)
		}
		c.entries = entries
		c.generatedAt = now
		c.populated = true
		logger.Info("candidate cache regenerated: %d entries", len(entries))
	}

	return c.entries, nil
}

// Invalidate forces the next Candidates call to regenerate. The file
// watcher calls this when it sees the database change, which covers
// filesystems with coarse mtime resolution.
func (c *CandidateCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.populated = false
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }
