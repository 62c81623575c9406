package service

import (
	"context"
	"log"
	"time"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/governance"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/repository"
)

// ExpiryWorker periodically flips active proposals past their deadline
// to the expired status and drops their cache entries. Informational
// only: staking correctness never depends on this sweep, since the
// ledger checks the wall clock on every cast.
type ExpiryWorker struct {
	store    *governance.Store
	cache    *CacheService
	archive  *repository.ArchiveRepo
	interval time.Duration
	stopCh   chan struct{}
}

// NewExpiryWorker creates a worker that sweeps every interval.
func NewExpiryWorker(store *governance.Store, cache *CacheService, archive *repository.ArchiveRepo, interval time.Duration) *ExpiryWorker {
	return &ExpiryWorker{
		store:    store,
		cache:    cache,
		archive:  archive,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic expiry sweep. It runs one sweep
// immediately, then every interval.
func (w *ExpiryWorker) Start(ctx context.Context) {
	log.Printf("expiry-worker: starting (interval=%s)", w.interval)

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-ctx.Done():
			log.Println("expiry-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("expiry-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *ExpiryWorker) Stop() {
	close(w.stopCh)
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	expired := w.store.MarkExpired(time.Now())
	if len(expired) == 0 {
		return
	}

	for _, id := range expired {
		if w.cache != nil {
			if err := w.cache.InvalidateProposal(ctx, id); err != nil {
				log.Printf("expiry-worker: cache invalidate error for %s: %v", id, err)
			}
		}
	}

	if w.archive != nil {
		if err := w.archive.MarkExpired(ctx, expired); err != nil {
			log.Printf("expiry-worker: archive update error: %v", err)
		}
	}

	log.Printf("expiry-worker: sweep complete, %d proposals expired", len(expired))
}
