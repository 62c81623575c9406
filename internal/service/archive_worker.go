package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/governance"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/repository"
)

// ArchiveWorker batches write-behind stake snapshots. Services mark a
// proposal dirty after each cast; the worker drains the pending set on
// a fixed window and writes one consistent snapshot per proposal,
// so a burst of re-votes on one proposal costs a single archive
// transaction rather than one per vote.
type ArchiveWorker struct {
	store   *governance.Store
	archive *repository.ArchiveRepo
	window  time.Duration

	mu      sync.Mutex
	pending map[string]struct{}
}

// NewArchiveWorker creates a batching archive worker.
func NewArchiveWorker(store *governance.Store, archive *repository.ArchiveRepo) *ArchiveWorker {
	return &ArchiveWorker{
		store:   store,
		archive: archive,
		window:  5 * time.Second,
		pending: make(map[string]struct{}),
	}
}

// MarkDirty queues a proposal for snapshotting on the next flush.
func (w *ArchiveWorker) MarkDirty(proposalID string) {
	w.mu.Lock()
	w.pending[proposalID] = struct{}{}
	w.mu.Unlock()
}

// Start runs the flush loop until the context is cancelled, then flushes
// one final time.
func (w *ArchiveWorker) Start(ctx context.Context) {
	if w.archive == nil {
		log.Println("archive-worker: no archive configured, worker idle")
		<-ctx.Done()
		return
	}
	log.Printf("archive-worker: starting (batch window=%s)", w.window)

	ticker := time.NewTicker(w.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.flush(ctx)
		case <-ctx.Done():
			w.flush(context.Background())
			log.Println("archive-worker: stopping (context cancelled)")
			return
		}
	}
}

// flush drains the pending set and snapshots each proposal's stakes.
func (w *ArchiveWorker) flush(ctx context.Context) {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	batch := w.pending
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	snapshotted := 0
	for proposalID := range batch {
		stakes, err := w.store.StakesForProposal(proposalID)
		if err != nil {
			log.Printf("archive-worker: snapshot error for %s: %v", proposalID, err)
			continue
		}
		if err := w.archive.SnapshotStakes(ctx, proposalID, stakes); err != nil {
			log.Printf("archive-worker: write error for %s: %v", proposalID, err)
			continue
		}
		snapshotted++
	}

	if snapshotted > 0 {
		log.Printf("archive-worker: batch complete, %d proposals snapshotted (from %d marks)",
			snapshotted, len(batch))
	}
}
