package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/governance"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/model"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/repository"
)

// TallyService runs tallies and serves their results. A tallied
// proposal is frozen, so results are cached aggressively and archived
// for the results feed.
type TallyService struct {
	store   *governance.Store
	cache   *CacheService
	archive *repository.ArchiveRepo
}

func NewTallyService(store *governance.Store, cache *CacheService, archive *repository.ArchiveRepo) *TallyService {
	return &TallyService{store: store, cache: cache, archive: archive}
}

// Run tallies a proposal, freezing it on the first call. Repeat calls
// recompute an identical result by construction; the cache just skips
// that work.
func (s *TallyService) Run(ctx context.Context, proposalID string) (*model.TallyResult, error) {
	if s.cache != nil {
		if data, err := s.cache.GetTally(ctx, proposalID); err == nil && data != nil {
			var cached model.TallyResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	result, err := s.store.Tally(proposalID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetTally(ctx, proposalID, result); err != nil {
			log.Printf("cache: set tally %s error: %v", proposalID, err)
		}
		// The proposal's status changed to tallied; drop the stale copy.
		if err := s.cache.InvalidateProposal(ctx, proposalID); err != nil {
			log.Printf("cache: invalidate proposal %s error: %v", proposalID, err)
		}
	}

	if s.archive != nil {
		p, perr := s.store.GetProposal(proposalID)
		if perr == nil {
			if err := s.archive.SaveTallyResult(ctx, p, result); err != nil {
				log.Printf("archive: save tally result %s error: %v", proposalID, err)
			}
		}
	}

	return result, nil
}

// TierForYield classifies a yield percentage into a reward tier.
func (s *TallyService) TierForYield(yieldPercent float64) model.Tier {
	return governance.TierForYield(yieldPercent)
}
