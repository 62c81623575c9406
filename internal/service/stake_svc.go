package service

import (
	"context"
	"fmt"
	"log"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/governance"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/model"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/repository"
)

// StakeService casts stakes into the ledger. The eco-boost multiplier
// is computed here, at cast time, from the sentiment score supplied in
// the request; the configured base and threshold come from config.
type StakeService struct {
	store          *governance.Store
	cache          *CacheService
	archive        *repository.ArchiveRepo
	archiveWorker  *ArchiveWorker
	boostBase      float64
	boostThreshold float64
}

func NewStakeService(store *governance.Store, cache *CacheService, archive *repository.ArchiveRepo,
	worker *ArchiveWorker, boostBase, boostThreshold float64) *StakeService {
	return &StakeService{
		store:          store,
		cache:          cache,
		archive:        archive,
		archiveWorker:  worker,
		boostBase:      boostBase,
		boostThreshold: boostThreshold,
	}
}

// Cast processes a stake submission: resolves the chosen option's eco
// flag, computes the boost, and records the stake (replacing any
// previous stake by the same voter).
func (s *StakeService) Cast(ctx context.Context, req model.CastStakeRequest) (*model.CastStakeResponse, error) {
	p, err := s.store.GetProposal(req.ProposalID)
	if err != nil {
		return nil, err
	}

	isEco := false
	found := false
	for _, opt := range p.Options {
		if opt.Name == req.Option {
			isEco = opt.IsEco
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q is not an option of proposal %s",
			governance.ErrInvalidOption, req.Option, req.ProposalID)
	}

	boost, err := governance.ComputeBoost(isEco, req.SentimentScore, s.boostBase, s.boostThreshold)
	if err != nil {
		return nil, err
	}

	rec, err := s.store.CastStake(req.ProposalID, req.Voter, req.Option, req.Amount, boost)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateProposal(ctx, req.ProposalID); err != nil {
			log.Printf("cache: invalidate proposal %s error: %v", req.ProposalID, err)
		}
		if err := s.cache.InvalidateTally(ctx, req.ProposalID); err != nil {
			log.Printf("cache: invalidate tally %s error: %v", req.ProposalID, err)
		}
	}

	// Stake snapshots are flushed in batches by the archive worker; the
	// individual upsert keeps the archive close to live between flushes.
	if s.archive != nil {
		if err := s.archive.SaveStake(ctx, req.ProposalID, rec); err != nil {
			log.Printf("archive: save stake %s/%s error: %v", req.ProposalID, rec.Voter, err)
		}
	}
	if s.archiveWorker != nil {
		s.archiveWorker.MarkDirty(req.ProposalID)
	}

	return &model.CastStakeResponse{
		Success:         true,
		Option:          rec.Option,
		BoostMultiplier: rec.BoostMultiplier,
		BoostedAmount:   rec.BoostedAmount,
	}, nil
}

// TopVoters returns the highest-staked voters on a proposal.
func (s *StakeService) TopVoters(proposalID string, limit int) ([]model.StakeRecord, error) {
	return s.store.TopVoters(proposalID, limit)
}
