package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/governance"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/model"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/repository"
)

type ProposalService struct {
	store   *governance.Store
	cache   *CacheService
	archive *repository.ArchiveRepo
}

func NewProposalService(store *governance.Store, cache *CacheService, archive *repository.ArchiveRepo) *ProposalService {
	return &ProposalService{store: store, cache: cache, archive: archive}
}

// Create validates and stores a new proposal, then archives it
// write-behind. Archive failures are logged, never surfaced: the
// in-memory store is authoritative.
func (s *ProposalService) Create(ctx context.Context, req model.CreateProposalRequest) (*model.Proposal, error) {
	p, err := s.store.CreateProposal(req)
	if err != nil {
		return nil, err
	}

	if s.archive != nil {
		if err := s.archive.SaveProposal(ctx, p); err != nil {
			log.Printf("archive: save proposal %s error: %v", p.ID, err)
		}
	}

	return p, nil
}

// Get returns a proposal, serving from cache when possible.
func (s *ProposalService) Get(ctx context.Context, proposalID string) (*model.Proposal, error) {
	if s.cache != nil {
		if data, err := s.cache.GetProposal(ctx, proposalID); err == nil && data != nil {
			var p model.Proposal
			if err := json.Unmarshal(data, &p); err == nil {
				return &p, nil
			}
		}
	}

	p, err := s.store.GetProposal(proposalID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetProposal(ctx, proposalID, p); err != nil {
			log.Printf("cache: set proposal %s error: %v", proposalID, err)
		}
	}

	return p, nil
}

// ListActive returns all proposals still open for staking.
func (s *ProposalService) ListActive() []model.Proposal {
	return s.store.ListActive(time.Now())
}
