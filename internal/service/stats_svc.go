package service

import (
	"context"
	"log"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/governance"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/model"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/repository"
)

type StatsService struct {
	store   *governance.Store
	archive *repository.ArchiveRepo
}

func NewStatsService(store *governance.Store, archive *repository.ArchiveRepo) *StatsService {
	return &StatsService{store: store, archive: archive}
}

// GetStats returns aggregate counters: live numbers from the store plus
// the archived-results count from Postgres.
func (s *StatsService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	total, active, tallied, stakeCount, voters := s.store.Counts(time.Now())

	resp := &model.StatsResponse{
		TotalProposals:   total,
		ActiveProposals:  active,
		TalliedProposals: tallied,
		TotalStakes:      stakeCount,
		DistinctVoters:   voters,
	}

	if s.archive != nil {
		archived, err := s.archive.CountArchivedResults(ctx)
		if err != nil {
			log.Printf("archive: count results error: %v", err)
		} else {
			resp.ArchivedResults = archived
		}
	}

	return resp, nil
}

// Distribution summarizes the boosted-amount spread across a proposal's
// current stakes.
func (s *StatsService) Distribution(proposalID string) (*model.StakeDistribution, error) {
	records, err := s.store.StakesForProposal(proposalID)
	if err != nil {
		return nil, err
	}

	amounts := make([]float64, len(records))
	for i, rec := range records {
		amounts[i] = rec.BoostedAmount
	}

	return computeDistribution(proposalID, amounts), nil
}

// computeDistribution builds the distribution summary from boosted
// amounts. Zero stakes yield an all-zero summary, not an error.
func computeDistribution(proposalID string, amounts []float64) *model.StakeDistribution {
	dist := &model.StakeDistribution{
		ProposalID: proposalID,
		Count:      len(amounts),
	}
	if len(amounts) == 0 {
		return dist
	}

	data := stats.LoadRawData(amounts)
	// These only error on empty input, which is handled above.
	dist.Mean, _ = stats.Mean(data)
	dist.Median, _ = stats.Median(data)
	dist.StdDev, _ = stats.StandardDeviation(data)
	dist.P90, _ = stats.Percentile(data, 90)
	dist.Min, _ = stats.Min(data)
	dist.Max, _ = stats.Max(data)
	return dist
}
