package governance

import (
	"sort"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/model"
)

// Tally computes the authoritative result for a proposal from its
// current stake set and freezes the proposal: the first call moves it
// to the tallied status and later CastStake calls fail with
// ErrProposalClosed. Repeat calls return an identical result, since
// the stake set can no longer change and the recorded tally time is
// reused.
//
// The winner is the option with the highest boosted total; exact ties
// go to the option declared first in the proposal's option order.
// Never random.
func (s *Store) Tally(proposalID string) (*model.TallyResult, error) {
	state, err := s.lookup(proposalID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if !state.tallied {
		state.tallied = true
		state.talliedAt = s.now()
		state.proposal.Status = model.ProposalTallied
	}

	result := &model.TallyResult{
		ProposalID: proposalID,
		Options:    make([]model.OptionTally, len(state.proposal.Options)),
		TalliedAt:  state.talliedAt,
	}

	var (
		winnerIdx    = 0
		winnerTotal  float64
		ecoBoosted   float64
		totalBoosted float64
	)
	for i, opt := range state.proposal.Options {
		t := state.totals[opt.Name]
		result.Options[i] = model.OptionTally{
			Option:       opt.Name,
			IsEco:        opt.IsEco,
			RawTotal:     t.raw,
			BoostedTotal: t.boosted,
			VoterCount:   t.voters,
		}
		totalBoosted += t.boosted
		if opt.IsEco {
			ecoBoosted += t.boosted
		}
		// Strictly greater keeps the earliest declared option on ties.
		if i == 0 || t.boosted > winnerTotal {
			winnerTotal = t.boosted
			winnerIdx = i
		}
	}

	winner := state.proposal.Options[winnerIdx]
	result.WinningOption = winner.Name
	if winner.Params != nil {
		result.WinningParams = make(map[string]string, len(winner.Params))
		for k, v := range winner.Params {
			result.WinningParams[k] = v
		}
	}
	result.TotalBoosted = totalBoosted
	if totalBoosted > 0 {
		result.EcoPercentage = ecoBoosted / totalBoosted * 100
	}
	result.TotalVoters = len(state.stakes)

	return result, nil
}

// TopVoters returns up to limit stake records ordered by boosted amount
// descending, ties broken by earliest cast time (first-come priority).
// Returns an empty slice, never an error, when the proposal has no
// stakes.
func (s *Store) TopVoters(proposalID string, limit int) ([]model.StakeRecord, error) {
	state, err := s.lookup(proposalID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	records := snapshotStakes(state)
	state.mu.Unlock()

	sort.Slice(records, func(i, j int) bool {
		if records[i].BoostedAmount != records[j].BoostedAmount {
			return records[i].BoostedAmount > records[j].BoostedAmount
		}
		if !records[i].CastAt.Equal(records[j].CastAt) {
			return records[i].CastAt.Before(records[j].CastAt)
		}
		return records[i].Seq < records[j].Seq
	})

	if limit >= 0 && limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}

// recomputeTotals rebuilds per-option totals from the raw stake set.
// The incrementally maintained totals must always match this; the
// property is exercised in tests.
func recomputeTotals(options []model.Option, stakes []model.StakeRecord) map[string]*optionTotals {
	totals := make(map[string]*optionTotals, len(options))
	for _, o := range options {
		totals[o.Name] = &optionTotals{}
	}
	for _, rec := range stakes {
		t := totals[rec.Option]
		t.raw += rec.RawAmount
		t.boosted += rec.BoostedAmount
		t.voters++
	}
	return totals
}
