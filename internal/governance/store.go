package governance

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/model"
)

// Store holds all proposals and their stake ledgers in memory. It is
// the single authority for governance state; the Postgres archive is a
// write-behind copy maintained by the service layer. All mutations to
// one proposal are serialized by that proposal's own mutex, so two
// voters staking concurrently never lose an update and a tally never
// observes a half-applied vote replace.
type Store struct {
	mu        sync.RWMutex
	proposals map[string]*proposalState

	// now is swappable in tests.
	now func() time.Time
}

// proposalState bundles a proposal with its stake ledger and running
// per-option totals. totals is maintained incrementally on every cast
// and must always equal a full recomputation over stakes.
type proposalState struct {
	mu        sync.Mutex
	proposal  model.Proposal
	stakes    map[string]*model.StakeRecord
	totals    map[string]*optionTotals
	seq       int64
	tallied   bool
	talliedAt time.Time
}

type optionTotals struct {
	raw     float64
	boosted float64
	voters  int
}

// NewStore creates an empty governance store. The store's lifetime is
// owned by whoever composes the service; there is no package-level
// instance.
func NewStore() *Store {
	return &Store{
		proposals: make(map[string]*proposalState),
		now:       time.Now,
	}
}

// CreateProposal validates and stores a new proposal, returning it with
// its assigned ID. Fails with ErrInvalidProposal on fewer than two
// options, duplicate option names, a non-positive duration, or an
// eco-flag array that does not match the options length.
func (s *Store) CreateProposal(req model.CreateProposalRequest) (*model.Proposal, error) {
	if len(req.Options) < 2 {
		return nil, fmt.Errorf("%w: at least 2 options required, got %d", ErrInvalidProposal, len(req.Options))
	}
	if req.DurationSeconds <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidProposal)
	}
	if req.EcoFlags != nil && len(req.EcoFlags) != len(req.Options) {
		return nil, fmt.Errorf("%w: ecoFlags length %d does not match %d options",
			ErrInvalidProposal, len(req.EcoFlags), len(req.Options))
	}

	seen := make(map[string]bool, len(req.Options))
	options := make([]model.Option, len(req.Options))
	for i, o := range req.Options {
		if o.Name == "" {
			return nil, fmt.Errorf("%w: option %d has no name", ErrInvalidProposal, i)
		}
		if seen[o.Name] {
			return nil, fmt.Errorf("%w: duplicate option %q", ErrInvalidProposal, o.Name)
		}
		seen[o.Name] = true

		opt := model.Option{Name: o.Name, IsEco: o.IsEco}
		if req.EcoFlags != nil {
			opt.IsEco = req.EcoFlags[i]
		}
		if o.Params != nil {
			opt.Params = make(map[string]string, len(o.Params))
			for k, v := range o.Params {
				opt.Params[k] = v
			}
		}
		options[i] = opt
	}

	now := s.now()
	p := model.Proposal{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Options:     options,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(req.DurationSeconds) * time.Second),
		Status:      model.ProposalActive,
	}

	state := &proposalState{
		proposal: p,
		stakes:   make(map[string]*model.StakeRecord),
		totals:   make(map[string]*optionTotals, len(options)),
	}
	for _, o := range options {
		state.totals[o.Name] = &optionTotals{}
	}

	s.mu.Lock()
	s.proposals[p.ID] = state
	s.mu.Unlock()

	return copyProposal(&p), nil
}

// GetProposal returns a copy of the proposal. An active proposal past
// its deadline is reported as expired; the stored status is only
// flipped by the expiry sweep, staking correctness never depends on it.
func (s *Store) GetProposal(proposalID string) (*model.Proposal, error) {
	state, err := s.lookup(proposalID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	p := copyProposal(&state.proposal)
	if p.Status == model.ProposalActive && s.now().After(p.ExpiresAt) {
		p.Status = model.ProposalExpired
	}
	return p, nil
}

// ListActive returns copies of all proposals that are still open for
// staking at the given time, ordered by creation time.
func (s *Store) ListActive(now time.Time) []model.Proposal {
	s.mu.RLock()
	states := make([]*proposalState, 0, len(s.proposals))
	for _, st := range s.proposals {
		states = append(states, st)
	}
	s.mu.RUnlock()

	var active []model.Proposal
	for _, st := range states {
		st.mu.Lock()
		if !st.tallied && st.proposal.ExpiresAt.After(now) {
			active = append(active, *copyProposal(&st.proposal))
		}
		st.mu.Unlock()
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})
	return active
}

// CastStake records or replaces a voter's stake on a proposal. A
// previous stake by the same voter is replaced atomically: its boosted
// amount is removed from the old option's totals before the new amount
// is added, all under the proposal lock.
func (s *Store) CastStake(proposalID, voter, optionName string, rawAmount, boostMultiplier float64) (*model.StakeRecord, error) {
	state, err := s.lookup(proposalID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.tallied {
		return nil, fmt.Errorf("%w: proposal %s already tallied", ErrProposalClosed, proposalID)
	}
	now := s.now()
	if now.After(state.proposal.ExpiresAt) {
		return nil, fmt.Errorf("%w: proposal %s expired at %s", ErrProposalExpired,
			proposalID, state.proposal.ExpiresAt.UTC().Format(time.RFC3339))
	}
	totals, ok := state.totals[optionName]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an option of proposal %s", ErrInvalidOption, optionName, proposalID)
	}
	if rawAmount <= 0 {
		return nil, fmt.Errorf("%w: stake must be positive, got %g", ErrInvalidAmount, rawAmount)
	}
	if boostMultiplier < 1 {
		return nil, fmt.Errorf("%w: boost multiplier must be >= 1, got %g", ErrInvalidAmount, boostMultiplier)
	}

	if prev, exists := state.stakes[voter]; exists {
		old := state.totals[prev.Option]
		old.raw -= prev.RawAmount
		old.boosted -= prev.BoostedAmount
		old.voters--
	}

	state.seq++
	rec := &model.StakeRecord{
		Voter:           voter,
		Option:          optionName,
		RawAmount:       rawAmount,
		BoostMultiplier: boostMultiplier,
		BoostedAmount:   rawAmount * boostMultiplier,
		CastAt:          now,
		Seq:             state.seq,
	}
	state.stakes[voter] = rec
	totals.raw += rec.RawAmount
	totals.boosted += rec.BoostedAmount
	totals.voters++

	out := *rec
	return &out, nil
}

// StakesForProposal returns a snapshot of all current stakes on a
// proposal. Order is not significant; consumers needing an order use
// TopVoters.
func (s *Store) StakesForProposal(proposalID string) ([]model.StakeRecord, error) {
	state, err := s.lookup(proposalID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	return snapshotStakes(state), nil
}

// MarkExpired flips every active proposal past its deadline to the
// expired status and returns their IDs. Informational only: CastStake
// checks the wall clock itself.
func (s *Store) MarkExpired(now time.Time) []string {
	s.mu.RLock()
	states := make([]*proposalState, 0, len(s.proposals))
	for _, st := range s.proposals {
		states = append(states, st)
	}
	s.mu.RUnlock()

	var expired []string
	for _, st := range states {
		st.mu.Lock()
		if st.proposal.Status == model.ProposalActive && !st.tallied && now.After(st.proposal.ExpiresAt) {
			st.proposal.Status = model.ProposalExpired
			expired = append(expired, st.proposal.ID)
		}
		st.mu.Unlock()
	}
	return expired
}

// Counts returns aggregate counters over the whole store: proposals by
// status, total stakes, and distinct voters.
func (s *Store) Counts(now time.Time) (total, active, tallied, stakes, voters int) {
	s.mu.RLock()
	states := make([]*proposalState, 0, len(s.proposals))
	for _, st := range s.proposals {
		states = append(states, st)
	}
	s.mu.RUnlock()

	seen := make(map[string]bool)
	for _, st := range states {
		st.mu.Lock()
		total++
		if st.tallied {
			tallied++
		} else if st.proposal.ExpiresAt.After(now) {
			active++
		}
		stakes += len(st.stakes)
		for voter := range st.stakes {
			if !seen[voter] {
				seen[voter] = true
				voters++
			}
		}
		st.mu.Unlock()
	}
	return
}

func (s *Store) lookup(proposalID string) (*proposalState, error) {
	s.mu.RLock()
	state, ok := s.proposals[proposalID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProposalNotFound, proposalID)
	}
	return state, nil
}

func snapshotStakes(state *proposalState) []model.StakeRecord {
	out := make([]model.StakeRecord, 0, len(state.stakes))
	for _, rec := range state.stakes {
		out = append(out, *rec)
	}
	return out
}

func copyProposal(p *model.Proposal) *model.Proposal {
	cp := *p
	cp.Options = make([]model.Option, len(p.Options))
	for i, o := range p.Options {
		opt := model.Option{Name: o.Name, IsEco: o.IsEco}
		if o.Params != nil {
			opt.Params = make(map[string]string, len(o.Params))
			for k, v := range o.Params {
				opt.Params[k] = v
			}
		}
		cp.Options[i] = opt
	}
	return &cp
}
