package model

import "time"

// OptionTally holds the per-option aggregates computed during a tally.
type OptionTally struct {
	Option       string  `json:"option"`
	IsEco        bool    `json:"isEco"`
	RawTotal     float64 `json:"rawTotal"`
	BoostedTotal float64 `json:"boostedTotal"`
	VoterCount   int     `json:"voterCount"`
}

// TallyResult is the authoritative outcome of a proposal tally.
// Options appear in the proposal's declared order.
type TallyResult struct {
	ProposalID    string            `json:"proposalId"`
	Options       []OptionTally     `json:"options"`
	WinningOption string            `json:"winningOption"`
	WinningParams map[string]string `json:"winningParams,omitempty"`
	TotalBoosted  float64           `json:"totalBoosted"`
	EcoPercentage float64           `json:"ecoPercentage"`
	TotalVoters   int               `json:"totalVoters"`
	TalliedAt     time.Time         `json:"talliedAt"`
}

// Tier is a discrete reward classification bucket keyed by a yield
// percentage threshold.
type Tier struct {
	Name        string  `json:"tier"`
	MinYield    float64 `json:"minYield"`
	RewardValue float64 `json:"rewardValue"`
	Color       string  `json:"color"`
}

// TopVotersResponse is the API response for the top-voters lookup.
type TopVotersResponse struct {
	ProposalID string        `json:"proposalId"`
	Voters     []StakeRecord `json:"voters"`
}
