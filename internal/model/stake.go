package model

import "time"

// StakeRecord represents a single voter's stake on a proposal. At most
// one record exists per (proposal, voter); re-voting replaces the
// previous record entirely.
type StakeRecord struct {
	Voter           string    `json:"voter"`
	Option          string    `json:"option"`
	RawAmount       float64   `json:"rawAmount"`
	BoostMultiplier float64   `json:"boostMultiplier"`
	BoostedAmount   float64   `json:"boostedAmount"`
	CastAt          time.Time `json:"castAt"`
	Seq             int64     `json:"-"`
}

// CastStakeRequest is the API request body for casting (or replacing)
// a stake. SentimentScore is supplied by the caller's oracle
// collaborator; the service never generates it.
type CastStakeRequest struct {
	ProposalID     string  `json:"proposalId"`
	Voter          string  `json:"voter"`
	Option         string  `json:"option"`
	Amount         float64 `json:"amount"`
	SentimentScore float64 `json:"sentimentScore"`
}

// CastStakeResponse is the API response after casting a stake.
type CastStakeResponse struct {
	Success         bool    `json:"success"`
	Option          string  `json:"option"`
	BoostMultiplier float64 `json:"boostMultiplier"`
	BoostedAmount   float64 `json:"boostedAmount"`
}
