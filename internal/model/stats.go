package model

// StatsResponse is the API response for global statistics.
type StatsResponse struct {
	TotalProposals  int `json:"totalProposals"`
	ActiveProposals int `json:"activeProposals"`
	TalliedProposals int `json:"talliedProposals"`
	TotalStakes     int `json:"totalStakes"`
	DistinctVoters  int `json:"distinctVoters"`
	ArchivedResults int `json:"archivedResults"`
}

// StakeDistribution summarizes the boosted-amount distribution across a
// proposal's current stakes.
type StakeDistribution struct {
	ProposalID string  `json:"proposalId"`
	Count      int     `json:"count"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	StdDev     float64 `json:"stdDev"`
	P90        float64 `json:"p90"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
}

// ResultsDeltaEntry is one tallied result in a results feed response.
type ResultsDeltaEntry struct {
	ProposalID    string  `json:"proposalId"`
	Title         string  `json:"title"`
	WinningOption string  `json:"winningOption"`
	TotalBoosted  float64 `json:"totalBoosted"`
	EcoPercentage float64 `json:"ecoPercentage"`
	TalliedAt     string  `json:"talliedAt"`
}

// ResultsDeltaResponse is the API response for the tallied-results feed.
type ResultsDeltaResponse struct {
	Results       []ResultsDeltaEntry `json:"results"`
	FeedTimestamp string              `json:"feedTimestamp"`
}
