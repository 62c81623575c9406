package model

import "time"

// ProposalStatus is the lifecycle state of a proposal.
type ProposalStatus string

const (
	ProposalActive  ProposalStatus = "active"
	ProposalTallied ProposalStatus = "tallied"
	ProposalExpired ProposalStatus = "expired"
)

// Option is one named choice on a proposal. Params is an opaque bundle
// carried through to the winning result; the core never inspects it.
type Option struct {
	Name   string            `json:"name"`
	IsEco  bool              `json:"isEco"`
	Params map[string]string `json:"params,omitempty"`
}

// Proposal represents a governance question with named mutually
// exclusive options and a deadline. Immutable after creation except
// for Status.
type Proposal struct {
	ID          string         `json:"proposalId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Options     []Option       `json:"options"`
	CreatedAt   time.Time      `json:"createdAt"`
	ExpiresAt   time.Time      `json:"expiresAt"`
	Status      ProposalStatus `json:"status"`
}

// OptionNames returns the declared option names in order.
func (p *Proposal) OptionNames() []string {
	names := make([]string, len(p.Options))
	for i, o := range p.Options {
		names[i] = o.Name
	}
	return names
}

// CreateProposalRequest is the API request body for creating a proposal.
type CreateProposalRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Options         []Option `json:"options"`
	EcoFlags        []bool   `json:"ecoFlags,omitempty"`
	DurationSeconds int64    `json:"durationSeconds"`
}

// CreateProposalResponse is the API response after creating a proposal.
type CreateProposalResponse struct {
	Success    bool      `json:"success"`
	ProposalID string    `json:"proposalId"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
