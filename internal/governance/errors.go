package governance

import "errors"

// Sentinel errors for the governance core. Handlers map these to API
// error codes with errors.Is; nothing in this package retries or
// swallows a validation failure.
var (
	ErrInvalidProposal  = errors.New("invalid proposal")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrProposalExpired  = errors.New("proposal expired")
	ErrProposalClosed   = errors.New("proposal closed")
	ErrInvalidOption    = errors.New("invalid option")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidSentiment = errors.New("invalid sentiment")
)
