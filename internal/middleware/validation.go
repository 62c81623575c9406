package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Field length limits matching the archive schema constraints.
const (
	MaxTitleLen       = 140  // proposals.title VARCHAR(140)
	MaxDescriptionLen = 2000 // proposals.description VARCHAR(2000)
	MaxOptionNameLen  = 64   // stakes.option_name VARCHAR(64)
	MaxVoterLen       = 64   // stakes.voter VARCHAR(64)
	MaxOptionCount    = 16
	MaxParamKeys      = 16
)

// voterRe matches XRPL classic addresses: 'r' followed by base58
// (no 0, O, I, l), 25-35 characters total.
var voterRe = regexp.MustCompile(`^r[1-9A-HJ-NP-Za-km-z]{24,34}$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateProposalID checks that a proposal ID is a well-formed UUID.
func ValidateProposalID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "proposalId is required"
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", "proposalId must be a valid UUID"
	}
	return parsed.String(), ""
}

// ValidateVoter checks that a voter is a well-formed XRPL classic address.
func ValidateVoter(voter string) (string, string) {
	voter = strings.TrimSpace(voter)
	if voter == "" {
		return "", "voter is required"
	}
	if len(voter) > MaxVoterLen {
		return "", "voter must be at most 64 characters"
	}
	if !voterRe.MatchString(voter) {
		return "", "voter must be a valid r-address"
	}
	return voter, ""
}

// ValidateOptionName checks that an option name is present and within limits.
func ValidateOptionName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "option is required"
	}
	if len(name) > MaxOptionNameLen {
		return "", "option must be at most 64 characters"
	}
	return name, ""
}

// ValidateTitle trims a proposal title and checks limits.
func ValidateTitle(title string) (string, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "title is required"
	}
	if len(title) > MaxTitleLen {
		return "", "title must be at most 140 characters"
	}
	return title, ""
}

// ValidateDescription trims and truncates a description to limits.
func ValidateDescription(desc string) string {
	desc = strings.TrimSpace(desc)
	if len(desc) > MaxDescriptionLen {
		desc = desc[:MaxDescriptionLen]
	}
	return desc
}
