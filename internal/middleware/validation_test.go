package middleware

import (
	"strings"
	"testing"
)

func TestValidateProposalID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid uuid", "550e8400-e29b-41d4-a716-446655440000", "550e8400-e29b-41d4-a716-446655440000", false},
		{"uppercase normalized", "550E8400-E29B-41D4-A716-446655440000", "550e8400-e29b-41d4-a716-446655440000", false},
		{"trims whitespace", "  550e8400-e29b-41d4-a716-446655440000  ", "550e8400-e29b-41d4-a716-446655440000", false},
		{"empty", "", "", true},
		{"not a uuid", "proposal-42", "", true},
		{"sql injection", "'; DROP TABLE proposals--", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateProposalID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateVoter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid classic address", "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH", "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH", false},
		{"trims whitespace", "  rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH  ", "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH", false},
		{"empty", "", "", true},
		{"missing r prefix", "N7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH", "", true},
		{"too short", "rShort", "", true},
		{"base58 forbidden chars", "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzR0", "", true},
		{"sql injection", "r'; DROP TABLE stakes--", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateVoter(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateOptionName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "EcoStable", "EcoStable", false},
		{"trims whitespace", "  EcoStable  ", "EcoStable", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"exactly 64", strings.Repeat("x", 64), strings.Repeat("x", 64), false},
		{"too long", strings.Repeat("x", 65), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateOptionName(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	if _, errMsg := ValidateTitle(""); errMsg == "" {
		t.Error("empty title should be rejected")
	}
	if _, errMsg := ValidateTitle(strings.Repeat("t", 141)); errMsg == "" {
		t.Error("over-long title should be rejected")
	}
	got, errMsg := ValidateTitle("  Reallocate treasury  ")
	if errMsg != "" || got != "Reallocate treasury" {
		t.Errorf("got %q (%s), want trimmed title", got, errMsg)
	}
}

func TestValidateDescription(t *testing.T) {
	if got := ValidateDescription("  weekly yield vote  "); got != "weekly yield vote" {
		t.Errorf("trim failed: got %q", got)
	}
	long := strings.Repeat("d", 3000)
	if got := ValidateDescription(long); len(got) != MaxDescriptionLen {
		t.Errorf("truncation failed: got len %d, want %d", len(got), MaxDescriptionLen)
	}
}
