package models

import "testing"

func strPtr(s string) *string { return &s }

func TestProposalNormalize(t *testing.T) {
	tests := []struct {
		name     string
		current  *string
		legacy   *string
		expected string
		isNil    bool
	}{
		{
			name:     "current field wins over legacy",
			current:  strPtr("Cafe Deux"),
			legacy:   strPtr("Cafe Ancien"),
			expected: "Cafe Deux",
		},
		{
			name:     "legacy promoted when current is nil",
			current:  nil,
			legacy:   strPtr("Cafe Ancien"),
			expected: "Cafe Ancien",
		},
		{
			name:     "legacy promoted when current is empty",
			current:  strPtr(""),
			legacy:   strPtr("Cafe Ancien"),
			expected: "Cafe Ancien",
		},
		{
			name:    "both nil stays nil",
			current: nil,
			legacy:  nil,
			isNil:   true,
		},
		{
			name:     "empty legacy does not replace empty current",
			current:  strPtr(""),
			legacy:   strPtr(""),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Proposal{SuggestedName: tt.current, LegacyName: tt.legacy}
			p.Normalize()

			if tt.isNil {
				if p.SuggestedName != nil {
					t.Errorf("SuggestedName = %q, want nil", *p.SuggestedName)
				}
				return
			}
			if p.SuggestedName == nil {
				t.Fatalf("SuggestedName = nil, want %q", tt.expected)
			}
			if *p.SuggestedName != tt.expected {
				t.Errorf("SuggestedName = %q, want %q", *p.SuggestedName, tt.expected)
			}
			if p.LegacyName != nil {
				t.Error("LegacyName should be cleared after Normalize")
			}
		})
	}
}

func TestValidDecision(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{StatusApproved, true},
		{StatusRejected, true},
		{StatusPending, false},
		{"", false},
		{"Approved", false},
	}

	for _, tt := range tests {
		if got := ValidDecision(tt.status); got != tt.expected {
			t.Errorf("ValidDecision(%q) = %v, want %v", tt.status, got, tt.expected)
		}
	}
}

func TestProposalDisplayName(t *testing.T) {
	p := &Proposal{}
	if got := p.DisplayName(); got != "(unnamed)" {
		t.Errorf("DisplayName() = %q, want placeholder", got)
	}

	p.SuggestedName = strPtr("New Spot")
	if got := p.DisplayName(); got != "New Spot" {
		t.Errorf("DisplayName() = %q, want %q", got, "New Spot")
	}
}
