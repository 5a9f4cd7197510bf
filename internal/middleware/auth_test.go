package middleware

import (
	"testing"

	"detouradmin/internal/config"
)

func TestAllowListCheck(t *testing.T) {
	cfg := &config.Config{
		AdminEmails: []string{"ops@detour.app", " Admin@Detour.app "},
	}

	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		{"exact match", "ops@detour.app", true},
		{"case-insensitive match", "OPS@Detour.App", true},
		{"allow-list entry with whitespace and case", "admin@detour.app", true},
		{"unlisted email", "intruder@detour.app", false},
		{"empty email", "", false},
		{"whitespace-only email", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.IsOperator(tt.email); got != tt.expected {
				t.Errorf("IsOperator(%q) = %v, want %v", tt.email, got, tt.expected)
			}
		})
	}
}

func TestAllowListEmpty(t *testing.T) {
	cfg := &config.Config{}
	if cfg.IsOperator("anyone@detour.app") {
		t.Error("an empty allow-list must reject every identity")
	}
}
