package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected bool
	}{
		{"ops@detour.app", true},
		{"first.last+tag@example.co.uk", true},
		{"", false},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"no-tld@example", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.expected {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.expected)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  OPS@Detour.App "); got != "ops@detour.app" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		expected bool
	}{
		{"paris", 48.8566, 2.3522, true},
		{"poles", 90, 180, true},
		{"negative bounds", -90, -180, true},
		{"latitude too high", 90.1, 0, false},
		{"latitude too low", -91, 0, false},
		{"longitude too high", 0, 180.5, false},
		{"longitude too low", 0, -181, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidateCoordinates(tt.lat, tt.lon)
			if ok != tt.expected {
				t.Errorf("ValidateCoordinates(%v, %v) = %v (%s), want %v", tt.lat, tt.lon, ok, msg, tt.expected)
			}
			if !ok && msg == "" {
				t.Error("rejections must carry a message")
			}
		})
	}
}
