package handlers

import (
	"testing"

	"github.com/google/uuid"

	"detouradmin/internal/models"
)

func TestFilterUsers(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	users := []models.AppUser{
		{ID: uuid.New(), Email: "alice@detour.app", DisplayName: "Alice"},
		{ID: uuid.New(), Email: "bob@example.com", DisplayName: "Bob Walker"},
		{ID: id, Email: "carol@example.com", DisplayName: "Carol"},
	}

	tests := []struct {
		name   string
		query  string
		expect []string // emails of expected matches, in order
	}{
		{"empty query matches all", "", []string{"alice@detour.app", "bob@example.com", "carol@example.com"}},
		{"whitespace query matches all", "   ", []string{"alice@detour.app", "bob@example.com", "carol@example.com"}},
		{"email substring", "detour", []string{"alice@detour.app"}},
		{"case-insensitive display name", "WALKER", []string{"bob@example.com"}},
		{"id substring", "9dad-11d1", []string{"carol@example.com"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterUsers(users, tt.query)
			if len(got) != len(tt.expect) {
				t.Fatalf("got %d users, want %d", len(got), len(tt.expect))
			}
			for i, u := range got {
				if u.Email != tt.expect[i] {
					t.Errorf("result[%d] = %s, want %s", i, u.Email, tt.expect[i])
				}
			}
		})
	}
}

func TestMailtoLink(t *testing.T) {
	link := MailtoLink("invitee@example.com")

	if want := "mailto:invitee@example.com?subject="; len(link) < len(want) || link[:len(want)] != want {
		t.Errorf("link = %q, want prefix %q", link, want)
	}
	for _, c := range link {
		if c == ' ' || c == '+' {
			t.Errorf("link contains unescaped %q: %s", c, link)
		}
	}
}
