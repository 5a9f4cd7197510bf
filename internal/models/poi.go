package models

import "github.com/google/uuid"

// VerifiedPoi is the canonical, published point-of-interest record shown to
// end users. Edit proposals are compared against it; the dashboard never
// writes it (promotion of approved proposals is a separate publishing step).
type VerifiedPoi struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}
