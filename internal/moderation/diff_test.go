package moderation

import (
	"testing"

	"detouradmin/internal/models"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func findField(t *testing.T, diffs []FieldDiff, label string) *FieldDiff {
	t.Helper()
	for i := range diffs {
		if diffs[i].Label == label {
			return &diffs[i]
		}
	}
	return nil
}

func TestComputeDiffEditChangedField(t *testing.T) {
	original := &models.VerifiedPoi{Name: "Cafe Un", Latitude: 48.85, Longitude: 2.35}
	p := &models.Proposal{
		Type:          models.ProposalTypeEditPoi,
		SuggestedName: strPtr("Cafe Deux"),
	}

	diffs := ComputeDiff(original, p)

	name := findField(t, diffs, "Name")
	if name == nil {
		t.Fatal("expected a Name row")
	}
	if name.Before != "Cafe Un" || name.After != "Cafe Deux" {
		t.Errorf("Name row = %q -> %q, want Cafe Un -> Cafe Deux", name.Before, name.After)
	}
	if !name.Changed {
		t.Error("Name row should be flagged changed")
	}
}

func TestComputeDiffEqualValueUnchanged(t *testing.T) {
	original := &models.VerifiedPoi{Name: "Cafe Un", Category: "cafe", Latitude: 48.85, Longitude: 2.35}
	p := &models.Proposal{
		Type:              models.ProposalTypeEditPoi,
		SuggestedName:     strPtr("Cafe Un"),
		SuggestedCategory: strPtr("cafe"),
	}

	for _, d := range ComputeDiff(original, p) {
		if d.Changed {
			t.Errorf("field %s flagged changed, both sides equal or suggestion absent", d.Label)
		}
	}
}

func TestComputeDiffEmptySuggestionNeverChanged(t *testing.T) {
	original := &models.VerifiedPoi{Name: "Cafe Un", Description: "old text", Latitude: 1, Longitude: 2}
	tests := []struct {
		name      string
		suggested *string
	}{
		{"nil suggestion", nil},
		{"empty suggestion", strPtr("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Proposal{Type: models.ProposalTypeEditPoi, SuggestedDescription: tt.suggested}
			d := findField(t, ComputeDiff(original, p), "Description")
			if d == nil {
				t.Fatal("expected a Description row for context")
			}
			if d.Changed {
				t.Error("empty or absent suggestion must not flag changed")
			}
			if d.Before != "old text" {
				t.Errorf("Before = %q, want the published value", d.Before)
			}
		})
	}
}

func TestComputeDiffBothSidesAbsentOmitted(t *testing.T) {
	// Published record has an empty description; proposal suggests nothing
	// for it. The row must be omitted, not rendered empty/empty.
	original := &models.VerifiedPoi{Name: "Cafe Un", Latitude: 1, Longitude: 2}
	p := &models.Proposal{Type: models.ProposalTypeEditPoi, SuggestedName: strPtr("Cafe Deux")}

	if d := findField(t, ComputeDiff(original, p), "Description"); d != nil {
		t.Errorf("Description row should be omitted when absent on both sides, got %+v", d)
	}
}

func TestComputeDiffNewProposalAdditive(t *testing.T) {
	p := &models.Proposal{
		Type:               models.ProposalTypeNewPoi,
		SuggestedName:      strPtr("New Spot"),
		SuggestedLatitude:  f64Ptr(48.85),
		SuggestedLongitude: f64Ptr(2.35),
	}

	diffs := ComputeDiff(nil, p)
	if len(diffs) != 3 {
		t.Fatalf("got %d rows, want 3 (name, latitude, longitude)", len(diffs))
	}
	for _, d := range diffs {
		if d.Before != "" {
			t.Errorf("field %s has a before value %q on a new proposal", d.Label, d.Before)
		}
		if !d.Changed {
			t.Errorf("field %s on a new proposal should be flagged as new", d.Label)
		}
	}
}

func TestComputeDiffCoordinateValueEquality(t *testing.T) {
	original := &models.VerifiedPoi{Name: "Spot", Latitude: 48.85, Longitude: 2.35}
	p := &models.Proposal{
		Type:              models.ProposalTypeEditPoi,
		SuggestedLatitude: f64Ptr(48.85),
	}

	d := findField(t, ComputeDiff(original, p), "Latitude")
	if d == nil {
		t.Fatal("expected a Latitude row")
	}
	if d.Changed {
		t.Error("identical coordinate flagged changed")
	}

	p.SuggestedLatitude = f64Ptr(48.86)
	d = findField(t, ComputeDiff(original, p), "Latitude")
	if d == nil || !d.Changed {
		t.Error("differing coordinate should be flagged changed")
	}
}
