// Package moderation implements the proposal review workflow: computing
// field diffs against the published record and applying operator decisions.
package moderation

import (
	"strconv"

	"detouradmin/internal/models"
)

// FieldDiff is one row of the review modal: a comparable field with its
// published value, the proposed value, and whether the proposal changes it.
type FieldDiff struct {
	Label   string
	Before  string
	After   string
	Changed bool
}

// ComputeDiff compares a proposal's suggested fields against the published
// POI. A field counts as changed iff the suggested value is present,
// non-empty, and differs from the published one. Fields absent on both
// sides are omitted entirely. For a new_poi proposal original is nil and
// every present suggested field renders additively with no before value.
func ComputeDiff(original *models.VerifiedPoi, p *models.Proposal) []FieldDiff {
	fields := []diffField{
		textField("Name", original, func(o *models.VerifiedPoi) string { return o.Name }, p.SuggestedName),
		textField("Description", original, func(o *models.VerifiedPoi) string { return o.Description }, p.SuggestedDescription),
		textField("Category", original, func(o *models.VerifiedPoi) string { return o.Category }, p.SuggestedCategory),
		textField("Type", original, func(o *models.VerifiedPoi) string { return o.Type }, p.SuggestedType),
		numberField("Latitude", original, func(o *models.VerifiedPoi) float64 { return o.Latitude }, p.SuggestedLatitude),
		numberField("Longitude", original, func(o *models.VerifiedPoi) float64 { return o.Longitude }, p.SuggestedLongitude),
	}

	var diffs []FieldDiff
	for _, f := range fields {
		if !f.hasBefore && !f.hasAfter {
			continue
		}
		diffs = append(diffs, FieldDiff{
			Label:   f.label,
			Before:  f.before,
			After:   f.after,
			Changed: f.hasAfter && (!f.hasBefore || f.after != f.before),
		})
	}
	return diffs
}

type diffField struct {
	label     string
	before    string
	hasBefore bool
	after     string
	hasAfter  bool
}

func textField(label string, original *models.VerifiedPoi, get func(*models.VerifiedPoi) string, suggested *string) diffField {
	f := diffField{label: label}
	if original != nil {
		v := get(original)
		if v != "" {
			f.before = v
			f.hasBefore = true
		}
	}
	if suggested != nil && *suggested != "" {
		f.after = *suggested
		f.hasAfter = true
	}
	return f
}

func numberField(label string, original *models.VerifiedPoi, get func(*models.VerifiedPoi) float64, suggested *float64) diffField {
	f := diffField{label: label}
	if original != nil {
		f.before = formatCoord(get(original))
		f.hasBefore = true
	}
	if suggested != nil {
		f.after = formatCoord(*suggested)
		f.hasAfter = true
	}
	return f
}

// formatCoord renders a coordinate with the shortest representation that
// round-trips, so 48.85 and 48.8500 compare equal.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
