package db

import "errors"

// Domain-level database error sentinels.
var (
	// Proposal errors
	ErrProposalNotFound = errors.New("proposal not found")

	// POI errors
	ErrPoiNotFound = errors.New("point of interest not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Waitlist errors
	ErrWaitlistEntryNotFound = errors.New("waitlist entry not found")
)
