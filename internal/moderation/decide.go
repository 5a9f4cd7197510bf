package moderation

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"detouradmin/internal/db"
	"detouradmin/internal/models"
)

// Outcome classifies the result of applying an operator decision.
type Outcome int

const (
	// Decided: the proposal transitioned out of pending.
	Decided Outcome = iota
	// AlreadyDecided: the proposal had already left pending; a no-op.
	AlreadyDecided
	// NotFound: no such proposal.
	NotFound
	// InvalidDecision: the requested status is not a terminal decision.
	InvalidDecision
	// Failed: the store write failed; the proposal is still pending.
	Failed
)

// Result is the explicit command result of a decision, so callers update
// their view of the queue only on confirmed success.
type Result struct {
	Outcome Outcome
	Err     error
}

// OK reports whether the proposal is out of the pending queue, whether this
// call moved it or an earlier one did.
func (r Result) OK() bool {
	return r.Outcome == Decided || r.Outcome == AlreadyDecided
}

// Decider is the slice of the store the decision step needs.
type Decider interface {
	DecideProposal(ctx context.Context, id uuid.UUID, status string) (bool, error)
}

// Decide applies an operator decision to a proposal. Decisions are
// idempotent: deciding an already-decided proposal succeeds without
// touching the store row again.
func Decide(ctx context.Context, store Decider, id uuid.UUID, decision string) Result {
	if !models.ValidDecision(decision) {
		return Result{Outcome: InvalidDecision}
	}

	updated, err := store.DecideProposal(ctx, id, decision)
	if err != nil {
		if errors.Is(err, db.ErrProposalNotFound) {
			return Result{Outcome: NotFound, Err: err}
		}
		return Result{Outcome: Failed, Err: err}
	}
	if !updated {
		return Result{Outcome: AlreadyDecided}
	}
	return Result{Outcome: Decided}
}
