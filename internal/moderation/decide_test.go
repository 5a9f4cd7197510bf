package moderation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"detouradmin/internal/db"
	"detouradmin/internal/models"
)

// fakeDecider records the statuses written per proposal and simulates the
// store's pending-guarded update.
type fakeDecider struct {
	statuses map[uuid.UUID]string
	writes   []string
	failWith error
}

func (f *fakeDecider) DecideProposal(_ context.Context, id uuid.UUID, status string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	current, ok := f.statuses[id]
	if !ok {
		return false, db.ErrProposalNotFound
	}
	if current != models.StatusPending {
		return false, nil
	}
	f.statuses[id] = status
	f.writes = append(f.writes, status)
	return true, nil
}

func TestDecideTransitionsPending(t *testing.T) {
	id := uuid.New()
	store := &fakeDecider{statuses: map[uuid.UUID]string{id: models.StatusPending}}

	res := Decide(context.Background(), store, id, models.StatusRejected)

	if res.Outcome != Decided {
		t.Fatalf("Outcome = %v, want Decided", res.Outcome)
	}
	if !res.OK() {
		t.Error("Decided result should be OK")
	}
	if store.statuses[id] != models.StatusRejected {
		t.Errorf("store status = %q, want rejected", store.statuses[id])
	}
	if len(store.writes) != 1 || store.writes[0] != models.StatusRejected {
		t.Errorf("store writes = %v, want one rejected write", store.writes)
	}
}

func TestDecideIdempotentOnDecided(t *testing.T) {
	id := uuid.New()
	store := &fakeDecider{statuses: map[uuid.UUID]string{id: models.StatusPending}}

	if res := Decide(context.Background(), store, id, models.StatusApproved); res.Outcome != Decided {
		t.Fatalf("first decision: Outcome = %v, want Decided", res.Outcome)
	}

	res := Decide(context.Background(), store, id, models.StatusApproved)
	if res.Outcome != AlreadyDecided {
		t.Fatalf("second decision: Outcome = %v, want AlreadyDecided", res.Outcome)
	}
	if !res.OK() {
		t.Error("AlreadyDecided should still count as success")
	}
	if len(store.writes) != 1 {
		t.Errorf("store received %d writes, want 1", len(store.writes))
	}
}

func TestDecideUnknownProposal(t *testing.T) {
	store := &fakeDecider{statuses: map[uuid.UUID]string{}}

	res := Decide(context.Background(), store, uuid.New(), models.StatusApproved)
	if res.Outcome != NotFound {
		t.Errorf("Outcome = %v, want NotFound", res.Outcome)
	}
	if res.OK() {
		t.Error("NotFound must not be OK")
	}
}

func TestDecideInvalidDecision(t *testing.T) {
	id := uuid.New()
	store := &fakeDecider{statuses: map[uuid.UUID]string{id: models.StatusPending}}

	for _, decision := range []string{models.StatusPending, "", "maybe"} {
		res := Decide(context.Background(), store, id, decision)
		if res.Outcome != InvalidDecision {
			t.Errorf("Decide(%q): Outcome = %v, want InvalidDecision", decision, res.Outcome)
		}
	}
	if len(store.writes) != 0 {
		t.Errorf("invalid decisions reached the store: %v", store.writes)
	}
}

func TestDecideStoreFailureLeavesPending(t *testing.T) {
	id := uuid.New()
	store := &fakeDecider{
		statuses: map[uuid.UUID]string{id: models.StatusPending},
		failWith: errors.New("connection reset"),
	}

	res := Decide(context.Background(), store, id, models.StatusApproved)
	if res.Outcome != Failed {
		t.Fatalf("Outcome = %v, want Failed", res.Outcome)
	}
	if res.OK() {
		t.Error("Failed must not be OK")
	}
	if store.statuses[id] != models.StatusPending {
		t.Error("a failed write must leave the proposal pending")
	}
}
