package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// TransitionAPI is the slice of the admin API that mutates record status.
type TransitionAPI interface {
	ApproveEmployee(ctx context.Context, id string) error
	RejectEmployee(ctx context.Context, id string) error
}

// Confirmer asks the operator to confirm an irreversible action. Returns
// false to abort.
type Confirmer func(prompt string) bool

var (
	// ErrNotPending reports an approve/reject on a record that is no longer
	// pending. Terminal states expose no further transition.
	ErrNotPending = errors.New("record is not pending approval")

	// ErrMutationInFlight reports a second approve/reject attempted on a
	// record whose previous mutation has not finished.
	ErrMutationInFlight = errors.New("another action for this record is still in progress")
)

// Workflow enforces the approval contract on top of the admin API:
// transitions are legal only from pending, rejection requires explicit
// confirmation, and at most one mutation per record may be in flight. Status
// stays server-authoritative throughout; the workflow never patches local
// state; after any nil return from Approve, or a true return from Reject, the
// caller must re-fetch its collections (and stats, where shown).
type Workflow struct {
	api     TransitionAPI
	confirm Confirmer

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewWorkflow(api TransitionAPI, confirm Confirmer) *Workflow {
	return &Workflow{
		api:      api,
		confirm:  confirm,
		inFlight: make(map[string]struct{}),
	}
}

// Approve transitions a pending record to approved. On failure nothing is
// assumed: the record stays pending on the server and the error carries the
// reason.
func (w *Workflow) Approve(ctx context.Context, emp model.Employee) error {
	if emp.Status != model.StatusPending {
		return ErrNotPending
	}
	if err := w.begin(emp.ID); err != nil {
		return err
	}
	defer w.end(emp.ID)

	if err := w.api.ApproveEmployee(ctx, emp.ID); err != nil {
		return fmt.Errorf("approve employee %s: %w", emp.ID, err)
	}
	return nil
}

// Reject transitions a pending record to rejected, after confirmation. A
// declined confirmation issues no request and reports (false, nil).
func (w *Workflow) Reject(ctx context.Context, emp model.Employee) (bool, error) {
	if emp.Status != model.StatusPending {
		return false, ErrNotPending
	}
	if !w.confirm(fmt.Sprintf("Are you sure you want to reject %s?", emp.Name)) {
		return false, nil
	}
	if err := w.begin(emp.ID); err != nil {
		return false, err
	}
	defer w.end(emp.ID)

	if err := w.api.RejectEmployee(ctx, emp.ID); err != nil {
		return false, fmt.Errorf("reject employee %s: %w", emp.ID, err)
	}
	return true, nil
}

func (w *Workflow) begin(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, busy := w.inFlight[id]; busy {
		return ErrMutationInFlight
	}
	w.inFlight[id] = struct{}{}
	return nil
}

func (w *Workflow) end(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.inFlight, id)
}
