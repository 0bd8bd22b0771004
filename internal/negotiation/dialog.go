package negotiation

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type State string

const (
	StateInput      State = "input"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

var (
	// ErrDialogClosed means the dialog already reached success; a new
	// dialog session is needed for another negotiation.
	ErrDialogClosed = errors.New("negotiation dialog already completed")
	// ErrNotAtInput means a proposal arrived while the dialog was not
	// waiting for one.
	ErrNotAtInput = errors.New("negotiation dialog is not accepting input")
)

// Dialog is one negotiation session: input -> processing ->
// success|failed, with failed -> input allowed for retries and
// success terminal. The processing phase is a single timed suspend
// standing in for the storefront's artificial "thinking" delay; the
// context passed to Propose is where real cancellation would hook in
// if this ever fronts a live pricing service.
type Dialog struct {
	state State
	delay time.Duration
}

func NewDialog(delay time.Duration) *Dialog {
	return &Dialog{state: StateInput, delay: delay}
}

func (d *Dialog) State() State { return d.state }

// Propose runs one attempt against the current reference total. On
// acceptance the dialog is done; on rejection call Retry to return to
// input.
func (d *Dialog) Propose(ctx context.Context, reference, offer decimal.Decimal) (Verdict, error) {
	switch d.state {
	case StateSuccess:
		return "", ErrDialogClosed
	case StateInput:
	default:
		return "", ErrNotAtInput
	}

	d.state = StateProcessing
	if d.delay > 0 {
		select {
		case <-ctx.Done():
			d.state = StateInput
			return "", ctx.Err()
		case <-time.After(d.delay):
		}
	}

	v := Decide(reference, offer)
	if v.Accepted() {
		d.state = StateSuccess
	} else {
		d.state = StateFailed
	}
	return v, nil
}

// Retry moves a failed dialog back to input.
func (d *Dialog) Retry() error {
	if d.state != StateFailed {
		return ErrNotAtInput
	}
	d.state = StateInput
	return nil
}
