package form

import (
	"context"
	"errors"

	"github.com/mark3labs/trainer/internal/plan"
)

// ErrNotSubmittable is returned by Submit when the wizard is not on the
// final step or a submission is already in flight.
var ErrNotSubmittable = errors.New("submission not available")

// Generator turns the aggregate form data into a plan.
type Generator interface {
	GeneratePlan(ctx context.Context, d Data) (*plan.Result, error)
}

// Wizard holds the aggregate form state and the step/submission state
// machine. It has no UI dependencies; the TUI drives it.
type Wizard struct {
	Step       SectionID
	Data       Data
	Result     *plan.Result
	ShowResult bool
	Submitting bool
	LastError  string
}

// NewWizard returns a wizard on the first step with default data.
func NewWizard() *Wizard {
	return &Wizard{Data: Defaults()}
}

// CurrentStepValid reports whether the active step's required fields are present.
func (w *Wizard) CurrentStepValid() bool {
	return ValidateStep(w.Step, w.Data)
}

// IsFinalStep reports whether the active step is the last one.
func (w *Wizard) IsFinalStep() bool {
	return w.Step == StepCount-1
}

// Advance moves to the next step when the current one is valid.
func (w *Wizard) Advance() bool {
	if !w.CurrentStepValid() || w.IsFinalStep() {
		return false
	}
	w.Step++
	return true
}

// Retreat moves to the previous step. No-op on the first step.
func (w *Wizard) Retreat() bool {
	if w.Step == 0 {
		return false
	}
	w.Step--
	return true
}

// UpdateSection replaces one section wholesale. Other sections are untouched.
func (w *Wizard) UpdateSection(s Section) {
	w.Data = w.Data.With(s)
}

// BeginSubmit marks a submission as in flight and clears the last error.
// It reports false when submission is not reachable.
func (w *Wizard) BeginSubmit() bool {
	if !w.IsFinalStep() || w.Submitting || w.ShowResult {
		return false
	}
	w.Submitting = true
	w.LastError = ""
	return true
}

// FinishSubmit records the outcome of the submission started by BeginSubmit.
// On failure the form data is left as it was.
func (w *Wizard) FinishSubmit(res *plan.Result, err error) {
	w.Submitting = false
	if err != nil {
		w.LastError = ErrorMessage(err)
		return
	}
	w.Result = res
	w.ShowResult = true
}

// Submit runs a whole submission synchronously.
func (w *Wizard) Submit(ctx context.Context, gen Generator) error {
	if !w.BeginSubmit() {
		return ErrNotSubmittable
	}
	res, err := gen.GeneratePlan(ctx, w.Data)
	w.FinishSubmit(res, err)
	return err
}

// DismissError clears the last error notification.
func (w *Wizard) DismissError() {
	w.LastError = ""
}

// Reset restores the initial state: first step, default data, form display.
func (w *Wizard) Reset() {
	*w = *NewWizard()
}

// Restore resumes a saved draft.
func (w *Wizard) Restore(step SectionID, d Data) {
	if step < 0 || step >= StepCount {
		step = 0
	}
	w.Step = step
	w.Data = d
}

// ErrorMessage returns the user-facing text for err. Errors that carry
// their own display text (UserMessage) use it verbatim.
func ErrorMessage(err error) string {
	var um interface{ UserMessage() string }
	if errors.As(err, &um) {
		return um.UserMessage()
	}
	return err.Error()
}
