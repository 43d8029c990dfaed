package form

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/trainer/internal/plan"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	result *plan.Result
	err    error
	calls  int
	seen   Data
}

func (g *stubGenerator) GeneratePlan(_ context.Context, d Data) (*plan.Result, error) {
	g.calls++
	g.seen = d
	return g.result, g.err
}

type displayErr struct{ msg string }

func (e displayErr) Error() string       { return "wrapped: " + e.msg }
func (e displayErr) UserMessage() string { return e.msg }

func TestWizard_AdvanceBlockedWhenInvalid(t *testing.T) {
	w := NewWizard()
	for step := SectionProfile; step < SectionPreferences; step++ {
		w.Step = step
		require.False(t, w.CurrentStepValid())
		require.False(t, w.Advance())
		require.Equal(t, step, w.Step)
	}
}

func TestWizard_WalkForwardAndBack(t *testing.T) {
	w := NewWizard()
	d := validData()

	w.UpdateSection(d.UserProfile)
	require.True(t, w.Advance())
	w.UpdateSection(d.InBodyMetrics)
	require.True(t, w.Advance())
	w.UpdateSection(d.Goal)
	require.True(t, w.Advance())
	require.True(t, w.IsFinalStep())
	require.True(t, w.CurrentStepValid())
	require.False(t, w.Advance(), "no step past preferences")

	require.True(t, w.Retreat())
	require.True(t, w.Retreat())
	require.True(t, w.Retreat())
	require.False(t, w.Retreat())
	require.Equal(t, SectionProfile, w.Step)

	// Navigation never loses data.
	require.Equal(t, d.UserProfile, w.Data.UserProfile)
	require.Equal(t, d.InBodyMetrics, w.Data.InBodyMetrics)
	require.Equal(t, d.Goal, w.Data.Goal)
}

func TestWizard_UpdateSectionIsolation(t *testing.T) {
	w := NewWizard()
	w.Data = validData()
	before := w.Data

	w.UpdateSection(Preferences{Environment: EnvironmentGym})
	require.Equal(t, before.UserProfile, w.Data.UserProfile)
	require.Equal(t, before.InBodyMetrics, w.Data.InBodyMetrics)
	require.Equal(t, before.Goal, w.Data.Goal)
	// Whole-section replace, not a field merge.
	require.Equal(t, Preferences{Environment: EnvironmentGym}, w.Data.Preferences)
}

func TestWizard_SubmitOnlyFromFinalStep(t *testing.T) {
	w := NewWizard()
	gen := &stubGenerator{result: &plan.Result{}}
	err := w.Submit(context.Background(), gen)
	require.ErrorIs(t, err, ErrNotSubmittable)
	require.Zero(t, gen.calls)
	require.False(t, w.ShowResult)
}

func TestWizard_SubmitSuccess(t *testing.T) {
	w := NewWizard()
	w.Data = validData()
	w.Step = SectionPreferences
	w.LastError = "old"
	res := &plan.Result{TrainingPlan: &plan.TrainingPlan{SplitMethod: "Full body"}}
	gen := &stubGenerator{result: res}

	require.NoError(t, w.Submit(context.Background(), gen))
	require.Equal(t, 1, gen.calls)
	require.Equal(t, validData(), gen.seen)
	require.Same(t, res, w.Result)
	require.True(t, w.ShowResult)
	require.False(t, w.Submitting)
	require.Empty(t, w.LastError)

	require.False(t, w.BeginSubmit(), "result view is showing")
}

func TestWizard_SubmitFailureKeepsData(t *testing.T) {
	w := NewWizard()
	w.Data = validData()
	w.Step = SectionPreferences
	gen := &stubGenerator{err: displayErr{msg: "Cannot reach the server."}}

	err := w.Submit(context.Background(), gen)
	require.Error(t, err)
	require.Equal(t, "Cannot reach the server.", w.LastError)
	require.Equal(t, validData(), w.Data)
	require.False(t, w.Submitting)
	require.False(t, w.ShowResult)
	require.Nil(t, w.Result)

	// The form can be submitted again.
	gen.err = nil
	gen.result = &plan.Result{}
	require.NoError(t, w.Submit(context.Background(), gen))
	require.Empty(t, w.LastError)
}

func TestWizard_PlainErrorMessage(t *testing.T) {
	w := NewWizard()
	w.Step = SectionPreferences
	require.Error(t, w.Submit(context.Background(), &stubGenerator{err: errors.New("boom")}))
	require.Equal(t, "boom", w.LastError)
	w.DismissError()
	require.Empty(t, w.LastError)
}

func TestWizard_NoDoubleSubmit(t *testing.T) {
	w := NewWizard()
	w.Step = SectionPreferences
	require.True(t, w.BeginSubmit())
	require.False(t, w.BeginSubmit())
	w.FinishSubmit(&plan.Result{}, nil)
	require.False(t, w.Submitting)
}

func TestWizard_Reset(t *testing.T) {
	w := NewWizard()
	w.Data = validData()
	w.Step = SectionPreferences
	require.NoError(t, w.Submit(context.Background(), &stubGenerator{result: &plan.Result{}}))
	w.LastError = "x"

	w.Reset()
	require.Equal(t, SectionProfile, w.Step)
	require.Equal(t, Defaults(), w.Data)
	require.False(t, w.ShowResult)
	require.Nil(t, w.Result)
	require.Empty(t, w.LastError)
}

func TestWizard_Restore(t *testing.T) {
	w := NewWizard()
	w.Restore(SectionGoal, validData())
	require.Equal(t, SectionGoal, w.Step)

	w.Restore(SectionID(9), Defaults())
	require.Equal(t, SectionProfile, w.Step)
}
