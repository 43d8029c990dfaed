package wizard

import (
	"testing"

	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestGoalStep(t *testing.T) {
	s := NewGoalStep(form.Goal{})

	g := lastSection(t, feed(t, s, testfixtures.Press("right"))).(form.Goal)
	require.Equal(t, form.GoalLoseWeight, g.Type)
	require.Empty(t, g.DaysPerWeek)

	feed(t, s, testfixtures.Press("tab"))
	g = lastSection(t, feed(t, s, testfixtures.Press("right"))).(form.Goal)
	require.Equal(t, form.DaysFlexible, g.DaysPerWeek)

	g = lastSection(t, feed(t, s, keys("right", "right")...)).(form.Goal)
	require.Equal(t, form.DaysPerWeek("3"), g.DaysPerWeek)

	g = lastSection(t, feed(t, s, keys("left", "left", "left")...)).(form.Goal)
	require.Empty(t, g.DaysPerWeek, "frequency can be unset again")
	require.Equal(t, form.GoalLoseWeight, g.Type)
}

func TestGoalStep_Load(t *testing.T) {
	s := NewGoalStep(form.Goal{Type: form.GoalGainMuscle, DaysPerWeek: "5"})
	require.Equal(t, form.Goal{Type: form.GoalGainMuscle, DaysPerWeek: "5"}, s.Goal())
	require.Contains(t, testfixtures.Plain(s.View()), "5 days / week")
}
