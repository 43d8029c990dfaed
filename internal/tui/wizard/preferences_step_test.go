package wizard

import (
	"errors"
	"testing"

	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestPreferencesStep_Defaults(t *testing.T) {
	s := NewPreferencesStep(form.Defaults().Preferences)
	require.Equal(t, form.Defaults().Preferences, s.Preferences())
}

func TestPreferencesStep_Choices(t *testing.T) {
	s := NewPreferencesStep(form.Defaults().Preferences)

	p := lastSection(t, feed(t, s, testfixtures.Press("right"))).(form.Preferences)
	require.Equal(t, form.EnvironmentGym, p.Environment)

	feed(t, s, testfixtures.Press("down"))
	p = lastSection(t, feed(t, s, testfixtures.Press("right"))).(form.Preferences)
	require.Equal(t, form.TrainingTime("90"), p.TrainingTimeMinutes)
}

func TestPreferencesStep_TypingNotes(t *testing.T) {
	s := NewPreferencesStep(form.Preferences{})
	feed(t, s, keys("tab", "tab", "tab")...)
	require.Equal(t, prefSchedule, s.focus)

	p := lastSection(t, feed(t, s, testfixtures.Type("mornings")...)).(form.Preferences)
	require.Equal(t, "mornings", p.ScheduleNotes)
	require.Empty(t, p.Equipment)
}

func TestPreferencesStep_EditorResult(t *testing.T) {
	s := NewPreferencesStep(form.Preferences{})

	p := lastSection(t, feed(t, s, EditorFinishedMsg{Field: 2, Content: "No jumping\n"})).(form.Preferences)
	require.Equal(t, "No jumping", p.SpecificRequests)

	require.Empty(t, feed(t, s, EditorFinishedMsg{Field: 0, Err: errors.New("editor crashed")}))
	require.Empty(t, s.Preferences().Equipment)
}

func TestPreferencesStep_EditorOnlyOnTextFields(t *testing.T) {
	s := NewPreferencesStep(form.Preferences{})
	require.Nil(t, s.Update(testfixtures.Press("ctrl+e")))
	require.Equal(t, []string{"←/→", "choose"}, s.Hints())
}

func TestPreferencesStep_ChoicesNeverBlank(t *testing.T) {
	s := NewPreferencesStep(form.Defaults().Preferences)

	for _, key := range []string{"left", "left", "left", "right", "right", "right"} {
		feed(t, s, testfixtures.Press(key))
		require.NotEmpty(t, s.Preferences().Environment)
	}

	feed(t, s, testfixtures.Press("down"))
	for range len(form.TrainingTimes) + 2 {
		feed(t, s, testfixtures.Press("left"))
		require.NotEmpty(t, s.Preferences().TrainingTimeMinutes)
	}
	for range len(form.TrainingTimes) + 2 {
		feed(t, s, testfixtures.Press("right"))
		require.NotEmpty(t, s.Preferences().TrainingTimeMinutes)
	}
}

func TestPreferencesStep_BlankLoadTakesDefaults(t *testing.T) {
	s := NewPreferencesStep(form.Preferences{Equipment: "Bands"})
	p := s.Preferences()
	require.Equal(t, form.Defaults().Preferences.Environment, p.Environment)
	require.Equal(t, form.Defaults().Preferences.TrainingTimeMinutes, p.TrainingTimeMinutes)
	require.Equal(t, "Bands", p.Equipment)
}
