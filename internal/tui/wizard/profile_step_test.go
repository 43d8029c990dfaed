package wizard

import (
	"testing"

	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func focusedProfile(t *testing.T, row int) *ProfileStep {
	t.Helper()
	s := NewProfileStep(form.UserProfile{Injuries: []string{}})
	s.setFocus(row)
	return s
}

func TestProfileStep_TypingAgeEmitsSection(t *testing.T) {
	s := focusedProfile(t, profileAge)

	msgs := feed(t, s, testfixtures.Type("34")...)
	p := lastSection(t, msgs).(form.UserProfile)
	require.Equal(t, 34, *p.Age)
	require.NotNil(t, p.Injuries)
}

func TestProfileStep_NoChangeNoMessage(t *testing.T) {
	s := focusedProfile(t, profileAge)
	msgs := feed(t, s, testfixtures.Press("x"))
	_, ok := testfixtures.Find[SectionChangedMsg](msgs)
	require.False(t, ok)
}

func TestProfileStep_FocusWraps(t *testing.T) {
	s := focusedProfile(t, profileAge)
	feed(t, s, testfixtures.Press("shift+tab"))
	require.Equal(t, profileSelected, s.focus)
	feed(t, s, testfixtures.Press("tab"))
	require.Equal(t, profileAge, s.focus)
}

func TestProfileStep_ChoicesEmitSection(t *testing.T) {
	s := focusedProfile(t, profileGender)
	p := lastSection(t, feed(t, s, keys("right", "right")...)).(form.UserProfile)
	require.Equal(t, form.GenderFemale, p.Gender)

	feed(t, s, keys("tab", "tab")...)
	p = lastSection(t, feed(t, s, testfixtures.Press("right"))).(form.UserProfile)
	require.Equal(t, form.ExperienceBeginner, p.TrainingExperience)
}

func TestProfileStep_CatalogToggle(t *testing.T) {
	s := focusedProfile(t, profileCatalog)
	first := s.chips[0].Label
	second := s.chips[1].Label

	p := lastSection(t, feed(t, s, testfixtures.Press("space"))).(form.UserProfile)
	require.Equal(t, []string{first}, p.Injuries)

	p = lastSection(t, feed(t, s, keys("right", "space")...)).(form.UserProfile)
	require.Equal(t, []string{first, second}, p.Injuries)

	p = lastSection(t, feed(t, s, keys("left", "space")...)).(form.UserProfile)
	require.Equal(t, []string{second}, p.Injuries)
}

func TestProfileStep_CatalogCursorWraps(t *testing.T) {
	s := focusedProfile(t, profileCatalog)
	feed(t, s, testfixtures.Press("left"))
	require.Equal(t, len(form.InjuryCatalog)-1, s.chipIdx)
	require.Len(t, s.chips, len(form.InjuryCatalog))
}

func TestProfileStep_CustomInjury(t *testing.T) {
	s := focusedProfile(t, profileCustom)

	msgs := feed(t, s, testfixtures.Type(" Tennis elbow ")...)
	msgs = append(msgs, feed(t, s, testfixtures.Press("enter"))...)
	p := lastSection(t, msgs).(form.UserProfile)
	require.Equal(t, []string{"Tennis elbow"}, p.Injuries)
	require.Empty(t, s.custom.Value())

	// Duplicates and blanks are ignored.
	msgs = feed(t, s, testfixtures.Type("Tennis elbow")...)
	msgs = append(msgs, feed(t, s, testfixtures.Press("enter"))...)
	msgs = append(msgs, feed(t, s, testfixtures.Press("enter"))...)
	_, ok := testfixtures.Find[SectionChangedMsg](msgs)
	require.False(t, ok)
	require.Equal(t, []string{"Tennis elbow"}, s.Profile().Injuries)
}

func TestProfileStep_RemoveSelected(t *testing.T) {
	s := NewProfileStep(form.UserProfile{Injuries: []string{"腰痛", "Tennis elbow", "喘息"}})
	s.setFocus(profileSelected)

	p := lastSection(t, feed(t, s, keys("right", "x")...)).(form.UserProfile)
	require.Equal(t, []string{"腰痛", "喘息"}, p.Injuries)

	p = lastSection(t, feed(t, s, keys("right", "backspace")...)).(form.UserProfile)
	require.Equal(t, []string{"腰痛"}, p.Injuries)
	require.Equal(t, 0, s.pickedIdx)

	p = lastSection(t, feed(t, s, testfixtures.Press("delete"))).(form.UserProfile)
	require.Empty(t, p.Injuries)
	require.NotNil(t, p.Injuries)

	// Nothing left to remove.
	require.Empty(t, feed(t, s, testfixtures.Press("x")))
}

func TestProfileStep_LoadDoesNotEmit(t *testing.T) {
	s := focusedProfile(t, profileAge)
	full := testfixtures.CompleteData().UserProfile
	s.Load(full)
	require.Equal(t, full, s.Profile())

	view := testfixtures.Plain(s.View())
	require.Contains(t, view, "Knee pain (膝痛)")
	require.Contains(t, view, "162.5")
}
