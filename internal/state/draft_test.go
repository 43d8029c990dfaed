package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/trainer/internal/form"
	"github.com/stretchr/testify/require"
)

func TestLoadDraft_Missing(t *testing.T) {
	require.Nil(t, LoadDraft(filepath.Join(t.TempDir(), "nope")))
}

func TestSaveAndLoadDraft(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".trainer")
	age := 41
	d := form.Defaults()
	d.UserProfile.Age = &age
	d.UserProfile.Gender = form.GenderFemale
	d.UserProfile.Injuries = []string{"膝痛"}
	d.Preferences.Equipment = "dumbbells"

	require.NoError(t, SaveDraft(dir, form.SectionGoal, d))

	got := LoadDraft(dir)
	require.NotNil(t, got)
	require.Equal(t, form.SectionGoal, got.Step)
	require.Equal(t, d, got.Data)
	require.False(t, got.SavedAt.IsZero())

	_, err := os.Stat(DraftPath(dir) + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestLoadDraft_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(DraftPath(dir), []byte("{not json"), 0o644))
	require.Nil(t, LoadDraft(dir))
}

func TestLoadDraft_NormalizesStepAndInjuries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(DraftPath(dir),
		[]byte(`{"step": 7, "data": {"user_profile": {"injuries": null}}}`), 0o644))

	got := LoadDraft(dir)
	require.NotNil(t, got)
	require.Equal(t, form.SectionProfile, got.Step)
	require.NotNil(t, got.Data.UserProfile.Injuries)
}

func TestClearDraft(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ClearDraft(dir))

	require.NoError(t, SaveDraft(dir, form.SectionProfile, form.Defaults()))
	require.NoError(t, ClearDraft(dir))
	require.Nil(t, LoadDraft(dir))
}
