// Package state persists the in-progress wizard between runs.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/logger"
)

// DraftFile is the draft's name inside the data directory.
const DraftFile = "draft.json"

// Draft is the saved form aggregate and the step the user was on.
type Draft struct {
	Step    form.SectionID `json:"step"`
	Data    form.Data      `json:"data"`
	SavedAt time.Time      `json:"saved_at"`
}

// DraftPath returns the draft location under dataDir.
func DraftPath(dataDir string) string {
	return filepath.Join(dataDir, DraftFile)
}

// LoadDraft reads the draft from dataDir. It returns nil when there is no
// draft or it cannot be read; a broken draft is not worth failing startup.
func LoadDraft(dataDir string) *Draft {
	path := DraftPath(dataDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Failed to read draft file: %v", err)
		}
		return nil
	}

	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		logger.Warn("Failed to parse draft JSON: %v", err)
		return nil
	}
	if d.Step < form.SectionProfile || d.Step > form.SectionPreferences {
		d.Step = form.SectionProfile
	}
	if d.Data.UserProfile.Injuries == nil {
		d.Data.UserProfile.Injuries = []string{}
	}
	return &d
}

// SaveDraft writes step and data to dataDir, creating it if needed.
func SaveDraft(dataDir string, step form.SectionID, d form.Data) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(Draft{Step: step, Data: d, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling draft: %w", err)
	}

	// Write then rename; readers never see a partial draft.
	path := DraftPath(dataDir)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing draft file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing draft file: %w", err)
	}

	logger.Debug("Draft saved to %s", path)
	return nil
}

// ClearDraft removes the draft. A missing draft is not an error.
func ClearDraft(dataDir string) error {
	if err := os.Remove(DraftPath(dataDir)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing draft file: %w", err)
	}
	return nil
}
