package storage

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

const workspaceRowID = 1

// GetProfile returns the workspace profile, creating the defaults row on
// first access. The profile is never deleted in normal operation.
func GetProfile() (*WorkspaceProfile, error) {
	var profile WorkspaceProfile
	err := DB.First(&profile, "id = ?", workspaceRowID).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	profile = WorkspaceProfile{
		ID:              workspaceRowID,
		BrandTone:       "friendly",
		DefaultLanguage: "en",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := DB.Create(&profile).Error; err != nil {
		return nil, err
	}
	log.Printf("[Workspace] Created default profile")
	return &profile, nil
}

// SaveProfile updates the workspace profile in place
func SaveProfile(profile *WorkspaceProfile) error {
	profile.ID = workspaceRowID
	profile.UpdatedAt = time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = profile.UpdatedAt
	}
	return DB.Save(profile).Error
}
