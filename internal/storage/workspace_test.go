package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileCreatesDefaults(t *testing.T) {
	initTestDB(t)

	profile, err := GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "friendly", profile.BrandTone)
	assert.Equal(t, "en", profile.DefaultLanguage)
	assert.Empty(t, profile.BusinessName)

	// Second read returns the same row, not a new one
	again, err := GetProfile()
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
}

func TestSaveProfileRoundTrip(t *testing.T) {
	initTestDB(t)

	profile, err := GetProfile()
	require.NoError(t, err)

	profile.BusinessName = "Lina's Salon"
	profile.City = "Dubai"
	profile.Phone = "+971-4-1234567"
	require.NoError(t, SaveProfile(profile))

	loaded, err := GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Lina's Salon", loaded.BusinessName)
	assert.Equal(t, "Dubai", loaded.City)
	assert.Equal(t, "friendly", loaded.BrandTone)

	var count int64
	require.NoError(t, DB.Model(&WorkspaceProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
