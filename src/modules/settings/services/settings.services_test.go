package settings

import (
	"encoding/json"
	"testing"

	models "cinemax/src/modules/settings/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func settingsRow(t *testing.T, password string) models.WebsiteSettings {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return models.WebsiteSettings{
		ID:                1,
		Name:              "Yoruba Cinemax",
		Tagline:           "Nigeria's Premier Yoruba Movie Destination",
		AdminPasswordHash: string(hash),
		CopyrightYear:     2025,
	}
}

func TestApplyUpdateRequiresCurrentPassword(t *testing.T) {
	row := settingsRow(t, "s3cret")

	_, err := ApplyUpdate(row, UpdateRequest{
		CurrentPassword: "wrong",
		Name:            "New Name",
	})
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestApplyUpdateBlankPasswordKeepsCurrent(t *testing.T) {
	row := settingsRow(t, "s3cret")

	updated, err := ApplyUpdate(row, UpdateRequest{
		CurrentPassword: "s3cret",
		NewPassword:     "   ",
		Name:            "New Name",
		Tagline:         "New tagline",
		CopyrightYear:   2026,
	})
	require.NoError(t, err)

	// "Leave blank to keep current": the hash must not change.
	assert.Equal(t, row.AdminPasswordHash, updated.AdminPasswordHash)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, 2026, updated.CopyrightYear)
}

func TestApplyUpdateRotatesPassword(t *testing.T) {
	row := settingsRow(t, "s3cret")

	updated, err := ApplyUpdate(row, UpdateRequest{
		CurrentPassword: "s3cret",
		NewPassword:     "n3w-s3cret",
		Name:            row.Name,
	})
	require.NoError(t, err)

	assert.NotEqual(t, row.AdminPasswordHash, updated.AdminPasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(updated.AdminPasswordHash), []byte("n3w-s3cret")))
}

func TestSettingsJSONNeverExposesHash(t *testing.T) {
	row := settingsRow(t, "s3cret")

	data, err := json.Marshal(row)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	for key := range out {
		assert.NotContains(t, key, "assword")
		assert.NotContains(t, key, "ash")
	}
	assert.NotContains(t, string(data), row.AdminPasswordHash)
}
