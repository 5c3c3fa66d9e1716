package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	models "cinemax/src/modules/settings/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidPassword = errors.New("invalid password")

// UpdateRequest is the admin settings form. CurrentPassword must match the
// stored hash before any change is applied; a blank NewPassword keeps the
// current one ("leave blank to keep current").
type UpdateRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword"`
	Name            string `json:"name" binding:"required"`
	Tagline         string `json:"tagline"`
	ContactEmail    string `json:"contactEmail"`
	AdvertiseEmail  string `json:"advertiseEmail"`
	CopyrightYear   int    `json:"copyrightYear"`
	FacebookURL     string `json:"facebookUrl"`
	TwitterURL      string `json:"twitterUrl"`
	InstagramURL    string `json:"instagramUrl"`
	YoutubeURL      string `json:"youtubeUrl"`
}

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the single settings row.
func (s *SettingsService) Get(ctx context.Context) (models.WebsiteSettings, error) {
	var row models.WebsiteSettings
	if err := s.db.WithContext(ctx).Order("id").First(&row).Error; err != nil {
		return models.WebsiteSettings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return row, nil
}

// Verify compares a candidate admin password against the stored hash. The
// hash itself never leaves this package.
func (s *SettingsService) Verify(ctx context.Context, candidate string) (bool, error) {
	row, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(row.AdminPasswordHash), []byte(candidate))
	return err == nil, nil
}

// Update applies the settings form. The current password must verify first;
// only a non-blank new password replaces the stored hash.
func (s *SettingsService) Update(ctx context.Context, req UpdateRequest) (models.WebsiteSettings, error) {
	row, err := s.Get(ctx)
	if err != nil {
		return models.WebsiteSettings{}, err
	}

	row, err = ApplyUpdate(row, req)
	if err != nil {
		return models.WebsiteSettings{}, err
	}

	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return models.WebsiteSettings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return row, nil
}

// ApplyUpdate checks the current password and merges the form into the row.
// A blank new password keeps the stored hash.
func ApplyUpdate(row models.WebsiteSettings, req UpdateRequest) (models.WebsiteSettings, error) {
	if bcrypt.CompareHashAndPassword([]byte(row.AdminPasswordHash), []byte(req.CurrentPassword)) != nil {
		return models.WebsiteSettings{}, ErrInvalidPassword
	}

	row.Name = req.Name
	row.Tagline = req.Tagline
	row.ContactEmail = req.ContactEmail
	row.AdvertiseEmail = req.AdvertiseEmail
	row.CopyrightYear = req.CopyrightYear
	row.FacebookURL = req.FacebookURL
	row.TwitterURL = req.TwitterURL
	row.InstagramURL = req.InstagramURL
	row.YoutubeURL = req.YoutubeURL

	if newPassword := strings.TrimSpace(req.NewPassword); newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return models.WebsiteSettings{}, fmt.Errorf("failed to hash password: %w", err)
		}
		row.AdminPasswordHash = string(hash)
	}

	return row, nil
}
