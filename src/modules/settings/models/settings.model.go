package settings

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// WebsiteSettings is the single site configuration row. The password hash
// never leaves the server: it is excluded from JSON and from the public DTO.
type WebsiteSettings struct {
	ID                uint   `json:"-" gorm:"primaryKey"`
	Name              string `json:"name"`
	Tagline           string `json:"tagline"`
	AdminPasswordHash string `json:"-" gorm:"type:text"`
	ContactEmail      string `json:"contactEmail"`
	AdvertiseEmail    string `json:"advertiseEmail"`
	CopyrightYear     int    `json:"copyrightYear"`
	FacebookURL       string `json:"facebookUrl"`
	TwitterURL        string `json:"twitterUrl"`
	InstagramURL      string `json:"instagramUrl"`
	YoutubeURL        string `json:"youtubeUrl"`
}

func MigrateSettings(db *gorm.DB) error {
	return db.AutoMigrate(&WebsiteSettings{})
}

// SeedDefaults inserts the default settings row when none exists. The initial
// admin password comes from the environment; the dev fallback is logged
// loudly so it never survives into a real deployment unnoticed.
func SeedDefaults(db *gorm.DB, adminPassword string) error {
	var count int64
	if err := db.Model(&WebsiteSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if adminPassword == "" {
		adminPassword = "changeme"
		log.Println("[Settings] ADMIN_PASSWORD not set, seeding with default password 'changeme'")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&WebsiteSettings{
		Name:              "Yoruba Cinemax",
		Tagline:           "Nigeria's Premier Yoruba Movie Destination",
		AdminPasswordHash: string(hash),
		ContactEmail:      "contact@yorubacinemax.com",
		AdvertiseEmail:    "advertise@yorubacinemax.com",
		CopyrightYear:     2025,
	}).Error
}
