package movies

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Movie is the catalog row. Columns are snake_case in the store, the JSON
// shape is the camelCase one the site consumes. ReleaseDate is an opaque
// string: it is the display value, the year-filter key and the distinct-years
// source all at once, and is never parsed as a calendar date.
type Movie struct {
	ID           string         `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Title        string         `json:"title" gorm:"index"`
	Poster       string         `json:"poster" gorm:"type:text"`
	DownloadLink string         `json:"downloadLink" gorm:"type:text"`
	Genre        string         `json:"genre"`
	ReleaseDate  string         `json:"releaseDate" gorm:"index"`
	Stars        pq.StringArray `json:"stars" gorm:"type:text[]"`
	Runtime      string         `json:"runtime"`
	Rating       float64        `json:"rating" gorm:"default:0"`
	Category     string         `json:"category" gorm:"index"`
	Description  string         `json:"description,omitempty" gorm:"type:text"`
	Popularity   int            `json:"popularity" gorm:"default:0"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"autoCreateTime;<-:create"`
}

// Stored categories. "all" is a filter-only pseudo-value and never persisted.
var StoredCategories = []string{"drama", "comedy", "action", "romance", "thriller"}

func IsStoredCategory(c string) bool {
	c = strings.ToLower(c)
	for _, v := range StoredCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Sort options for the catalog pipeline.
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortRating     = "rating"
	SortPopularity = "popularity"
)

func IsValidSort(s string) bool {
	switch s {
	case SortNewest, SortOldest, SortRating, SortPopularity:
		return true
	}
	return false
}

func MigrateMovies(db *gorm.DB) error {
	return db.AutoMigrate(&Movie{})
}
