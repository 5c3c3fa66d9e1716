package comments

import (
	"time"

	movies "cinemax/src/modules/movies/models"

	"gorm.io/gorm"
)

// Comment belongs to a movie and goes away with it. The FK cascade mirrors
// the explicit delete the movie service also performs, so the invariant holds
// even on databases migrated without constraints.
type Comment struct {
	ID        string       `json:"id" gorm:"primaryKey;type:varchar(64)"`
	MovieID   string       `json:"movieId" gorm:"not null;index;type:varchar(64)"`
	Movie     movies.Movie `json:"-" gorm:"foreignKey:MovieID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Name      string       `json:"name"`
	Comment   string       `json:"comment" gorm:"type:text"`
	CreatedAt time.Time    `json:"timestamp" gorm:"autoCreateTime;<-:create"`
}

func MigrateComments(db *gorm.DB) error {
	return db.AutoMigrate(&Comment{})
}
