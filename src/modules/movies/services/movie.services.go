package movies

import (
	"context"
	"errors"
	"fmt"
	"strings"

	comments "cinemax/src/modules/comments/models"
	models "cinemax/src/modules/movies/models"
	"cinemax/src/utils"

	"gorm.io/gorm"
)

var ErrMovieNotFound = errors.New("movie not found")

type MovieService struct {
	db *gorm.DB
}

func NewMovieService(db *gorm.DB) *MovieService {
	return &MovieService{db: db}
}

// List returns every movie, newest insert first.
func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	var list []models.Movie
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return list, nil
}

// Search matches the query as a case-insensitive substring of title, genre or
// category. Star names are deliberately not searched; that keeps a single
// matching rule across the site. A blank query behaves exactly like List.
func (s *MovieService) Search(ctx context.Context, query string) ([]models.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}

	pattern := "%" + query + "%"
	var list []models.Movie
	err := s.db.WithContext(ctx).
		Where("title ILIKE ? OR genre ILIKE ? OR category ILIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	return list, nil
}

func (s *MovieService) Get(ctx context.Context, id string) (models.Movie, error) {
	var movie models.Movie
	err := s.db.WithContext(ctx).First(&movie, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Movie{}, ErrMovieNotFound
	}
	if err != nil {
		return models.Movie{}, fmt.Errorf("failed to load movie: %w", err)
	}
	return movie, nil
}

// Create inserts a new movie. The id is generated here, created_at is
// assigned by the store.
func (s *MovieService) Create(ctx context.Context, movie models.Movie) (models.Movie, error) {
	movie.ID = utils.GenerateID()
	if err := s.db.WithContext(ctx).Create(&movie).Error; err != nil {
		return models.Movie{}, fmt.Errorf("failed to save movie: %w", err)
	}
	return movie, nil
}

// Update overwrites the mutable fields of an existing movie. ID and
// created_at are preserved.
func (s *MovieService) Update(ctx context.Context, id string, movie models.Movie) (models.Movie, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.Movie{}, err
	}

	movie.ID = existing.ID
	movie.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(&movie).Error; err != nil {
		return models.Movie{}, fmt.Errorf("failed to save movie: %w", err)
	}
	return movie, nil
}

// Delete removes a movie and every comment attached to it in one
// transaction. A movie with zero comments deletes without error.
func (s *MovieService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&comments.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Movie{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	return nil
}
