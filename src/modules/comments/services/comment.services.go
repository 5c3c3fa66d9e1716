package comments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	models "cinemax/src/modules/comments/models"
	"cinemax/src/utils"

	"gorm.io/gorm"
)

var (
	ErrEmptyField      = errors.New("name and comment are required")
	ErrCommentNotFound = errors.New("comment not found")
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// ListForMovie returns a movie's comments, newest first.
func (s *CommentService) ListForMovie(ctx context.Context, movieID string) ([]models.Comment, error) {
	var list []models.Comment
	err := s.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return list, nil
}

// Create validates and stores a new comment. Name and text must be non-empty
// after trimming; no admin credential is required.
func (s *CommentService) Create(ctx context.Context, movieID, name, text string) (models.Comment, error) {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)
	if name == "" || text == "" {
		return models.Comment{}, ErrEmptyField
	}

	comment := models.Comment{
		ID:      utils.GenerateID(),
		MovieID: movieID,
		Name:    name,
		Comment: text,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return models.Comment{}, fmt.Errorf("failed to save comment: %w", err)
	}
	return comment, nil
}

// Delete removes a single comment.
func (s *CommentService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
