package comments

import (
	"context"
	"errors"
	"log"
	"net/http"

	models "cinemax/src/modules/comments/models"
	service "cinemax/src/modules/comments/services"
	ws "cinemax/src/services"

	"github.com/gin-gonic/gin"
)

type CommentService interface {
	ListForMovie(ctx context.Context, movieID string) ([]models.Comment, error)
	Create(ctx context.Context, movieID, name, text string) (models.Comment, error)
	Delete(ctx context.Context, id string) error
}

type CommentController struct {
	svc CommentService
}

func NewCommentController(svc CommentService) *CommentController {
	return &CommentController{svc: svc}
}

// ListForMovie returns the comment feed for a movie, newest first.
func (cc *CommentController) ListForMovie(c *gin.Context) {
	list, err := cc.svc.ListForMovie(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[Comments] list failed: %v", err)
		list = []models.Comment{}
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

// CreateForMovie posts a comment to a movie's feed. No credential needed.
func (cc *CommentController) CreateForMovie(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters: " + err.Error()})
		return
	}

	comment, err := cc.svc.Create(c.Request.Context(), c.Param("id"), req.Name, req.Comment)
	if errors.Is(err, service.ErrEmptyField) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("[Comments] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save comment"})
		return
	}

	ws.BroadcastCommentEvent(ws.CommentEvent{
		Type:    "comment_created",
		MovieID: comment.MovieID,
		Comment: &comment,
	})
	c.JSON(http.StatusCreated, comment)
}

// Delete removes a comment. The route is admin-gated.
func (cc *CommentController) Delete(c *gin.Context) {
	id := c.Param("id")
	err := cc.svc.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrCommentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}
	if err != nil {
		log.Printf("[Comments] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	ws.BroadcastCommentEvent(ws.CommentEvent{
		Type:      "comment_deleted",
		CommentID: id,
	})
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
