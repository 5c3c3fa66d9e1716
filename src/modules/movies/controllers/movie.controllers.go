package movies

import (
	"context"
	"errors"
	"log"
	"net/http"

	lib "cinemax/src/modules/movies/lib"
	models "cinemax/src/modules/movies/models"
	service "cinemax/src/modules/movies/services"

	"github.com/gin-gonic/gin"
)

// MovieService is the store surface the controllers need.
type MovieService interface {
	List(ctx context.Context) ([]models.Movie, error)
	Search(ctx context.Context, query string) ([]models.Movie, error)
	Get(ctx context.Context, id string) (models.Movie, error)
	Create(ctx context.Context, movie models.Movie) (models.Movie, error)
	Update(ctx context.Context, id string, movie models.Movie) (models.Movie, error)
	Delete(ctx context.Context, id string) error
}

type MovieController struct {
	svc MovieService
}

func NewMovieController(svc MovieService) *MovieController {
	return &MovieController{svc: svc}
}

// ListMovies returns the full catalog, newest first. Read failures degrade
// to an empty list so the site shows an empty state, not an error banner.
func (mc *MovieController) ListMovies(c *gin.Context) {
	list, err := mc.svc.List(c.Request.Context())
	if err != nil {
		log.Printf("[Movies] list failed: %v", err)
		list = []models.Movie{}
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

// SearchMovies matches q against title, genre and category. A blank q is the
// same as listing everything.
func (mc *MovieController) SearchMovies(c *gin.Context) {
	list, err := mc.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Printf("[Movies] search failed: %v", err)
		list = []models.Movie{}
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

func (mc *MovieController) GetMovie(c *gin.Context) {
	movie, err := mc.svc.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrMovieNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}
	if err != nil {
		log.Printf("[Movies] get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, movie)
}

// CreateMovie handles the admin movie form.
func (mc *MovieController) CreateMovie(c *gin.Context) {
	var req lib.MovieFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters: " + err.Error()})
		return
	}

	movie := req.Movie()
	if !models.IsStoredCategory(movie.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	created, err := mc.svc.Create(c.Request.Context(), movie)
	if err != nil {
		log.Printf("[Movies] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save movie"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (mc *MovieController) UpdateMovie(c *gin.Context) {
	var req lib.MovieFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters: " + err.Error()})
		return
	}

	movie := req.Movie()
	if !models.IsStoredCategory(movie.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	updated, err := mc.svc.Update(c.Request.Context(), c.Param("id"), movie)
	if errors.Is(err, service.ErrMovieNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}
	if err != nil {
		log.Printf("[Movies] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save movie"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (mc *MovieController) DeleteMovie(c *gin.Context) {
	err := mc.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrMovieNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}
	if err != nil {
		log.Printf("[Movies] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete movie"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
