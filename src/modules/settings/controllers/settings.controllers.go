package settings

import (
	"context"
	"errors"
	"log"
	"net/http"

	models "cinemax/src/modules/settings/models"
	service "cinemax/src/modules/settings/services"

	"github.com/gin-gonic/gin"
)

type SettingsService interface {
	Get(ctx context.Context) (models.WebsiteSettings, error)
	Update(ctx context.Context, req service.UpdateRequest) (models.WebsiteSettings, error)
}

type SettingsController struct {
	svc SettingsService
}

func NewSettingsController(svc SettingsService) *SettingsController {
	return &SettingsController{svc: svc}
}

// GetPublic returns the site settings every page needs. The password hash is
// excluded by the model's JSON shape. A failed read falls back to the seed
// defaults so the site still renders.
func (sc *SettingsController) GetPublic(c *gin.Context) {
	row, err := sc.svc.Get(c.Request.Context())
	if err != nil {
		log.Printf("[Settings] read failed: %v", err)
		row = models.WebsiteSettings{
			Name:          "Yoruba Cinemax",
			Tagline:       "Nigeria's Premier Yoruba Movie Destination",
			CopyrightYear: 2025,
		}
	}
	c.JSON(http.StatusOK, row)
}

// Update applies the admin settings form. The route is admin-gated and the
// form additionally carries the current password.
func (sc *SettingsController) Update(c *gin.Context) {
	var req service.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters: " + err.Error()})
		return
	}

	row, err := sc.svc.Update(c.Request.Context(), req)
	if errors.Is(err, service.ErrInvalidPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		log.Printf("[Settings] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, row)
}
