package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	service "cinemax/src/modules/admin/services"

	"github.com/gin-gonic/gin"
)

// AdminGate is the session surface the controllers and middleware need.
type AdminGate interface {
	Login(ctx context.Context, password string) (string, error)
	Check(ctx context.Context, token string) bool
	Logout(ctx context.Context, token string) error
}

type AdminController struct {
	gate AdminGate
}

func NewAdminController(gate AdminGate) *AdminController {
	return &AdminController{gate: gate}
}

// Login exchanges the admin password for a session token.
func (ac *AdminController) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login data"})
		return
	}

	token, err := ac.gate.Login(c.Request.Context(), req.Password)
	if errors.Is(err, service.ErrRateLimited) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		return
	}
	if errors.Is(err, service.ErrInvalidPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		log.Printf("[AUTH] login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expires_in": int(service.SessionTTL.Seconds())})
}

// Session reports whether the presented token is still live.
func (ac *AdminController) Session(c *gin.Context) {
	token := bearerToken(c)
	c.JSON(http.StatusOK, gin.H{"authenticated": ac.gate.Check(c.Request.Context(), token)})
}

// Logout discards the session.
func (ac *AdminController) Logout(c *gin.Context) {
	if err := ac.gate.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		log.Printf("[AUTH] logout failed: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// RequireAdmin refuses privileged actions without a live session token. A
// missing token and an unknown one are indistinguishable to the caller.
func RequireAdmin(gate AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if !gate.Check(c.Request.Context(), token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
