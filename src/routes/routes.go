package routes

import (
	"net/http"

	"cinemax/src/config"
	admin "cinemax/src/modules/admin/controllers"
	adminsvc "cinemax/src/modules/admin/services"
	comments "cinemax/src/modules/comments/controllers"
	commentsvc "cinemax/src/modules/comments/services"
	files "cinemax/src/modules/files/controllers"
	movies "cinemax/src/modules/movies/controllers"
	moviesvc "cinemax/src/modules/movies/services"
	settings "cinemax/src/modules/settings/controllers"
	settingsvc "cinemax/src/modules/settings/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	settingsService := settingsvc.NewSettingsService(config.DB)
	gate := adminsvc.NewGate(adminsvc.NewRedisSessionStore(config.RDB), settingsService)

	movieController := movies.NewMovieController(moviesvc.NewMovieService(config.DB))
	commentController := comments.NewCommentController(commentsvc.NewCommentService(config.DB))
	settingsController := settings.NewSettingsController(settingsService)
	adminController := admin.NewAdminController(gate)
	requireAdmin := admin.RequireAdmin(gate)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if config.CheckConnection() {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
		} else {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		}
	})

	api := router.Group("/api/v1")

	// Catalog routes
	moviesRoutes := api.Group("/movies")
	{
		moviesRoutes.GET("", movieController.ListMovies)
		moviesRoutes.GET("/browse", movieController.BrowseMovies)
		moviesRoutes.GET("/search", movieController.SearchMovies)
		moviesRoutes.GET("/:id", movieController.GetMovie)
		moviesRoutes.GET("/:id/comments", commentController.ListForMovie)
		moviesRoutes.POST("/:id/comments", commentController.CreateForMovie)

		moviesRoutes.POST("", requireAdmin, movieController.CreateMovie)
		moviesRoutes.PUT("/:id", requireAdmin, movieController.UpdateMovie)
		moviesRoutes.DELETE("/:id", requireAdmin, movieController.DeleteMovie)
	}

	api.DELETE("/comments/:id", requireAdmin, commentController.Delete)

	api.GET("/settings", settingsController.GetPublic)
	api.PUT("/settings", requireAdmin, settingsController.Update)

	// Admin session routes
	adminRoutes := api.Group("/admin")
	{
		adminRoutes.POST("/login", adminController.Login)
		adminRoutes.POST("/logout", adminController.Logout)
		adminRoutes.GET("/session", adminController.Session)
	}

	// Poster storage
	api.POST("/files/upload", requireAdmin, files.UploadController)
	staticProxyRoutes := api.Group("/static")
	{
		staticProxyRoutes.GET("/*filepath", files.FileController)
	}
}
