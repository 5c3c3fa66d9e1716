package files

import (
	"log"
	"net/http"

	file "cinemax/src/modules/files/services"

	"github.com/gin-gonic/gin"
)

// FileController streams a stored poster.
func FileController(c *gin.Context) {
	filepath := c.Param("filepath")
	if filepath == "" || filepath == "/" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filepath"})
		return
	}

	reader, size, contentType, e := file.FileService(filepath)
	if e != nil {
		c.JSON(e.StatusCode, gin.H{"error": e.Error()})
		return
	}

	c.DataFromReader(http.StatusOK, size, contentType, reader, nil)
}

// UploadController accepts an admin poster upload and answers with the path
// to store on the movie.
func UploadController(c *gin.Context) {
	fileHeader, err := c.FormFile("poster")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "poster file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read poster file"})
		return
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	path, err := file.UploadPoster(c.Request.Context(), fileHeader.Filename, contentType, f, fileHeader.Size)
	if err != nil {
		log.Printf("[Files] upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store poster"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"poster": path})
}
