package movies

import (
	"log"
	"net/http"

	lib "cinemax/src/modules/movies/lib"
	models "cinemax/src/modules/movies/models"
	service "cinemax/src/modules/movies/services"
	"cinemax/src/utils"

	"github.com/gin-gonic/gin"
)

// BrowseMovies composes the home-page view: optional search text, then the
// category/year/sort/page pipeline over the resulting list.
func (mc *MovieController) BrowseMovies(c *gin.Context) {
	var req lib.BrowseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters: " + err.Error()})
		return
	}

	// Set default values
	if req.Category == "" || (req.Category != "all" && !models.IsStoredCategory(req.Category)) {
		req.Category = "all"
	}
	if req.Year == "" {
		req.Year = "all"
	}
	if !models.IsValidSort(req.Sort) {
		req.Sort = models.SortNewest
	}
	if req.Page <= 0 {
		req.Page = 1
	}

	list, err := mc.svc.Search(c.Request.Context(), req.Query)
	if err != nil {
		log.Printf("[Movies] browse load failed: %v", err)
		list = []models.Movie{}
	}

	page := service.Compose(list, req.Category, req.Year, req.Sort, req.Page)

	c.JSON(http.StatusOK, gin.H{
		"items":           page.Items,
		"pagination":      utils.Paginate(int64(page.TotalCount), page.Page, service.MoviesPerPage),
		"available_years": service.Years(list),
		"filters": gin.H{
			"category": req.Category,
			"year":     req.Year,
			"sort":     req.Sort,
		},
	})
}
