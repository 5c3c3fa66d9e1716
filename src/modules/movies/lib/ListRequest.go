package movies

import (
	"strconv"
	"strings"

	models "cinemax/src/modules/movies/models"
)

// BrowseRequest carries the catalog query the home page composes: optional
// search text plus category/year/sort/page.
type BrowseRequest struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Year     string `form:"year"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
}

// MovieFormRequest is the admin movie form payload. Rating and popularity
// arrive as the raw form strings and parse with a fallback to zero; stars is
// a comma-separated list.
type MovieFormRequest struct {
	Title        string `json:"title" binding:"required"`
	Poster       string `json:"poster"`
	DownloadLink string `json:"downloadLink"`
	Genre        string `json:"genre"`
	ReleaseDate  string `json:"releaseDate"`
	Stars        string `json:"stars"`
	Runtime      string `json:"runtime"`
	Rating       string `json:"rating"`
	Category     string `json:"category" binding:"required"`
	Description  string `json:"description"`
	Popularity   string `json:"popularity"`
}

// Movie converts the form payload into a catalog row. ID and CreatedAt are
// left for the service/store to assign.
func (r MovieFormRequest) Movie() models.Movie {
	return models.Movie{
		Title:        r.Title,
		Poster:       r.Poster,
		DownloadLink: r.DownloadLink,
		Genre:        r.Genre,
		ReleaseDate:  r.ReleaseDate,
		Stars:        SplitStars(r.Stars),
		Runtime:      r.Runtime,
		Rating:       parseFloatOrZero(r.Rating),
		Category:     strings.ToLower(r.Category),
		Description:  r.Description,
		Popularity:   parseIntOrZero(r.Popularity),
	}
}

// SplitStars splits a comma-separated cast list, trimming each name and
// discarding empty segments.
func SplitStars(s string) []string {
	parts := strings.Split(s, ",")
	stars := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			stars = append(stars, name)
		}
	}
	return stars
}

func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseIntOrZero(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}
