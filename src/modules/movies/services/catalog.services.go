package movies

import (
	"sort"
	"strings"

	models "cinemax/src/modules/movies/models"
)

// MoviesPerPage is the fixed catalog page size.
const MoviesPerPage = 8

// CatalogPage is one page of the composed catalog view.
type CatalogPage struct {
	Items      []models.Movie
	Page       int
	TotalPages int
	TotalCount int
}

// Compose runs the catalog query pipeline over the full movie list:
// category filter, year filter, stable sort, then pagination. Pages are
// 1-based; out-of-range pages are clamped. The input slice is not mutated.
func Compose(list []models.Movie, category, year, sortBy string, page int) CatalogPage {
	filtered := FilterByCategory(list, category)
	filtered = FilterByYear(filtered, year)
	sorted := SortMovies(filtered, sortBy)

	total := len(sorted)
	totalPages := (total + MoviesPerPage - 1) / MoviesPerPage

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * MoviesPerPage
	end := start + MoviesPerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return CatalogPage{
		Items:      sorted[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalCount: total,
	}
}

// FilterByCategory keeps every movie when category is "all", otherwise those
// whose category equals it case-insensitively.
func FilterByCategory(list []models.Movie, category string) []models.Movie {
	if category == "" || category == "all" {
		return list
	}
	category = strings.ToLower(category)
	out := make([]models.Movie, 0, len(list))
	for _, m := range list {
		if strings.ToLower(m.Category) == category {
			out = append(out, m)
		}
	}
	return out
}

// FilterByYear keeps every movie when year is "all", otherwise those whose
// release date equals it exactly. Plain string equality: release dates are
// opaque keys, not calendar dates.
func FilterByYear(list []models.Movie, year string) []models.Movie {
	if year == "" || year == "all" {
		return list
	}
	out := make([]models.Movie, 0, len(list))
	for _, m := range list {
		if m.ReleaseDate == year {
			out = append(out, m)
		}
	}
	return out
}

// SortMovies returns a stably sorted copy of the list. Unknown options leave
// the input order untouched.
func SortMovies(list []models.Movie, sortBy string) []models.Movie {
	out := make([]models.Movie, len(list))
	copy(out, list)

	switch sortBy {
	case models.SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case models.SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case models.SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case models.SortPopularity:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Popularity > out[j].Popularity
		})
	}
	return out
}

// Years returns the distinct release date values in the list, sorted
// descending lexicographically.
func Years(list []models.Movie) []string {
	seen := make(map[string]bool, len(list))
	years := make([]string, 0, len(list))
	for _, m := range list {
		if !seen[m.ReleaseDate] {
			seen[m.ReleaseDate] = true
			years = append(years, m.ReleaseDate)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}
