package movies

import (
	"fmt"
	"testing"
	"time"

	models "cinemax/src/modules/movies/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkMovie(id, category, releaseDate string, rating float64, popularity int, createdAt time.Time) models.Movie {
	return models.Movie{
		ID:          id,
		Title:       "Movie " + id,
		Category:    category,
		ReleaseDate: releaseDate,
		Rating:      rating,
		Popularity:  popularity,
		CreatedAt:   createdAt,
	}
}

func mkCatalog(n int) []models.Movie {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	list := make([]models.Movie, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, mkMovie(
			fmt.Sprintf("m%d", i),
			models.StoredCategories[i%len(models.StoredCategories)],
			fmt.Sprintf("%d", 2018+i%4),
			float64(i%10),
			i%7,
			base.Add(time.Duration(i)*time.Hour),
		))
	}
	return list
}

func TestComposePageSizeBound(t *testing.T) {
	list := mkCatalog(30)
	for page := 1; page <= 10; page++ {
		res := Compose(list, "all", "all", models.SortNewest, page)
		assert.LessOrEqual(t, len(res.Items), MoviesPerPage)
	}
}

func TestComposePagesConcatenateToFullSet(t *testing.T) {
	list := mkCatalog(27)

	first := Compose(list, "all", "all", models.SortRating, 1)
	require.Equal(t, 4, first.TotalPages) // ceil(27/8)

	var seen []string
	for page := 1; page <= first.TotalPages; page++ {
		res := Compose(list, "all", "all", models.SortRating, page)
		for _, m := range res.Items {
			seen = append(seen, m.ID)
		}
	}

	assert.Len(t, seen, len(list))
	unique := make(map[string]bool)
	for _, id := range seen {
		assert.False(t, unique[id], "duplicate id %s across pages", id)
		unique[id] = true
	}
}

func TestComposeTotalPages(t *testing.T) {
	cases := []struct {
		count int
		pages int
	}{
		{0, 0},
		{1, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{17, 3},
	}
	for _, tc := range cases {
		res := Compose(mkCatalog(tc.count), "all", "all", models.SortNewest, 1)
		assert.Equal(t, tc.pages, res.TotalPages, "count=%d", tc.count)
	}
}

func TestComposeClampsOutOfRangePages(t *testing.T) {
	list := mkCatalog(10)

	res := Compose(list, "all", "all", models.SortNewest, 99)
	assert.Equal(t, 2, res.Page)
	assert.Len(t, res.Items, 2)

	res = Compose(list, "all", "all", models.SortNewest, -3)
	assert.Equal(t, 1, res.Page)
	assert.Len(t, res.Items, MoviesPerPage)

	empty := Compose(nil, "all", "all", models.SortNewest, 5)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Empty(t, empty.Items)
}

func TestSortMoviesStablePerKey(t *testing.T) {
	now := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	list := []models.Movie{
		mkMovie("a", "drama", "2020", 5, 1, now),
		mkMovie("b", "drama", "2020", 5, 9, now.Add(time.Hour)),
		mkMovie("c", "drama", "2020", 5, 9, now.Add(2*time.Hour)),
	}

	// Equal ratings keep input order.
	byRating := SortMovies(list, models.SortRating)
	assert.Equal(t, []string{"a", "b", "c"}, ids(byRating))

	// Re-sorting the original input by popularity does not depend on the
	// rating sort having happened.
	byPopularity := SortMovies(list, models.SortPopularity)
	assert.Equal(t, []string{"b", "c", "a"}, ids(byPopularity))

	// Input untouched.
	assert.Equal(t, []string{"a", "b", "c"}, ids(list))
}

func TestSortMoviesByCreatedAt(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	list := []models.Movie{
		mkMovie("old", "drama", "2020", 1, 1, base),
		mkMovie("mid", "drama", "2020", 1, 1, base.AddDate(0, 1, 0)),
		mkMovie("new", "drama", "2020", 1, 1, base.AddDate(0, 2, 0)),
	}

	assert.Equal(t, []string{"new", "mid", "old"}, ids(SortMovies(list, models.SortNewest)))
	assert.Equal(t, []string{"old", "mid", "new"}, ids(SortMovies(list, models.SortOldest)))
}

func TestComposeScenario(t *testing.T) {
	m1 := mkMovie("m1", "drama", "2020-01-01", 7.5, 10,
		time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC))
	m2 := mkMovie("m2", "comedy", "2021-01-01", 9.0, 3,
		time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC))
	list := []models.Movie{m1, m2}

	byRating := Compose(list, "all", "all", models.SortRating, 1)
	assert.Equal(t, []string{"m2", "m1"}, ids(byRating.Items))

	byPopularity := Compose(list, "all", "all", models.SortPopularity, 1)
	assert.Equal(t, []string{"m1", "m2"}, ids(byPopularity.Items))

	dramaOnly := Compose(list, "drama", "all", models.SortNewest, 1)
	assert.Equal(t, []string{"m1"}, ids(dramaOnly.Items))
}

func TestFilterByCategoryCaseInsensitive(t *testing.T) {
	now := time.Now()
	list := []models.Movie{
		mkMovie("a", "Drama", "2020", 1, 1, now),
		mkMovie("b", "comedy", "2020", 1, 1, now),
	}

	assert.Equal(t, []string{"a"}, ids(FilterByCategory(list, "drama")))
	assert.Len(t, FilterByCategory(list, "all"), 2)
	assert.Len(t, FilterByCategory(list, ""), 2)
}

func TestFilterByYearStringEquality(t *testing.T) {
	now := time.Now()
	list := []models.Movie{
		mkMovie("a", "drama", "2020-01-01", 1, 1, now),
		mkMovie("b", "drama", "2020", 1, 1, now),
	}

	// Exact string match, no date parsing: "2020" does not match "2020-01-01".
	assert.Equal(t, []string{"b"}, ids(FilterByYear(list, "2020")))
	assert.Len(t, FilterByYear(list, "all"), 2)
}

func TestYearsDistinctDescendingLexicographic(t *testing.T) {
	now := time.Now()
	list := []models.Movie{
		mkMovie("a", "drama", "2019", 1, 1, now),
		mkMovie("b", "drama", "2021", 1, 1, now),
		mkMovie("c", "drama", "2019", 1, 1, now),
		mkMovie("d", "drama", "2020-06-01", 1, 1, now),
	}

	// Lexicographic descending: "2021" > "2020-06-01" > "2019".
	assert.Equal(t, []string{"2021", "2020-06-01", "2019"}, Years(list))
	assert.Empty(t, Years(nil))
}

func ids(list []models.Movie) []string {
	out := make([]string, 0, len(list))
	for _, m := range list {
		out = append(out, m.ID)
	}
	return out
}
