package discovery

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return NewCatalog(map[int]string{
		28:   "Action",
		35:   "Comedy",
		18:   "Drama",
		27:   "Horror",
		9648: "Mystery",
		53:   "Thriller",
	})
}

func TestBuildQuery(t *testing.T) {
	t.Run("mood expands while genre selection is All", func(t *testing.T) {
		catalog := NewCatalog(map[int]string{35: "Comedy", 28: "Action"})

		params := BuildQuery(Filters{
			Years:     YearRange{From: 2010, To: 2020},
			Genres:    []string{GenreAll},
			Mood:      "Funny",
			MinRating: 7.5,
			Languages: []string{LanguageAny},
		}, catalog)

		assert.Equal(t, "2010-01-01", params.Get("primary_release_date.gte"))
		assert.Equal(t, "2020-12-31", params.Get("primary_release_date.lte"))
		assert.Equal(t, "35", params.Get("with_genres"))
		assert.Equal(t, "7.5", params.Get("vote_average.gte"))
		assert.False(t, params.Has("with_original_language"))
		assert.False(t, params.Has("sort_by"))
	})

	t.Run("genres and mood union without duplicates", func(t *testing.T) {
		params := BuildQuery(Filters{
			Years:  DefaultYearRange,
			Genres: []string{"Comedy", "Thriller"},
			Mood:   "Suspenseful",
		}, testCatalog())

		assert.Equal(t, "27,35,53,9648", params.Get("with_genres"))
	})

	t.Run("All sentinel disables explicit genres", func(t *testing.T) {
		params := BuildQuery(Filters{
			Years:  DefaultYearRange,
			Genres: []string{"Comedy", GenreAll, "Thriller"},
		}, testCatalog())

		assert.False(t, params.Has("with_genres"))
	})

	t.Run("unknown genre names are skipped", func(t *testing.T) {
		params := BuildQuery(Filters{
			Years:  DefaultYearRange,
			Genres: []string{"Comedy", "Documentary"},
		}, testCatalog())

		assert.Equal(t, "35", params.Get("with_genres"))
	})

	t.Run("zero rating omits the threshold", func(t *testing.T) {
		params := BuildQuery(Filters{Years: DefaultYearRange}, testCatalog())
		assert.False(t, params.Has("vote_average.gte"))
	})

	t.Run("languages join with pipes", func(t *testing.T) {
		params := BuildQuery(Filters{
			Years:     DefaultYearRange,
			Languages: []string{"Hindi", "Tamil"},
		}, testCatalog())

		assert.Equal(t, "hi|ta", params.Get("with_original_language"))
	})

	t.Run("Any sentinel disables language filtering", func(t *testing.T) {
		params := BuildQuery(Filters{
			Years:     DefaultYearRange,
			Languages: []string{"Hindi", LanguageAny},
		}, testCatalog())

		assert.False(t, params.Has("with_original_language"))
	})

	t.Run("full selection snapshot", func(t *testing.T) {
		params := BuildQuery(Filters{
			Years:     YearRange{From: 1995, To: 2015},
			Genres:    []string{"Drama"},
			Mood:      "Suspenseful",
			MinRating: 6.5,
			Languages: []string{"English", "Malayalam"},
		}, testCatalog())

		snaps.MatchSnapshot(t, params.Encode())
	})
}

func TestCatalogOptions(t *testing.T) {
	catalog := testCatalog()

	genres := catalog.GenreOptions()
	require.NotEmpty(t, genres)
	assert.Equal(t, GenreAll, genres[0])
	assert.Equal(t, []string{GenreAll, "Action", "Comedy", "Drama", "Horror", "Mystery", "Thriller"}, genres)

	moods := catalog.MoodOptions()
	assert.Equal(t, MoodAll, moods[0])
	assert.Contains(t, moods, "Funny")
	assert.Contains(t, moods, "Suspenseful")
	// no Romance genre loaded, but Romantic still resolves through Comedy
	assert.Contains(t, moods, "Romantic")
	assert.Equal(t, []int{35}, catalog.MoodGenreIDs("Romantic"))
}

func TestCatalogEmpty(t *testing.T) {
	catalog := NewCatalog(map[int]string{})

	assert.Equal(t, []string{GenreAll}, catalog.GenreOptions())
	assert.Equal(t, []string{MoodAll}, catalog.MoodOptions())

	params := BuildQuery(Filters{
		Years:  DefaultYearRange,
		Genres: []string{"Comedy"},
		Mood:   "Funny",
	}, catalog)
	assert.False(t, params.Has("with_genres"))
}

func TestLanguageOptions(t *testing.T) {
	options := LanguageOptions()
	assert.Equal(t, []string{LanguageAny, "English", "Hindi", "Malayalam", "Tamil", "Telugu"}, options)
}
