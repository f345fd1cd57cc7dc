package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinescope/cinescope/pkg/discovery"
	"github.com/cinescope/cinescope/pkg/session"
	"github.com/cinescope/cinescope/pkg/tmdb"
	"github.com/cinescope/cinescope/pkg/tmdb/mocks"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func withSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

func testServer(client tmdb.ClientInterface, opts ...discovery.Option) Server {
	return New(zap.NewNop().Sugar(), discovery.New(client, opts...), session.NewStore(), "https://image.tmdb.org/t/p/w500")
}

func genreFixture() *tmdb.GenreList {
	return &tmdb.GenreList{Genres: []tmdb.Genre{
		{ID: 28, Name: "Action"},
		{ID: 35, Name: "Comedy"},
	}}
}

func TestServer_Healthz(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}

		req, err := http.NewRequest("GET", "/healthz", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()

		handler := s.Healthz()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, "application/json", rr.Header().Get("content-type"))

		var response GenericResponse
		err = json.Unmarshal(rr.Body.Bytes(), &response)

		assert.NoError(t, err)
		assert.Equal(t, "ok", response.Response)
	})
}

func TestServer_GetFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClientInterface(ctrl)
	client.EXPECT().MovieGenres(gomock.Any()).Return(genreFixture(), nil).Times(1)

	s := testServer(client)

	req, err := http.NewRequest("GET", "/api/v1/filters", nil)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	s.GetFilters().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Response FilterOptions `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

	assert.Equal(t, []string{"All", "Action", "Comedy"}, response.Response.Genres)
	assert.Equal(t, "All", response.Response.Moods[0])
	assert.Contains(t, response.Response.Moods, "Funny")
	assert.Equal(t, "Any", response.Response.Languages[0])
	assert.Equal(t, 1900, response.Response.Years.Min)
	assert.Equal(t, 6.0, response.Response.Rating.Default)
}

func TestServer_ListMovies(t *testing.T) {
	poster := "/poster.jpg"
	rating := 8.8

	discoverResponse := &tmdb.DiscoverResponse{
		Page:       1,
		TotalPages: 12,
		Results: []tmdb.MovieSummary{
			{ID: 27205, Title: "Inception", PosterPath: &poster, ReleaseDate: "2010-07-15", VoteAverage: &rating},
			{ID: 157336, Title: "Interstellar"},
		},
	}

	t.Run("renders the popular grid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClientInterface(ctrl)
		client.EXPECT().MovieGenres(gomock.Any()).Return(genreFixture(), nil).Times(1)
		client.EXPECT().DiscoverMovies(gomock.Any(), gomock.Any(), 1).Return(discoverResponse, nil).Times(1)

		s := testServer(client)

		req, err := http.NewRequest("GET", "/api/v1/movies?minRating=0", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		s.ListMovies().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Response MoviePage `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

		page := response.Response
		assert.Equal(t, "Popular Movies", page.Heading)
		require.Len(t, page.Movies, 2)
		assert.Equal(t, "Inception", page.Movies[0].Title)
		assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", page.Movies[0].PosterURL)
		assert.Equal(t, "8.8/10", page.Movies[0].Rating)
		assert.Equal(t, "N/A", page.Movies[1].Rating)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 12, page.Pagination.MaxDisplayPage)
		assert.False(t, page.Pagination.HasPrevious)
		assert.True(t, page.Pagination.HasNext)
	})

	t.Run("filters switch the heading to recommended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClientInterface(ctrl)
		client.EXPECT().MovieGenres(gomock.Any()).Return(genreFixture(), nil).Times(1)
		client.EXPECT().DiscoverMovies(gomock.Any(), gomock.Any(), 1).Return(discoverResponse, nil).Times(1)

		s := testServer(client)

		req, err := http.NewRequest("GET", "/api/v1/movies?genre=Comedy&minRating=0", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		s.ListMovies().ServeHTTP(rr, req)

		var response struct {
			Response MoviePage `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "Recommended for You", response.Response.Heading)
	})

	t.Run("rejects an out of range year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := testServer(mocks.NewMockClientInterface(ctrl))

		req, err := http.NewRequest("GET", "/api/v1/movies?yearFrom=1800", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		s.ListMovies().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("upstream failure renders an empty grid with a notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClientInterface(ctrl)
		client.EXPECT().MovieGenres(gomock.Any()).Return(genreFixture(), nil).Times(1)
		client.EXPECT().DiscoverMovies(gomock.Any(), gomock.Any(), 1).Return(nil, assert.AnError).Times(1)

		s := testServer(client)

		req, err := http.NewRequest("GET", "/api/v1/movies?minRating=0", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		s.ListMovies().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Response MoviePage `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Empty(t, response.Response.Movies)
		assert.NotEmpty(t, response.Response.Notices)
	})

	t.Run("armed surprise mode fetches and commits a random page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClientInterface(ctrl)
		client.EXPECT().DiscoverMovies(gomock.Any(), gomock.Any(), 1).Return(discoverResponse, nil).Times(1)
		client.EXPECT().DiscoverMovies(gomock.Any(), gomock.Any(), 8).Return(discoverResponse, nil).Times(1)

		s := testServer(client, discovery.WithRandInt(func(n int) int { return 7 }))

		id := "surprise-session"
		s.sessions.Save(id, session.NewState().TriggerSurprise())

		req, err := http.NewRequest("GET", "/api/v1/movies", nil)
		assert.NoError(t, err)
		req = req.WithContext(withSessionID(req.Context(), id))

		rr := httptest.NewRecorder()
		s.ListMovies().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Response MoviePage `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "Your Surprise Picks", response.Response.Heading)
		assert.Equal(t, 8, response.Response.Pagination.Page)

		state := s.sessions.Get(id)
		assert.False(t, state.SurpriseMode)
		assert.Equal(t, 8, state.Page)
	})
}

func TestServer_GetMovie(t *testing.T) {
	runtime := 148
	rating := 8.8
	votes := 34562

	detail := &tmdb.MovieDetail{
		ID:          27205,
		Title:       "Inception",
		Tagline:     "Your mind is the scene of the crime.",
		ReleaseDate: "2010-07-15",
		Runtime:     &runtime,
		VoteAverage: &rating,
		VoteCount:   &votes,
		ImdbID:      "tt1375666",
		Genres:      []tmdb.Genre{{ID: 28, Name: "Action"}},
		Credits: &tmdb.Credits{
			Cast: []tmdb.CastMember{
				{Name: "Elliot Page", Order: 1},
				{Name: "Leonardo DiCaprio", Order: 0},
			},
			Crew: []tmdb.CrewMember{
				{Name: "Emma Thomas", Job: "Producer"},
				{Name: "Christopher Nolan", Job: "Director"},
			},
		},
	}

	t.Run("renders the detail view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClientInterface(ctrl)
		client.EXPECT().MovieDetails(gomock.Any(), 27205).Return(detail, nil).Times(1)

		s := testServer(client)

		req, err := http.NewRequest("GET", "/api/v1/movies/27205", nil)
		assert.NoError(t, err)
		req = mux.SetURLVars(req, map[string]string{"id": "27205"})

		rr := httptest.NewRecorder()
		s.GetMovie().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Response MovieView `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

		view := response.Response
		assert.Equal(t, "Inception", view.Title)
		assert.Equal(t, "2h 28m", view.Runtime)
		assert.Equal(t, "8.8/10 (34,562 votes)", view.Rating)
		assert.Equal(t, "Christopher Nolan", view.Director)
		assert.Equal(t, []string{"Leonardo DiCaprio", "Elliot Page"}, view.Cast)
		assert.Equal(t, "https://www.imdb.com/title/tt1375666", view.IMDBURL)
	})

	t.Run("missing movie is a 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClientInterface(ctrl)
		client.EXPECT().MovieDetails(gomock.Any(), 99).Return(nil, assert.AnError).Times(1)

		s := testServer(client)

		req, err := http.NewRequest("GET", "/api/v1/movies/99", nil)
		assert.NoError(t, err)
		req = mux.SetURLVars(req, map[string]string{"id": "99"})

		rr := httptest.NewRecorder()
		s.GetMovie().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid id is a 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := testServer(mocks.NewMockClientInterface(ctrl))

		req, err := http.NewRequest("GET", "/api/v1/movies/nope", nil)
		assert.NoError(t, err)
		req = mux.SetURLVars(req, map[string]string{"id": "nope"})

		rr := httptest.NewRecorder()
		s.GetMovie().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
