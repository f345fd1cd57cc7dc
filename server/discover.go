package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cinescope/cinescope/pkg/discovery"
	"github.com/cinescope/cinescope/pkg/logger"
	"github.com/cinescope/cinescope/pkg/pagination"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// GetFilters returns every filter control and its choices
func (s Server) GetFilters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		catalog := s.discovery.Catalog(r.Context())

		options := FilterOptions{
			Genres:    catalog.GenreOptions(),
			Moods:     catalog.MoodOptions(),
			Languages: discovery.LanguageOptions(),
			Years: YearControl{
				Min:         discovery.MinYear,
				Max:         discovery.MaxYear,
				DefaultFrom: discovery.DefaultYearRange.From,
				DefaultTo:   discovery.DefaultYearRange.To,
			},
			Rating: RatingControl{
				Min:     discovery.MinRating,
				Max:     discovery.MaxRating,
				Step:    discovery.RatingStep,
				Default: discovery.DefaultMinRating,
			},
		}

		err := writeResponse(w, http.StatusOK, GenericResponse{Response: options})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// ListMovies renders the current session's page of the grid. When the session
// has surprise mode armed, this is where the random page is fetched and
// committed.
func (s Server) ListMovies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromCtx(ctx)

		filters, err := parseFilterParams(r)
		if err != nil {
			log.Debug("invalid filter parameters", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		id := sessionID(ctx)
		state := s.sessions.Get(id)

		var result discovery.Result
		if state.SurpriseMode {
			var page int
			result, page = s.discovery.Surprise(ctx, filters.Years)
			state = state.CommitSurprise(page)
		} else {
			result, state = s.discovery.Discover(ctx, filters, state, state.Page)
		}

		window := pagination.Window{Page: state.Page, TotalPages: result.TotalPages}
		// filters can shrink the result set under the current page
		state.Page = window.ClampedPage()
		s.sessions.Save(id, state)

		page := MoviePage{
			Heading:    heading(result.FiltersApplied, state.SurpriseJustShown),
			Movies:     make([]MovieCard, 0, len(result.Movies)),
			Pagination: window.BuildMeta(),
			Notices:    result.Notices,
		}
		for _, m := range result.Movies {
			page.Movies = append(page.Movies, s.movieCard(m))
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: page})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GetMovie renders the detail view for one movie
func (s Server) GetMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromCtx(ctx)

		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.Error(w, "invalid movie id", http.StatusBadRequest)
			return
		}

		det := s.discovery.Details(ctx, id)
		if det == nil {
			writeErrorResponse(w, http.StatusNotFound, fmt.Errorf("movie %d not found", id))
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: s.movieView(det)})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// parseFilterParams extracts and validates filter selections from the request
func parseFilterParams(r *http.Request) (discovery.Filters, error) {
	filters := discovery.Filters{
		Years:     discovery.DefaultYearRange,
		Genres:    []string{discovery.GenreAll},
		Mood:      discovery.MoodAll,
		MinRating: discovery.DefaultMinRating,
		Languages: []string{discovery.LanguageAny},
	}

	qp := r.URL.Query()

	if from := qp.Get("yearFrom"); from != "" {
		year, err := strconv.Atoi(from)
		if err != nil || year < discovery.MinYear || year > discovery.MaxYear {
			return filters, fmt.Errorf("invalid yearFrom parameter: must be between %d and %d", discovery.MinYear, discovery.MaxYear)
		}
		filters.Years.From = year
	}

	if to := qp.Get("yearTo"); to != "" {
		year, err := strconv.Atoi(to)
		if err != nil || year < discovery.MinYear || year > discovery.MaxYear {
			return filters, fmt.Errorf("invalid yearTo parameter: must be between %d and %d", discovery.MinYear, discovery.MaxYear)
		}
		filters.Years.To = year
	}

	if filters.Years.From > filters.Years.To {
		return filters, fmt.Errorf("invalid year range: yearFrom is after yearTo")
	}

	if genres, ok := qp["genre"]; ok {
		filters.Genres = genres
	}

	if mood := qp.Get("mood"); mood != "" {
		filters.Mood = mood
	}

	if rating := qp.Get("minRating"); rating != "" {
		value, err := strconv.ParseFloat(rating, 64)
		if err != nil || value < discovery.MinRating || value > discovery.MaxRating {
			return filters, fmt.Errorf("invalid minRating parameter: must be between %.0f and %.0f", discovery.MinRating, discovery.MaxRating)
		}
		filters.MinRating = value
	}

	if languages, ok := qp["language"]; ok {
		filters.Languages = languages
	}

	filters.Actor = qp.Get("actor")
	filters.Director = qp.Get("director")

	return filters, nil
}
