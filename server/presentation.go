package server

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cinescope/cinescope/pkg/pagination"
	"github.com/cinescope/cinescope/pkg/tmdb"
	"github.com/dustin/go-humanize"
)

const maxCastNames = 5

// Grid headings by how the page was produced.
const (
	headingPopular     = "Popular Movies"
	headingRecommended = "Recommended for You"
	headingSurprise    = "Your Surprise Picks"
)

// MovieCard is the grid projection of a movie.
type MovieCard struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	PosterURL   string `json:"posterUrl,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	Rating      string `json:"rating"`
	Overview    string `json:"overview,omitempty"`
}

// MoviePage is one rendered page of the grid.
type MoviePage struct {
	Heading    string          `json:"heading"`
	Movies     []MovieCard     `json:"movies"`
	Pagination pagination.Meta `json:"pagination"`
	Notices    []string        `json:"notices,omitempty"`
}

// MovieView is the full detail projection of a movie.
type MovieView struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Tagline     string   `json:"tagline,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	PosterURL   string   `json:"posterUrl,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
	Runtime     string   `json:"runtime"`
	Rating      string   `json:"rating"`
	Genres      []string `json:"genres,omitempty"`
	Director    string   `json:"director,omitempty"`
	Cast        []string `json:"cast,omitempty"`
	Homepage    string   `json:"homepage,omitempty"`
	IMDBURL     string   `json:"imdbUrl,omitempty"`
}

// FilterOptions describes every filter control and its choices so the client
// renders exactly what the backend will accept.
type FilterOptions struct {
	Genres    []string      `json:"genres"`
	Moods     []string      `json:"moods"`
	Languages []string      `json:"languages"`
	Years     YearControl   `json:"years"`
	Rating    RatingControl `json:"rating"`
}

type YearControl struct {
	Min         int `json:"min"`
	Max         int `json:"max"`
	DefaultFrom int `json:"defaultFrom"`
	DefaultTo   int `json:"defaultTo"`
}

type RatingControl struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

func (s Server) posterURL(path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	return strings.TrimSuffix(s.imageBaseURL, "/") + *path
}

// ratingLabel renders "7.8/10" or "N/A" when the movie has no votes yet.
func ratingLabel(avg *float64) string {
	if avg == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f/10", *avg)
}

// detailRatingLabel adds the vote count, e.g. "7.8/10 (1,234 votes)".
func detailRatingLabel(avg *float64, count *int) string {
	label := ratingLabel(avg)
	if avg == nil || count == nil {
		return label
	}
	return fmt.Sprintf("%s (%s votes)", label, humanize.Comma(int64(*count)))
}

// runtimeLabel renders "2h 19m", or "N/A" when the runtime is unknown.
func runtimeLabel(minutes *int) string {
	if minutes == nil || *minutes <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dh %dm", *minutes/60, *minutes%60)
}

func heading(filtersApplied, surpriseJustShown bool) string {
	switch {
	case surpriseJustShown:
		return headingSurprise
	case filtersApplied:
		return headingRecommended
	default:
		return headingPopular
	}
}

func (s Server) movieCard(m tmdb.MovieSummary) MovieCard {
	return MovieCard{
		ID:          m.ID,
		Title:       m.DisplayTitle(),
		PosterURL:   s.posterURL(m.PosterPath),
		ReleaseDate: m.ReleaseDate,
		Rating:      ratingLabel(m.VoteAverage),
		Overview:    m.Overview,
	}
}

func (s Server) movieView(det *tmdb.MovieDetail) MovieView {
	view := MovieView{
		ID:          det.ID,
		Title:       det.DisplayTitle(),
		Tagline:     det.Tagline,
		Overview:    det.Overview,
		PosterURL:   s.posterURL(det.PosterPath),
		ReleaseDate: det.ReleaseDate,
		Runtime:     runtimeLabel(det.Runtime),
		Rating:      detailRatingLabel(det.VoteAverage, det.VoteCount),
		Homepage:    det.Homepage,
	}

	for _, g := range det.Genres {
		view.Genres = append(view.Genres, g.Name)
	}

	if det.ImdbID != "" {
		view.IMDBURL = "https://www.imdb.com/title/" + det.ImdbID
	}

	if det.Credits != nil {
		view.Director = directorName(det.Credits.Crew)
		view.Cast = topCastNames(det.Credits.Cast)
	}

	return view
}

func directorName(crew []tmdb.CrewMember) string {
	for _, c := range crew {
		if c.Job == "Director" {
			return c.Name
		}
	}
	return ""
}

func topCastNames(cast []tmdb.CastMember) []string {
	sorted := make([]tmdb.CastMember, len(cast))
	copy(sorted, cast)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	if len(sorted) > maxCastNames {
		sorted = sorted[:maxCastNames]
	}

	names := make([]string, len(sorted))
	for i, c := range sorted {
		names[i] = c.Name
	}
	return names
}
