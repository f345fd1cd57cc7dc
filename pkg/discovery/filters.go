package discovery

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Sentinel option values. Selecting them means "do not filter on this".
const (
	GenreAll    = "All"
	MoodAll     = "All"
	LanguageAny = "Any"
)

// Bounds of the user-facing filter controls.
const (
	MinYear          = 1900
	MaxYear          = 2025
	MinRating        = 0.0
	MaxRating        = 10.0
	RatingStep       = 0.1
	DefaultMinRating = 6.0
)

// YearRange is an inclusive release year window.
type YearRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// DefaultYearRange is the initial year window shown to the user.
var DefaultYearRange = YearRange{From: 2000, To: MaxYear}

// Filters is one snapshot of the user's filter selections. It is rebuilt from
// the current control values on every render and owns no state.
type Filters struct {
	Years     YearRange
	Genres    []string
	Mood      string
	MinRating float64
	Languages []string
	Actor     string
	Director  string
}

// BuildQuery translates the filter selections into discover query parameters.
// Person filters are not handled here; they need remote name resolution and
// are applied by the Manager after it has both ids in hand.
func BuildQuery(f Filters, catalog Catalog) url.Values {
	params := url.Values{}

	params.Set("primary_release_date.gte", fmt.Sprintf("%d-01-01", f.Years.From))
	params.Set("primary_release_date.lte", fmt.Sprintf("%d-12-31", f.Years.To))

	genreIDs := make(map[int]struct{})
	if !containsOption(f.Genres, GenreAll) {
		for _, name := range f.Genres {
			if id, ok := catalog.GenreID(name); ok {
				genreIDs[id] = struct{}{}
			}
		}
	}
	if f.Mood != MoodAll && f.Mood != "" {
		for _, id := range catalog.MoodGenreIDs(f.Mood) {
			genreIDs[id] = struct{}{}
		}
	}
	if len(genreIDs) > 0 {
		params.Set("with_genres", joinGenreIDs(genreIDs))
	}

	if f.MinRating > 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(f.MinRating, 'f', -1, 64))
	}

	if len(f.Languages) > 0 && !containsOption(f.Languages, LanguageAny) {
		var codes []string
		for _, name := range f.Languages {
			if code, ok := supportedLanguages[name]; ok {
				codes = append(codes, code)
			}
		}
		if len(codes) > 0 {
			// logical OR across original languages
			params.Set("with_original_language", strings.Join(codes, "|"))
		}
	}

	return params
}

func containsOption(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}

func joinGenreIDs(ids map[int]struct{}) string {
	sorted := make([]int, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
