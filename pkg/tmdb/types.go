package tmdb

// Genre is a single entry of the TMDB movie genre taxonomy.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList is the response of the genre list endpoint.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Person is a single person search result. Results are returned in TMDB's
// own relevance order; the first entry is the authoritative match.
type Person struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Popularity         float64 `json:"popularity"`
	KnownForDepartment string  `json:"known_for_department"`
}

// PersonSearchResponse is the response of the person search endpoint.
type PersonSearchResponse struct {
	Page         int      `json:"page"`
	Results      []Person `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// MovieSummary is the per-movie projection returned by the discover endpoint.
// Optional fields stay pointers so a missing value is distinguishable from zero.
type MovieSummary struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Name             string   `json:"name"`
	OriginalLanguage string   `json:"original_language"`
	Overview         string   `json:"overview"`
	PosterPath       *string  `json:"poster_path"`
	ReleaseDate      string   `json:"release_date"`
	GenreIDs         []int    `json:"genre_ids"`
	Popularity       float64  `json:"popularity"`
	VoteAverage      *float64 `json:"vote_average"`
	VoteCount        *int     `json:"vote_count"`
}

// DisplayTitle returns the movie title, falling back to the alternate name
// field some responses use.
func (m MovieSummary) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// DiscoverResponse is the paginated response of the discover endpoint.
type DiscoverResponse struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// CastMember is a single cast credit on a movie.
type CastMember struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is a single crew credit on a movie.
type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits holds the cast and crew appended to a movie detail response.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MovieDetail is the full movie-by-id response including appended credits.
type MovieDetail struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Name        string   `json:"name"`
	Overview    string   `json:"overview"`
	PosterPath  *string  `json:"poster_path"`
	ReleaseDate string   `json:"release_date"`
	Genres      []Genre  `json:"genres"`
	Runtime     *int     `json:"runtime"`
	Tagline     string   `json:"tagline"`
	Homepage    string   `json:"homepage"`
	ImdbID      string   `json:"imdb_id"`
	VoteAverage *float64 `json:"vote_average"`
	VoteCount   *int     `json:"vote_count"`
	Credits     *Credits `json:"credits"`
}

// DisplayTitle returns the movie title, falling back to the alternate name field.
func (m MovieDetail) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}
