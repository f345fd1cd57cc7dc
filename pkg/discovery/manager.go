// Package discovery turns user filter selections into TMDB discover queries
// and runs them. The Manager is the error boundary for all remote calls:
// every failure degrades to an empty or nil result plus a user-facing notice,
// and is never propagated to callers. Identical calls are memoized for the
// lifetime of the process, optionally backed by a persistent response store.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"

	"github.com/cinescope/cinescope/pkg/cache"
	"github.com/cinescope/cinescope/pkg/logger"
	"github.com/cinescope/cinescope/pkg/pagination"
	"github.com/cinescope/cinescope/pkg/session"
	"github.com/cinescope/cinescope/pkg/storage"
	"github.com/cinescope/cinescope/pkg/tmdb"
	"go.uber.org/zap"
)

const (
	// Surprise mode narrows to a high-signal pool before sampling.
	surpriseMinRating = 7.0
	surpriseMinVotes  = 300
)

// Result is one page of discovery output. A failed remote call yields the
// zero value plus notices; callers render the empty state rather than an error.
type Result struct {
	Movies         []tmdb.MovieSummary
	TotalPages     int
	FiltersApplied bool
	Notices        []string
}

// Manager owns the TMDB client, the memoization caches and the filter
// catalog. It is safe for concurrent use by multiple sessions.
type Manager struct {
	tmdb    tmdb.ClientInterface
	store   storage.Storage
	pageCap int
	randInt func(n int) int

	genreCache    *cache.Cache[string, map[int]string]
	personCache   *cache.Cache[string, *int]
	discoverCache *cache.Cache[string, *tmdb.DiscoverResponse]
	detailCache   *cache.Cache[int, *tmdb.MovieDetail]
}

// Option configures a Manager.
type Option func(*Manager)

// WithStorage adds a persistent response store behind the in-memory caches.
func WithStorage(store storage.Storage) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithPageCap overrides how deep surprise mode will sample.
func WithPageCap(pages int) Option {
	return func(m *Manager) {
		m.pageCap = pages
	}
}

// WithRandInt overrides the random source used by surprise mode.
func WithRandInt(randInt func(n int) int) Option {
	return func(m *Manager) {
		m.randInt = randInt
	}
}

// New creates a discovery manager around a TMDB client.
func New(client tmdb.ClientInterface, opts ...Option) *Manager {
	m := &Manager{
		tmdb:          client,
		pageCap:       pagination.DefaultPageCap,
		randInt:       rand.Intn,
		genreCache:    cache.New[string, map[int]string](),
		personCache:   cache.New[string, *int](),
		discoverCache: cache.New[string, *tmdb.DiscoverResponse](),
		detailCache:   cache.New[int, *tmdb.MovieDetail](),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Genres returns the genre taxonomy as id to name. On any failure it returns
// an empty map: genre and mood filtering degrade, discovery keeps working.
// The first result, including an empty one, is kept for the process lifetime.
func (m *Manager) Genres(ctx context.Context) map[int]string {
	const key = "tmdb:genres"

	if genres, ok := m.genreCache.Get(key); ok {
		return genres
	}

	log := logger.FromCtx(ctx)

	if body, err := m.storeGet(ctx, key); err == nil {
		var genres map[int]string
		if err := json.Unmarshal(body, &genres); err == nil {
			m.genreCache.Set(key, genres)
			return genres
		}
		log.Debug("discarding undecodable stored genre list", zap.Error(err))
	}

	genres := make(map[int]string)
	list, err := m.tmdb.MovieGenres(ctx)
	if err != nil {
		log.Warn("failed to load genres, genre filtering disabled", zap.Error(err))
		m.genreCache.Set(key, genres)
		return genres
	}

	for _, g := range list.Genres {
		genres[g.ID] = g.Name
	}

	m.genreCache.Set(key, genres)
	m.storePut(ctx, key, genres)
	return genres
}

// Catalog builds the filter catalog from the loaded genres.
func (m *Manager) Catalog(ctx context.Context) Catalog {
	return NewCatalog(m.Genres(ctx))
}

// ResolvePerson resolves a free-text name to a person id for the given role.
// Resolutions are memoized in the session state by (role, name), including
// misses, and process-wide by name. An empty name clears the session entry.
// Failures resolve to nil: the person filter is simply not applied.
func (m *Manager) ResolvePerson(ctx context.Context, name string, role session.Role, st session.State) (*int, session.State) {
	if name == "" {
		return nil, st.ClearPerson(role)
	}

	if id, ok := st.CachedPerson(role, name); ok {
		return id, st
	}

	id := m.searchPerson(ctx, name)
	return id, st.WithPersonResult(role, name, id)
}

func (m *Manager) searchPerson(ctx context.Context, name string) *int {
	key := "tmdb:person:" + name

	if id, ok := m.personCache.Get(key); ok {
		return id
	}

	log := logger.FromCtx(ctx)

	if body, err := m.storeGet(ctx, key); err == nil {
		var id *int
		if err := json.Unmarshal(body, &id); err == nil {
			m.personCache.Set(key, id)
			return id
		}
	}

	var id *int
	res, err := m.tmdb.SearchPerson(ctx, name)
	switch {
	case err != nil:
		log.Warn("person search failed", zap.String("name", name), zap.Error(err))
	case len(res.Results) == 0:
		log.Debug("person search returned no results", zap.String("name", name))
	default:
		// first-ranked result by the API's own ordering is authoritative
		id = &res.Results[0].ID
	}

	m.personCache.Set(key, id)
	m.storePut(ctx, key, id)
	return id
}

// Discover runs one page of filtered discovery. Person filters are resolved
// through the session state; when both an actor and a director resolve, the
// actor filter wins and the director filter is dropped with a notice.
func (m *Manager) Discover(ctx context.Context, f Filters, st session.State, page int) (Result, session.State) {
	params := BuildQuery(f, m.Catalog(ctx))

	var notices []string

	actorID, st := m.ResolvePerson(ctx, f.Actor, session.RoleActor, st)
	if f.Actor != "" && actorID == nil {
		notices = append(notices, fmt.Sprintf("Actor %q not found.", f.Actor))
	}

	directorID, st := m.ResolvePerson(ctx, f.Director, session.RoleDirector, st)
	if f.Director != "" && directorID == nil {
		notices = append(notices, fmt.Sprintf("Director %q not found.", f.Director))
	}

	switch {
	case actorID != nil && directorID != nil:
		params.Set("with_people", strconv.Itoa(*actorID))
		notices = append(notices, fmt.Sprintf("Showing results for actor %q. Director filter ignored as actor filter is active.", f.Actor))
	case actorID != nil:
		params.Set("with_people", strconv.Itoa(*actorID))
	case directorID != nil:
		params.Set("with_crew", strconv.Itoa(*directorID))
	}

	filtersApplied := params.Get("with_genres") != "" ||
		params.Get("with_people") != "" ||
		params.Get("with_crew") != "" ||
		params.Get("vote_average.gte") != "" ||
		params.Get("with_original_language") != ""

	if !filtersApplied {
		params.Set("sort_by", "popularity.desc")
	}

	resp, err := m.discover(ctx, params, page)
	if err != nil {
		logger.FromCtx(ctx).Warn("discovery failed", zap.Int("page", page), zap.Error(err))
		notices = append(notices, "Could not load movies right now. Try again in a moment.")
		return Result{FiltersApplied: filtersApplied, Notices: notices}, st
	}

	return Result{
		Movies:         resp.Results,
		TotalPages:     resp.TotalPages,
		FiltersApplied: filtersApplied,
		Notices:        notices,
	}, st
}

// Surprise ignores every filter except the year range and samples one random
// page from a pool of popular, highly rated movies. It returns the page that
// was sampled so the session can commit it.
func (m *Manager) Surprise(ctx context.Context, years YearRange) (Result, int) {
	log := logger.FromCtx(ctx)

	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	params.Set("vote_average.gte", strconv.FormatFloat(surpriseMinRating, 'f', 1, 64))
	params.Set("vote_count.gte", strconv.Itoa(surpriseMinVotes))
	params.Set("primary_release_date.gte", fmt.Sprintf("%d-01-01", years.From))
	params.Set("primary_release_date.lte", fmt.Sprintf("%d-12-31", years.To))

	probe, err := m.discover(ctx, params, 1)
	if err != nil {
		log.Warn("surprise probe failed", zap.Error(err))
		return Result{Notices: []string{"Could not load movies right now. Try again in a moment."}}, 1
	}

	maxPage := probe.TotalPages
	if maxPage > m.pageCap {
		maxPage = m.pageCap
	}
	if maxPage < 1 {
		maxPage = 1
	}

	page := 1
	if maxPage > 1 {
		page = 1 + m.randInt(maxPage)
	}

	resp, err := m.discover(ctx, params, page)
	if err != nil {
		log.Warn("surprise fetch failed", zap.Int("page", page), zap.Error(err))
		return Result{Notices: []string{"Could not load movies right now. Try again in a moment."}}, 1
	}

	return Result{
		Movies:     resp.Results,
		TotalPages: resp.TotalPages,
		Notices:    []string{fmt.Sprintf("Showing random page %d of %d highly-rated movies.", page, maxPage)},
	}, page
}

// Details fetches a movie by id, or nil when the movie cannot be loaded.
// Results, including misses, are memoized per id.
func (m *Manager) Details(ctx context.Context, id int) *tmdb.MovieDetail {
	if det, ok := m.detailCache.Get(id); ok {
		return det
	}

	log := logger.FromCtx(ctx)
	key := fmt.Sprintf("tmdb:movie:%d", id)

	if body, err := m.storeGet(ctx, key); err == nil {
		det := new(tmdb.MovieDetail)
		if err := json.Unmarshal(body, det); err == nil {
			m.detailCache.Set(id, det)
			return det
		}
	}

	det, err := m.tmdb.MovieDetails(ctx, id)
	if err != nil {
		log.Warn("failed to fetch movie details", zap.Int("id", id), zap.Error(err))
		m.detailCache.Set(id, nil)
		return nil
	}

	m.detailCache.Set(id, det)
	m.storePut(ctx, key, det)
	return det
}

// discover memoizes raw discover calls by their full parameter set and page.
// Discover pages only live in memory; they are too volatile to persist.
func (m *Manager) discover(ctx context.Context, params url.Values, page int) (*tmdb.DiscoverResponse, error) {
	key := fmt.Sprintf("tmdb:discover:%s&page=%d", params.Encode(), page)

	if resp, ok := m.discoverCache.Get(key); ok {
		return resp, nil
	}

	resp, err := m.tmdb.DiscoverMovies(ctx, params, page)
	if err != nil {
		return nil, err
	}

	m.discoverCache.Set(key, resp)
	return resp, nil
}

func (m *Manager) storeGet(ctx context.Context, key string) ([]byte, error) {
	if m.store == nil {
		return nil, storage.ErrNotFound
	}
	return m.store.Get(ctx, key)
}

func (m *Manager) storePut(ctx context.Context, key string, value any) {
	if m.store == nil {
		return
	}

	body, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := m.store.Put(ctx, key, body); err != nil {
		logger.FromCtx(ctx).Debug("failed to persist response", zap.String("key", key), zap.Error(err))
	}
}
