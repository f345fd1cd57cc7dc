// Package session tracks per-session discovery state: the current result
// page, the selected movie, memoized person lookups and the surprise flow
// flags. Transitions are pure functions from one State to the next so they
// can be unit tested deterministically; nothing here touches the network.
package session

import (
	"github.com/cinescope/cinescope/pkg/cache"
	"github.com/cinescope/cinescope/pkg/machine"
)

// View is the visible top-level state of a session.
type View string

const (
	// ViewGrid shows the movie grid and pagination controls.
	ViewGrid View = "Grid"
	// ViewDetail shows a single movie and suppresses the grid.
	ViewDetail View = "Detail"
)

// Role distinguishes the two person filters a session can memoize.
type Role string

const (
	RoleActor    Role = "actor"
	RoleDirector Role = "director"
)

// personLookup memoizes one name resolution, including a negative result.
type personLookup struct {
	// Name is the cache key: the exact name that was last searched.
	Name string
	// ID is nil when the search found nobody.
	ID *int
}

// State holds everything a session remembers between renders. The zero value
// is not valid; use NewState.
type State struct {
	Page              int
	SelectedMovieID   *int
	SurpriseMode      bool
	SurpriseJustShown bool

	lookups map[Role]personLookup
}

// NewState returns the initial session state: grid view, page one, nothing
// selected and no memoized lookups.
func NewState() State {
	return State{Page: 1}
}

// View derives the visible state: a selected movie implies the detail view.
func (s State) View() View {
	if s.SelectedMovieID != nil {
		return ViewDetail
	}
	return ViewGrid
}

func (s State) viewMachine() *machine.StateMachine[View] {
	return machine.New(s.View(),
		machine.From(ViewGrid).To(ViewDetail, ViewGrid),
		machine.From(ViewDetail).To(ViewGrid),
	)
}

// SelectMovie transitions Grid -> Detail. Selecting while already in the
// detail view is a no-op.
func (s State) SelectMovie(id int) State {
	if err := s.viewMachine().ToState(ViewDetail); err != nil {
		return s
	}

	s.SelectedMovieID = &id
	s.SurpriseJustShown = false
	return s
}

// Back transitions Detail -> Grid, clearing the selection.
func (s State) Back() State {
	if err := s.viewMachine().ToState(ViewGrid); err != nil {
		return s
	}

	s.SelectedMovieID = nil
	return s
}

// NextPage advances the page. No upper bound is enforced here; the
// presentation layer disables the control at the display cap.
func (s State) NextPage() State {
	if s.View() != ViewGrid {
		return s
	}

	s.Page++
	s.SurpriseJustShown = false
	return s
}

// PreviousPage goes back one page, or does nothing on page one.
func (s State) PreviousPage() State {
	if s.View() != ViewGrid || s.Page <= 1 {
		return s
	}

	s.Page--
	s.SurpriseJustShown = false
	return s
}

// TriggerSurprise arms surprise mode. The fetch happens on the next render,
// which commits the randomly chosen page via CommitSurprise.
func (s State) TriggerSurprise() State {
	s.SurpriseMode = true
	s.Page = 1
	s.SelectedMovieID = nil
	s.SurpriseJustShown = false
	return s
}

// CommitSurprise records the page the surprise fetch landed on and disarms
// surprise mode.
func (s State) CommitSurprise(page int) State {
	s.Page = page
	s.SurpriseMode = false
	s.SurpriseJustShown = true
	return s
}

// CachedPerson returns the memoized resolution for (role, name). The second
// return reports whether a resolution for exactly that name is cached; a
// cached nil id means the name is known to not match anyone.
func (s State) CachedPerson(role Role, name string) (*int, bool) {
	lookup, ok := s.lookups[role]
	if !ok || name == "" || lookup.Name != name {
		return nil, false
	}
	return lookup.ID, true
}

// WithPersonResult memoizes a resolution for (role, name), including a nil id
// for a known miss.
func (s State) WithPersonResult(role Role, name string, id *int) State {
	lookups := make(map[Role]personLookup, len(s.lookups)+1)
	for r, l := range s.lookups {
		lookups[r] = l
	}
	lookups[role] = personLookup{Name: name, ID: id}
	s.lookups = lookups
	return s
}

// ClearPerson drops the memoized resolution for the role.
func (s State) ClearPerson(role Role) State {
	if _, ok := s.lookups[role]; !ok {
		return s
	}

	lookups := make(map[Role]personLookup, len(s.lookups))
	for r, l := range s.lookups {
		if r != role {
			lookups[r] = l
		}
	}
	s.lookups = lookups
	return s
}

// Store keeps session state per session id for the lifetime of the process.
// Sessions are isolated; each id owns its own State.
type Store struct {
	sessions *cache.Cache[string, State]
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: cache.New[string, State](),
	}
}

// Get returns the state for the session id, or a fresh initial state.
func (st *Store) Get(id string) State {
	if s, ok := st.sessions.Get(id); ok {
		return s
	}
	return NewState()
}

// Save stores the state for the session id.
func (st *Store) Save(id string, s State) {
	st.sessions.Set(id, s)
}
