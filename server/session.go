package server

import (
	"net/http"
	"strconv"

	"github.com/cinescope/cinescope/pkg/logger"
	"github.com/cinescope/cinescope/pkg/session"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SessionView is the session snapshot returned by every transition endpoint.
type SessionView struct {
	View            string `json:"view"`
	Page            int    `json:"page"`
	SelectedMovieID *int   `json:"selectedMovieId,omitempty"`
	SurpriseMode    bool   `json:"surpriseMode"`
}

func sessionView(s session.State) SessionView {
	return SessionView{
		View:            string(s.View()),
		Page:            s.Page,
		SelectedMovieID: s.SelectedMovieID,
		SurpriseMode:    s.SurpriseMode,
	}
}

// transition applies one state transition to the request's session and writes
// the resulting snapshot. Invalid transitions are no-ops, not errors; the
// snapshot tells the client what actually happened.
func (s Server) transition(apply func(session.State) session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromCtx(ctx)

		id := sessionID(ctx)
		state := apply(s.sessions.Get(id))
		s.sessions.Save(id, state)

		err := writeResponse(w, http.StatusOK, GenericResponse{Response: sessionView(state)})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// SelectMovie moves the session to the detail view for the given movie
func (s Server) SelectMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.Error(w, "invalid movie id", http.StatusBadRequest)
			return
		}

		s.transition(func(st session.State) session.State {
			return st.SelectMovie(id)
		})(w, r)
	}
}

// Back returns the session from the detail view to the grid
func (s Server) Back() http.HandlerFunc {
	return s.transition(session.State.Back)
}

// NextPage advances the session one page
func (s Server) NextPage() http.HandlerFunc {
	return s.transition(session.State.NextPage)
}

// PreviousPage moves the session back one page
func (s Server) PreviousPage() http.HandlerFunc {
	return s.transition(session.State.PreviousPage)
}

// Surprise arms surprise mode; the next grid render fetches the random page
func (s Server) Surprise() http.HandlerFunc {
	return s.transition(session.State.TriggerSurprise)
}
