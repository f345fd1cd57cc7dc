package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/cinescope/cinescope/pkg/discovery"
	"github.com/cinescope/cinescope/pkg/session"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *error `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies for the discovery server to work such as loggers, the discovery manager, session state, etc.
type Server struct {
	baseLogger   *zap.SugaredLogger
	discovery    *discovery.Manager
	sessions     *session.Store
	imageBaseURL string
}

// New creates a new discovery server
func New(logger *zap.SugaredLogger, manager *discovery.Manager, sessions *session.Store, imageBaseURL string) Server {
	return Server{
		baseLogger:   logger,
		discovery:    manager,
		sessions:     sessions,
		imageBaseURL: imageBaseURL,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: &err,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.Use(s.SessionMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/filters", s.GetFilters()).Methods(http.MethodGet)
	v1.HandleFunc("/movies", s.ListMovies()).Methods(http.MethodGet)
	v1.HandleFunc("/movies/{id}", s.GetMovie()).Methods(http.MethodGet)

	v1.HandleFunc("/session/select/{id}", s.SelectMovie()).Methods(http.MethodPost)
	v1.HandleFunc("/session/back", s.Back()).Methods(http.MethodPost)
	v1.HandleFunc("/session/next", s.NextPage()).Methods(http.MethodPost)
	v1.HandleFunc("/session/previous", s.PreviousPage()).Methods(http.MethodPost)
	v1.HandleFunc("/session/surprise", s.Surprise()).Methods(http.MethodPost)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
