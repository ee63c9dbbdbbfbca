// ABOUTME: HTTP API over a shared Session, routed with gorilla/mux.
// ABOUTME: Wraps the router in CORS and request logging and shuts down with its context.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/rs/cors"
)

// Server serves the JSON API.
type Server struct {
	session *session.Session
	log     *log.Logger
	router  *mux.Router
}

// NewServer creates the API server and registers its routes.
func NewServer(sess *session.Session, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		session: sess,
		log:     logger.WithPrefix("http"),
		router:  mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router.PathPrefix("/api").Subrouter()

	r.HandleFunc("/dashboard", s.getDashboard).Methods("GET")
	r.HandleFunc("/exercises", s.listExercises).Methods("GET")
	r.HandleFunc("/exercises", s.createExercise).Methods("POST")
	r.HandleFunc("/meals", s.listMeals).Methods("GET")
	r.HandleFunc("/meals", s.createMeal).Methods("POST")
	r.HandleFunc("/water", s.addWater).Methods("POST")
	r.HandleFunc("/calendar/{year:[0-9]{4}}/{month:[0-9]{1,2}}", s.getCalendar).Methods("GET")
	r.HandleFunc("/days/{date}", s.getDay).Methods("GET")
	r.HandleFunc("/chart/weekly", s.getWeeklyChart).Methods("GET")
	r.HandleFunc("/settings", s.getSettings).Methods("GET")
	r.HandleFunc("/settings/restore", s.restoreSettings).Methods("POST")
	r.HandleFunc("/settings/save", s.saveSettings).Methods("POST")
	r.HandleFunc("/settings/{key}", s.changeSetting).Methods("PUT")
	r.HandleFunc("/navigation", s.getNavigation).Methods("GET")
	r.HandleFunc("/navigation/{view}", s.navigate).Methods("PUT")
	r.HandleFunc("/reset", s.reset).Methods("POST")
	r.HandleFunc("/backup", s.backup).Methods("POST")
	r.HandleFunc("/export", s.export).Methods("GET")
	r.HandleFunc("/import", s.importData).Methods("POST")
}

// Handler returns the router wrapped in CORS and request logging.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(s.logging(s.router))
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
