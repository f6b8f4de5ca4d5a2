// Package server exposes the daily workout computation as a read-only HTTP
// API.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kmorrow/liftday/internal/plan"
	"github.com/kmorrow/liftday/internal/progression"
	"github.com/kmorrow/liftday/internal/schedule"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	program *plan.Program
	sched   schedule.Schedule
	engine  progression.Config
	log     *slog.Logger
	router  chi.Router

	// now is swapped out in tests.
	now func() time.Time
}

// New creates a new Server with all routes configured.
func New(program *plan.Program, sched schedule.Schedule, engine progression.Config, log *slog.Logger) *Server {
	s := &Server{
		program: program,
		sched:   sched,
		engine:  engine,
		log:     log,
		router:  chi.NewRouter(),
		now:     time.Now,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/workout", s.handleWorkout)
	s.router.Get("/api/v1/workout/text", s.handleWorkoutText)
	s.router.Get("/api/v1/program", s.handleProgram)
	s.router.Get("/api/v1/schedule", s.handleSchedule)
	s.router.Get("/healthz", s.handleHealth)
}
