package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kmorrow/liftday/internal/report"
	"github.com/kmorrow/liftday/internal/schedule"
)

// requestDate returns the date query parameter, defaulting to today.
func (s *Server) requestDate(r *http.Request) (time.Time, error) {
	q := r.URL.Query().Get("date")
	if q == "" {
		return s.now(), nil
	}
	return schedule.ParseDate(q)
}

func (s *Server) handleWorkout(w http.ResponseWriter, r *http.Request) {
	date, err := s.requestDate(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date, use YYYY-MM-DD"})
		return
	}
	writeJSON(w, http.StatusOK, report.Build(s.program, s.sched, s.engine, date))
}

func (s *Server) handleWorkoutText(w http.ResponseWriter, r *http.Request) {
	date, err := s.requestDate(r)
	if err != nil {
		http.Error(w, "invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	day := report.Build(s.program, s.sched, s.engine, date)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(day.Text()))
}

func (s *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.Overview(s.program))
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"start":        s.sched.Start.Format(schedule.DateLayout),
		"weeks":        s.sched.Weeks,
		"days":         s.sched.Days(),
		"deload_weeks": s.engine.DeloadWeeks,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
