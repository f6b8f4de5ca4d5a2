package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kmorrow/liftday/internal/plan"
	"github.com/kmorrow/liftday/internal/progression"
	"github.com/kmorrow/liftday/internal/report"
	"github.com/kmorrow/liftday/internal/schedule"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	program, err := plan.Default()
	if err != nil {
		t.Fatalf("loading built-in program: %v", err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(program, schedule.Default(), progression.Default(), log)
	// Pin "today" to the first program Monday so date-less requests are
	// deterministic.
	s.now = func() time.Time {
		return time.Date(2024, time.December, 30, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestHandleWorkout verifies the JSON workout endpoint for an explicit
// in-window date.
func TestHandleWorkout(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/api/v1/workout?date=2025-02-03")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var day report.Day
	if err := json.NewDecoder(rec.Body).Decode(&day); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if day.Status != "active" || day.Week != 6 || !day.Deload {
		t.Errorf("day = status %q week %d deload %v, want active week 6 deload", day.Status, day.Week, day.Deload)
	}
	if len(day.Exercises) != 6 {
		t.Fatalf("len(exercises) = %d, want 6", len(day.Exercises))
	}
	if day.Exercises[0].Rendered != "- Snatch: 3x3 @ 101 lbs" {
		t.Errorf("rendered = %q", day.Exercises[0].Rendered)
	}
}

// TestHandleWorkoutDefaultsToToday verifies a date-less request uses the
// server clock.
func TestHandleWorkoutDefaultsToToday(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/api/v1/workout")

	var day report.Day
	if err := json.NewDecoder(rec.Body).Decode(&day); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if day.Date != "2024-12-30" || day.Week != 1 {
		t.Errorf("day = %q week %d, want 2024-12-30 week 1", day.Date, day.Week)
	}
}

// TestHandleWorkoutBadDate verifies malformed dates are rejected with 400.
func TestHandleWorkoutBadDate(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/api/v1/workout?date=2024/12/29")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestHandleWorkoutOutOfWindow verifies out-of-window dates report a status,
// not an error.
func TestHandleWorkoutOutOfWindow(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/api/v1/workout?date=2024-12-28")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var day report.Day
	if err := json.NewDecoder(rec.Body).Decode(&day); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if day.Status != "before_start" || day.Message == "" {
		t.Errorf("day = status %q message %q", day.Status, day.Message)
	}

	rec = get(t, s, "/api/v1/workout?date=2025-03-23")
	if err := json.NewDecoder(rec.Body).Decode(&day); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if day.Status != "completed" {
		t.Errorf("status = %q, want %q", day.Status, "completed")
	}
}

// TestHandleWorkoutText verifies the text endpoint matches the CLI printout.
func TestHandleWorkoutText(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/api/v1/workout/text?date=2024-12-30")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content-type = %q, want text/plain", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"--- DAILY WORKOUT ---",
		"Week: 1  |  Day: Monday",
		"- Snatch: 4x3 @ 100 lbs",
		"Enjoy your training!",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

// TestHandleProgram verifies the program overview lists all seven weekdays.
func TestHandleProgram(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/api/v1/program")

	var days []report.DayOverview
	if err := json.NewDecoder(rec.Body).Decode(&days); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("len = %d, want 7", len(days))
	}
	if days[0].Title != "Sunday (Recovery or Light Cardio)" {
		t.Errorf("days[0].Title = %q", days[0].Title)
	}
}

// TestHandleSchedule verifies the schedule endpoint reports the cycle
// anchors.
func TestHandleSchedule(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/api/v1/schedule")

	var body struct {
		Start       string `json:"start"`
		Weeks       int    `json:"weeks"`
		Days        int    `json:"days"`
		DeloadWeeks []int  `json:"deload_weeks"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Start != "2024-12-29" || body.Weeks != 12 || body.Days != 84 {
		t.Errorf("schedule = %+v", body)
	}
	if len(body.DeloadWeeks) != 2 || body.DeloadWeeks[0] != 6 || body.DeloadWeeks[1] != 10 {
		t.Errorf("deload_weeks = %v, want [6 10]", body.DeloadWeeks)
	}
}

// TestHandleHealth verifies the health endpoint.
func TestHandleHealth(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
