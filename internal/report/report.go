// Package report assembles a date's full workout report from the program
// table, the schedule, and the progression engine. The CLI, the HTTP API,
// and the MCP server all serve the same report.
package report

import (
	"fmt"
	"time"

	"github.com/kmorrow/liftday/internal/plan"
	"github.com/kmorrow/liftday/internal/progression"
	"github.com/kmorrow/liftday/internal/render"
	"github.com/kmorrow/liftday/internal/schedule"
)

// Exercise is one prescribed exercise plus its fixed-text rendering.
type Exercise struct {
	progression.Prescription
	Rendered string `json:"rendered"`
}

// Day is a date resolved into its workout, or into an out-of-window notice.
// Week, Weekday, Title, Deload and Exercises are only set when Status is
// "active"; Message is only set otherwise.
type Day struct {
	Date      string     `json:"date"`
	Status    string     `json:"status"`
	Message   string     `json:"message,omitempty"`
	Week      int        `json:"week,omitempty"`
	Weekday   int        `json:"weekday"`
	Title     string     `json:"day,omitempty"`
	Deload    bool       `json:"deload"`
	Exercises []Exercise `json:"exercises,omitempty"`

	date time.Time
}

// Build computes the report for one date.
func Build(program *plan.Program, sched schedule.Schedule, engine progression.Config, date time.Time) Day {
	d := Day{Date: date.Format(schedule.DateLayout), date: date}

	pos, status := sched.Resolve(date)
	d.Status = status.String()
	switch status {
	case schedule.BeforeStart:
		d.Message = fmt.Sprintf("Program starts on %s. Today is too early.",
			sched.Start.Format(schedule.DateLayout))
		return d
	case schedule.Completed:
		d.Message = fmt.Sprintf("The %d-week program has been completed.", sched.Weeks)
		return d
	}

	day := program.Day(pos.Weekday)
	d.Week = pos.Week
	d.Weekday = pos.Weekday
	d.Title = day.Title
	d.Deload = engine.IsDeload(pos.Week)
	for _, p := range engine.PrescribeDay(pos.Week, day) {
		d.Exercises = append(d.Exercises, Exercise{Prescription: p, Rendered: render.Line(p)})
	}
	return d
}

// Text renders the report as the CLI printout. Out-of-window dates render as
// their one-line notice.
func (d Day) Text() string {
	if d.Message != "" {
		return d.Message + "\n"
	}
	prescriptions := make([]progression.Prescription, len(d.Exercises))
	for i, ex := range d.Exercises {
		prescriptions[i] = ex.Prescription
	}
	return render.Day(d.date, d.Week, d.Title, prescriptions)
}

// DayOverview is one weekday's baseline plan, for the program listing.
type DayOverview struct {
	Weekday   int             `json:"weekday"`
	Title     string          `json:"title"`
	Exercises []plan.Exercise `json:"exercises"`
}

// Overview lists the week-1 baseline plan for all seven weekdays.
func Overview(program *plan.Program) []DayOverview {
	days := program.Days()
	out := make([]DayOverview, len(days))
	for wd, day := range days {
		out[wd] = DayOverview{Weekday: wd, Title: day.Title, Exercises: day.Exercises}
	}
	return out
}
