// Package render formats prescriptions as the fixed plain-text workout
// printout. The templates are stable output contracts; anything structured
// should use the JSON API instead.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/kmorrow/liftday/internal/plan"
	"github.com/kmorrow/liftday/internal/progression"
	"github.com/kmorrow/liftday/internal/schedule"
)

const rule = "----------------------------------------"

// Line formats a single prescription.
func Line(p progression.Prescription) string {
	switch p.Kind {
	case plan.KindDescriptive:
		return fmt.Sprintf("- %s: %s", p.Name, p.Note)
	case plan.KindLoaded:
		return fmt.Sprintf("- %s: %dx%d @ %d lbs", p.Name, p.Sets, p.Reps, p.LoadLbs)
	case plan.KindBodyweight:
		return fmt.Sprintf("- %s: %dx%d, Bodyweight", p.Name, p.Sets, p.Reps)
	case plan.KindTreadmillIntervals:
		return fmt.Sprintf("- %s: %d x 1 min @ %d mph (1 min rest)", p.Name, p.Intervals, p.MPH)
	case plan.KindSprintIntervals:
		return fmt.Sprintf("- %s: %dx100m %s", p.Name, p.Intervals, p.Note)
	case plan.KindPoolIntervals:
		return fmt.Sprintf("- %s: %dx25m (~%ds rest)", p.Name, p.Intervals, p.RestSec)
	case plan.KindDuration:
		return fmt.Sprintf("- %s: %d min", p.Name, p.Minutes)
	case plan.KindTimedHold:
		return fmt.Sprintf("- %s: %dx ~%ds", p.Name, p.Sets, p.HoldSec)
	}
	return "- " + p.Name
}

// Day formats a full day printout: header, one line per exercise, footer.
func Day(date time.Time, week int, title string, prescriptions []progression.Prescription) string {
	var b strings.Builder
	b.WriteString("\n--- DAILY WORKOUT ---\n")
	fmt.Fprintf(&b, "Date: %s\n", date.Format(schedule.DateLayout))
	fmt.Fprintf(&b, "Week: %d  |  Day: %s\n", week, title)
	b.WriteString(rule + "\n")
	for _, p := range prescriptions {
		b.WriteString(Line(p) + "\n")
	}
	b.WriteString(rule + "\n")
	b.WriteString("Enjoy your training!\n\n")
	return b.String()
}
