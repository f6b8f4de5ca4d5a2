// Package progression computes the concrete prescription for an exercise on
// a given program week: linear weekly progression plus the reduced volume and
// intensity of deload weeks. Every computation is a pure function of the
// week, the exercise, and an explicit Config.
package progression

import (
	"math"

	"github.com/kmorrow/liftday/internal/plan"
)

// Config holds the cycle parameters. It is passed in explicitly so tests can
// run alternate schedules; callers normally start from Default.
type Config struct {
	// DeloadWeeks are the 1-indexed weeks with reduced volume and intensity.
	DeloadWeeks []int
	// LoadFactor scales loads and hold durations on deload weeks.
	LoadFactor float64
	// DurationFactor scales steady-cardio minutes on deload weeks.
	DurationFactor float64
	// RestFloorSec is the minimum rest between pool intervals.
	RestFloorSec int
}

// Default returns the standard cycle: deloads on weeks 6 and 10, 90% loads
// and 80% cardio minutes on deload, 5s rest floor.
func Default() Config {
	return Config{
		DeloadWeeks:    []int{6, 10},
		LoadFactor:     0.9,
		DurationFactor: 0.8,
		RestFloorSec:   5,
	}
}

// IsDeload reports whether the given week is a deload week.
func (c Config) IsDeload(week int) bool {
	for _, w := range c.DeloadWeeks {
		if w == week {
			return true
		}
	}
	return false
}

// Prescription is the computed result for one exercise on one week. Only the
// fields for its Kind are set; rendering is left to the presentation layer.
type Prescription struct {
	Kind plan.Kind `json:"kind"`
	Name string    `json:"name"`
	Note string    `json:"note,omitempty"`

	Sets    int `json:"sets,omitempty"`
	Reps    int `json:"reps,omitempty"`
	LoadLbs int `json:"load_lbs,omitempty"`

	Intervals int `json:"intervals,omitempty"`
	MPH       int `json:"mph,omitempty"`
	RestSec   int `json:"rest_sec,omitempty"`

	Minutes int `json:"minutes,omitempty"`
	HoldSec int `json:"hold_sec,omitempty"`
}

// Prescribe computes the prescription for one exercise on the given week
// (1-indexed). Exercises of unknown kind produce a name-only prescription.
func (c Config) Prescribe(week int, ex plan.Exercise) Prescription {
	if week < 1 {
		week = 1
	}
	deload := c.IsDeload(week)
	p := Prescription{Kind: ex.Kind, Name: ex.Name}

	switch ex.Kind {
	case plan.KindDescriptive:
		p.Note = ex.Description

	case plan.KindLoaded:
		load := ex.BaseLoad + float64(week-1)*ex.LoadIncrement
		if deload {
			load *= c.LoadFactor
		}
		p.LoadLbs = round(load)
		p.Sets = c.sets(deload, ex.Sets)
		p.Reps = ex.Reps

	case plan.KindBodyweight:
		p.Sets = c.sets(deload, ex.Sets)
		p.Reps = ex.Reps

	case plan.KindTreadmillIntervals:
		// Deload trims interval count only; pace keeps progressing.
		p.Intervals = c.intervals(deload, ex.Intervals)
		p.MPH = round(ex.BaseMPH + float64(week-1)*ex.MPHIncrement)

	case plan.KindSprintIntervals:
		p.Intervals = c.intervals(deload, ex.Intervals)
		p.Note = ex.Description

	case plan.KindPoolIntervals:
		p.Intervals = c.intervals(deload, ex.Intervals)
		rest := ex.BaseRestSec - ex.RestDecrementSec*((week-1)/2)
		if rest < c.RestFloorSec {
			rest = c.RestFloorSec
		}
		p.RestSec = rest

	case plan.KindDuration:
		minutes := ex.BaseMinutes + float64(week-1)*ex.MinutesIncrement
		if deload {
			minutes *= c.DurationFactor
		}
		p.Minutes = max(0, round(minutes))

	case plan.KindTimedHold:
		hold := ex.BaseHoldSec + float64(week-1)*ex.HoldIncrementSec
		if deload {
			hold *= c.LoadFactor
		}
		p.HoldSec = round(hold)
		p.Sets = c.sets(deload, ex.Sets)

	default:
		// Unrecognized configuration entries keep their name and nothing
		// else; the renderer emits just the name.
	}
	return p
}

// PrescribeDay computes prescriptions for every exercise of a day plan.
func (c Config) PrescribeDay(week int, day plan.Day) []Prescription {
	out := make([]Prescription, 0, len(day.Exercises))
	for _, ex := range day.Exercises {
		out = append(out, c.Prescribe(week, ex))
	}
	return out
}

// sets applies the deload set-count mapping: 4->3, 5->4, 6->4, others pass
// through unchanged.
func (c Config) sets(deload bool, base int) int {
	if !deload {
		return base
	}
	switch base {
	case 4:
		return 3
	case 5, 6:
		return 4
	}
	return base
}

// intervals applies the deload interval-count mapping: counts of 5 or more
// drop to 4.
func (c Config) intervals(deload bool, base int) int {
	if deload && base >= 5 {
		return 4
	}
	return base
}

// round rounds to the nearest integer, ties away from zero.
func round(v float64) int {
	return int(math.Round(v))
}
