// Package plan defines the fixed 12-week training program: one day plan per
// weekday slot, each an ordered list of tagged exercise variants. The default
// program ships embedded in the binary; it is decoded once at startup and
// read-only afterwards.
package plan

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind selects which progression rules apply to an exercise. An exercise's
// kind is an explicit tag, never inferred from which fields happen to be set.
type Kind string

const (
	// KindDescriptive is free-text guidance with no progression.
	KindDescriptive Kind = "descriptive"
	// KindLoaded is a barbell/dumbbell lift with weekly load progression.
	KindLoaded Kind = "loaded"
	// KindBodyweight is fixed sets and reps at bodyweight.
	KindBodyweight Kind = "bodyweight"
	// KindTreadmillIntervals is timed intervals with weekly pace progression.
	KindTreadmillIntervals Kind = "treadmill_intervals"
	// KindSprintIntervals is fixed-distance sprints at a stated effort.
	KindSprintIntervals Kind = "sprint_intervals"
	// KindPoolIntervals is swim repeats whose rest shrinks every two weeks.
	KindPoolIntervals Kind = "pool_intervals"
	// KindDuration is steady cardio with weekly duration progression.
	KindDuration Kind = "duration"
	// KindTimedHold is isometric holds with weekly duration progression.
	KindTimedHold Kind = "timed_hold"
)

// Exercise is one entry in a day plan. Kind decides which of the optional
// fields are meaningful; the rest stay zero. Unknown kinds are tolerated and
// fall through to a name-only prescription rather than failing the load.
type Exercise struct {
	Kind Kind   `yaml:"kind" json:"kind"`
	Name string `yaml:"name" json:"name"`

	// descriptive (also the effort note for sprint intervals)
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// loaded, bodyweight, timed_hold
	Sets int `yaml:"sets,omitempty" json:"sets,omitempty"`
	Reps int `yaml:"reps,omitempty" json:"reps,omitempty"`

	// loaded
	BaseLoad      float64 `yaml:"base_load,omitempty" json:"base_load,omitempty"`
	LoadIncrement float64 `yaml:"load_increment,omitempty" json:"load_increment,omitempty"`

	// treadmill_intervals, sprint_intervals, pool_intervals
	Intervals    int     `yaml:"intervals,omitempty" json:"intervals,omitempty"`
	BaseMPH      float64 `yaml:"base_mph,omitempty" json:"base_mph,omitempty"`
	MPHIncrement float64 `yaml:"mph_increment,omitempty" json:"mph_increment,omitempty"`

	// pool_intervals
	BaseRestSec      int `yaml:"base_rest_sec,omitempty" json:"base_rest_sec,omitempty"`
	RestDecrementSec int `yaml:"rest_decrement_sec,omitempty" json:"rest_decrement_sec,omitempty"`

	// duration
	BaseMinutes      float64 `yaml:"base_minutes,omitempty" json:"base_minutes,omitempty"`
	MinutesIncrement float64 `yaml:"minutes_increment,omitempty" json:"minutes_increment,omitempty"`

	// timed_hold
	BaseHoldSec      float64 `yaml:"base_hold_sec,omitempty" json:"base_hold_sec,omitempty"`
	HoldIncrementSec float64 `yaml:"hold_increment_sec,omitempty" json:"hold_increment_sec,omitempty"`
}

// Day is one weekday's plan: a title and an ordered list of exercises.
type Day struct {
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

// Program maps weekday slots 0-6 to day plans. Slot 0 is the weekday the
// program starts on (Sunday in the built-in program).
type Program struct {
	days [7]Day
}

// Day returns the plan for the given weekday slot (0-6).
func (p *Program) Day(weekday int) Day {
	return p.days[weekday%7]
}

// Days returns all seven day plans in weekday order.
func (p *Program) Days() []Day {
	out := make([]Day, 7)
	copy(out, p.days[:])
	return out
}

//go:embed program.yaml
var programYAML []byte

// Default returns the built-in 12-week program.
func Default() (*Program, error) {
	return Parse(programYAML)
}

type programFile struct {
	Days []dayFile `yaml:"days"`
}

type dayFile struct {
	Weekday   *int       `yaml:"weekday"`
	Title     string     `yaml:"title"`
	Exercises []Exercise `yaml:"exercises"`
}

// Parse decodes and validates a YAML program document. Every weekday 0-6
// must appear exactly once and every exercise must satisfy its variant's
// field requirements.
func Parse(data []byte) (*Program, error) {
	var pf programFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing program: %w", err)
	}

	var p Program
	seen := [7]bool{}
	for _, df := range pf.Days {
		if df.Weekday == nil {
			return nil, fmt.Errorf("day %q: weekday is required", df.Title)
		}
		wd := *df.Weekday
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("day %q: weekday %d out of range 0-6", df.Title, wd)
		}
		if seen[wd] {
			return nil, fmt.Errorf("weekday %d defined twice", wd)
		}
		if df.Title == "" {
			return nil, fmt.Errorf("weekday %d: title is required", wd)
		}
		for i, ex := range df.Exercises {
			if err := ex.validate(); err != nil {
				return nil, fmt.Errorf("weekday %d exercise %d: %w", wd, i, err)
			}
		}
		seen[wd] = true
		p.days[wd] = Day{Title: df.Title, Exercises: df.Exercises}
	}

	for wd, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("weekday %d is missing", wd)
		}
	}
	return &p, nil
}

func (e Exercise) validate() error {
	if e.Name == "" {
		return fmt.Errorf("name is required")
	}
	switch e.Kind {
	case KindDescriptive:
		if e.Description == "" {
			return fmt.Errorf("%s: description is required", e.Name)
		}
	case KindLoaded:
		if e.Sets < 1 || e.Reps < 1 {
			return fmt.Errorf("%s: sets and reps must be positive", e.Name)
		}
		if e.BaseLoad < 0 || e.LoadIncrement < 0 {
			return fmt.Errorf("%s: load values must be non-negative", e.Name)
		}
	case KindBodyweight:
		if e.Sets < 1 || e.Reps < 1 {
			return fmt.Errorf("%s: sets and reps must be positive", e.Name)
		}
	case KindTreadmillIntervals:
		if e.Intervals < 1 {
			return fmt.Errorf("%s: intervals must be positive", e.Name)
		}
		if e.BaseMPH < 0 || e.MPHIncrement < 0 {
			return fmt.Errorf("%s: pace values must be non-negative", e.Name)
		}
	case KindSprintIntervals:
		if e.Intervals < 1 {
			return fmt.Errorf("%s: intervals must be positive", e.Name)
		}
	case KindPoolIntervals:
		if e.Intervals < 1 {
			return fmt.Errorf("%s: intervals must be positive", e.Name)
		}
		if e.BaseRestSec < 0 || e.RestDecrementSec < 0 {
			return fmt.Errorf("%s: rest values must be non-negative", e.Name)
		}
	case KindDuration:
		if e.BaseMinutes < 0 || e.MinutesIncrement < 0 {
			return fmt.Errorf("%s: duration values must be non-negative", e.Name)
		}
	case KindTimedHold:
		if e.Sets < 1 {
			return fmt.Errorf("%s: sets must be positive", e.Name)
		}
		if e.BaseHoldSec < 0 || e.HoldIncrementSec < 0 {
			return fmt.Errorf("%s: hold values must be non-negative", e.Name)
		}
	default:
		// Unknown kinds render as their name only; not a load error.
	}
	return nil
}
