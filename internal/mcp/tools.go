package mcp

import (
	"context"
	"time"

	"github.com/kmorrow/liftday/internal/report"
	"github.com/kmorrow/liftday/internal/schedule"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Get the prescribed workout for a date of the 12-week cycle. Returns structured per-exercise prescriptions (sets, reps, load, intervals, pace, rest, duration) with deload-week adjustments applied, plus rendered text lines."),
	mcp.WithString("date", mcp.Description("Calendar date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Get the week-1 baseline program: every weekday's exercises with their base values and weekly increments."),
)

var toolGetSchedule = mcp.NewTool("get_schedule",
	mcp.WithDescription("Get the program calendar: start date, length in weeks, and which weeks are deloads."),
)

// --- Tool handlers ---

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := time.Now()
	if s := req.GetString("date", ""); s != "" {
		var err error
		date, err = schedule.ParseDate(s)
		if err != nil {
			h.log.Warn("mcp get_workout: bad date", "date", s)
			return mcp.NewToolResultError("invalid date, use YYYY-MM-DD"), nil
		}
	}

	day := report.Build(h.program, h.sched, h.engine, date)
	result, err := mcp.NewToolResultJSON(day)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(report.Overview(h.program))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSchedule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(map[string]any{
		"start":        h.sched.Start.Format(schedule.DateLayout),
		"weeks":        h.sched.Weeks,
		"days":         h.sched.Days(),
		"deload_weeks": h.engine.DeloadWeeks,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
