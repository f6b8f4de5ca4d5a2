package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/kmorrow/liftday/internal/plan"
	"github.com/kmorrow/liftday/internal/progression"
	"github.com/kmorrow/liftday/internal/report"
	"github.com/kmorrow/liftday/internal/schedule"
	"github.com/mark3labs/mcp-go/mcp"
)

func testHandlers(t *testing.T) *handlers {
	t.Helper()
	program, err := plan.Default()
	if err != nil {
		t.Fatalf("loading built-in program: %v", err)
	}
	return &handlers{
		program: program,
		sched:   schedule.Default(),
		engine:  progression.Default(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func callWith(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func textContent(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

// TestGetWorkoutTool verifies the get_workout tool returns the structured
// day report for an explicit date.
func TestGetWorkoutTool(t *testing.T) {
	h := testHandlers(t)
	res, err := h.getWorkout(context.Background(), callWith(map[string]any{"date": "2025-02-03"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", textContent(t, res))
	}

	var day report.Day
	if err := json.Unmarshal([]byte(textContent(t, res)), &day); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if day.Week != 6 || !day.Deload {
		t.Errorf("day = week %d deload %v, want week 6 deload", day.Week, day.Deload)
	}
}

// TestGetWorkoutToolBadDate verifies malformed dates produce a tool error,
// not a transport error.
func TestGetWorkoutToolBadDate(t *testing.T) {
	h := testHandlers(t)
	res, err := h.getWorkout(context.Background(), callWith(map[string]any{"date": "02/03/2025"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Error("expected tool error for malformed date")
	}
}

// TestGetProgramTool verifies the get_program tool lists all seven days.
func TestGetProgramTool(t *testing.T) {
	h := testHandlers(t)
	res, err := h.getProgram(context.Background(), callWith(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var days []report.DayOverview
	if err := json.Unmarshal([]byte(textContent(t, res)), &days); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(days) != 7 {
		t.Errorf("len = %d, want 7", len(days))
	}
}

// TestGetScheduleTool verifies the get_schedule tool reports the cycle
// anchors.
func TestGetScheduleTool(t *testing.T) {
	h := testHandlers(t)
	res, err := h.getSchedule(context.Background(), callWith(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body struct {
		Start       string `json:"start"`
		Weeks       int    `json:"weeks"`
		DeloadWeeks []int  `json:"deload_weeks"`
	}
	if err := json.Unmarshal([]byte(textContent(t, res)), &body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Start != "2024-12-29" || body.Weeks != 12 {
		t.Errorf("schedule = %+v", body)
	}
}

// TestProgramResource verifies the program resource serves JSON contents.
func TestProgramResource(t *testing.T) {
	h := testHandlers(t)
	req := mcp.ReadResourceRequest{}
	req.Params.URI = "liftday://program"

	contents, err := h.programOverview(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("len(contents) = %d, want 1", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents type = %T, want TextResourceContents", contents[0])
	}
	if tc.URI != "liftday://program" || tc.MIMEType != "application/json" {
		t.Errorf("contents = uri %q mime %q", tc.URI, tc.MIMEType)
	}
	var days []report.DayOverview
	if err := json.Unmarshal([]byte(tc.Text), &days); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(days) != 7 {
		t.Errorf("len = %d, want 7", len(days))
	}
}
