// Package mcp exposes the daily workout computation to MCP clients as tools
// and resources.
package mcp

import (
	"log/slog"

	"github.com/kmorrow/liftday/internal/plan"
	"github.com/kmorrow/liftday/internal/progression"
	"github.com/kmorrow/liftday/internal/schedule"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(program *plan.Program, sched schedule.Schedule, engine progression.Config, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("liftday", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("liftday training plan server. Query the prescribed workout for any date of the fixed 12-week periodized cycle, including deload-week adjustments."),
	)

	h := &handlers{program: program, sched: sched, engine: engine, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolGetSchedule, Handler: h.getSchedule},
	)

	s.AddResources(
		server.ServerResource{Resource: resToday, Handler: h.today},
		server.ServerResource{Resource: resProgram, Handler: h.programOverview},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	program *plan.Program
	sched   schedule.Schedule
	engine  progression.Config
	log     *slog.Logger
}

// --- Resource definitions ---

var resToday = mcp.NewResource(
	"liftday://today",
	"Today's Workout",
	mcp.WithResourceDescription("The prescribed workout for today, with deload adjustments applied"),
	mcp.WithMIMEType("application/json"),
)

var resProgram = mcp.NewResource(
	"liftday://program",
	"Program Overview",
	mcp.WithResourceDescription("The week-1 baseline plan for all seven weekdays"),
	mcp.WithMIMEType("application/json"),
)
