// liftday-mcp serves the training plan to MCP clients over stdio.
package main

import (
	"log/slog"
	"os"

	liftmcp "github.com/kmorrow/liftday/internal/mcp"
	"github.com/kmorrow/liftday/internal/plan"
	"github.com/kmorrow/liftday/internal/progression"
	"github.com/kmorrow/liftday/internal/schedule"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	// stdout carries the MCP transport; all logging goes to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	program, err := plan.Default()
	if err != nil {
		log.Error("built-in program is invalid", "error", err)
		os.Exit(1)
	}

	s := liftmcp.New(program, schedule.Default(), progression.Default(), Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
