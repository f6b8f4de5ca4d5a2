package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kmorrow/liftday/internal/report"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) today(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	day := report.Build(h.program, h.sched, h.engine, time.Now())
	return jsonContents(req.Params.URI, day)
}

func (h *handlers) programOverview(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(req.Params.URI, report.Overview(h.program))
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
