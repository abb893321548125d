// Package mcp exposes the dashboard state and mutators as MCP tools.
package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"opsdeck/internal/app"
)

const serverInstructions = `opsdeck is a single-user operations dashboard. State is organized as
named slices (tasks, priorities, costs, calendar, clients, agents,
decisions, goal, notes) persisted in a local store. Mutation tools
reject invalid input without changing state; every applied mutation is
recorded in the shared activity feed. Use get_dashboard for the
headline numbers and get_board for the kanban view.`

// Config contains server configuration.
type Config struct {
	Container     *app.Container
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "opsdeck",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Container)

	return server
}
