// Package mcp binds the tool dispatcher to the Model Context Protocol. It
// owns the advertised tool schemas and the translation between dispatcher
// results and MCP tool results; all weather semantics live below it.
package mcp

import (
	"context"
	"log/slog"
	"os"

	"github.com/couchcryptid/weather-mcp/internal/tools"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "weather-mcp"

const instructions = "A weather information service. get_alerts returns " +
	"active National Weather Service alerts for a US state; get_forecast " +
	"returns a forecast for any coordinates worldwide, using NWS for US " +
	"locations and Open-Meteo elsewhere."

// Server exposes the weather tools over MCP stdio.
type Server struct {
	mcpServer  *server.MCPServer
	dispatcher *tools.Dispatcher
	logger     *slog.Logger
}

// NewServer builds the MCP server and registers both tools against the
// dispatcher.
func NewServer(d *tools.Dispatcher, version string, logger *slog.Logger) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(false),
			server.WithInstructions(instructions),
			server.WithRecovery(),
		),
		dispatcher: d,
		logger:     logger,
	}

	s.mcpServer.AddTool(alertsTool(), s.handle)
	s.mcpServer.AddTool(forecastTool(), s.handle)

	return s
}

// Serve runs the stdio transport until the context is cancelled or stdin
// closes. Protocol-level errors are logged to stderr via the service logger;
// stdout stays reserved for the wire.
func (s *Server) Serve(ctx context.Context) error {
	s.dispatcher.MarkReady()
	s.logger.Info("mcp server serving", "transport", "stdio")

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

// handle adapts one MCP tool call onto the dispatcher. Dispatcher failures
// become tool-level error results (kind plus message, visible to the
// caller); returning a Go error is reserved for transport faults.
func (s *Server) handle(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	text, err := s.dispatcher.Dispatch(ctx, tools.Request{
		Name:      req.Params.Name,
		Arguments: req.GetArguments(),
	})
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	return mcpgo.NewToolResultText(text), nil
}

func alertsTool() mcpgo.Tool {
	return mcpgo.NewTool(tools.ToolGetAlerts,
		mcpgo.WithDescription("Get active weather alerts for a US state. "+
			"Provide a two-letter state code (e.g. 'CA' for California, 'NY' for New York)."),
		mcpgo.WithString("state",
			mcpgo.Required(),
			mcpgo.Description("Two-letter US state or territory code"),
			mcpgo.Pattern("^[A-Za-z]{2}$"),
		),
	)
}

func forecastTool() mcpgo.Tool {
	return mcpgo.NewTool(tools.ToolGetForecast,
		mcpgo.WithDescription("Get weather forecast for any location worldwide. "+
			"Provide latitude and longitude (e.g. latitude: 52.52, longitude: 13.41 for Berlin, "+
			"or latitude: 40.7128, longitude: -74.0060 for New York). The best provider for the "+
			"location is chosen automatically (NWS for US, Open-Meteo elsewhere)."),
		mcpgo.WithNumber("latitude",
			mcpgo.Required(),
			mcpgo.Description("Latitude in decimal degrees"),
			mcpgo.Min(-90),
			mcpgo.Max(90),
		),
		mcpgo.WithNumber("longitude",
			mcpgo.Required(),
			mcpgo.Description("Longitude in decimal degrees"),
			mcpgo.Min(-180),
			mcpgo.Max(180),
		),
	)
}
