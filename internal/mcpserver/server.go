// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes annotation tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ospreyr/shotmark/internal/models"
	"github.com/ospreyr/shotmark/internal/store"
)

// Server wraps the MCP server with annotation tools.
type Server struct {
	mcp   *server.MCPServer
	store store.Store
}

// New creates a new MCP server with all annotation tools registered.
func New(st store.Store) *Server {
	s := &Server{store: st}

	s.mcp = server.NewMCPServer(
		"Shotmark",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_modules",
		mcp.WithDescription("List all modules with their keys and screenshot counts."),
	), s.listModules)

	s.mcp.AddTool(mcp.NewTool("list_screenshots",
		mcp.WithDescription("List the screenshots of one module in display order."),
		mcp.WithString("module_key", mcp.Required(), mcp.Description("Module key (e.g. checkout-flow)")),
	), s.listScreenshots)

	s.mcp.AddTool(mcp.NewTool("list_events",
		mcp.WithDescription("List the event annotations of one screenshot."),
		mcp.WithString("screenshot_id", mcp.Required(), mcp.Description("Screenshot id")),
	), s.listEvents)

	s.mcp.AddTool(mcp.NewTool("create_event",
		mcp.WithDescription("Create an event annotation on a screenshot. "+
			"Coordinates are in percentage space (0-100) relative to the image size. "+
			"Read the contract first via the get_annotation_contract tool or the "+
			"shotmark://annotation-format resource."),
		mcp.WithString("screenshot_id", mcp.Required(), mcp.Description("Screenshot to annotate")),
		mcp.WithString("event_type", mcp.Required(), mcp.Description("One of PageView, TrackEvent, Outlink")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Event name from the event-names vocabulary")),
		mcp.WithString("category", mcp.Required(), mcp.Description("Event category from the event-categories vocabulary")),
		mcp.WithString("action", mcp.Required(), mcp.Description("Event action from the event-actions vocabulary")),
		mcp.WithString("value", mcp.Description("Optional event value")),
		mcp.WithString("description", mcp.Description("Optional free-form description")),
		mcp.WithNumber("start_x", mcp.Description("Top-left X in percent of image width")),
		mcp.WithNumber("start_y", mcp.Description("Top-left Y in percent of image height")),
		mcp.WithNumber("width", mcp.Description("Box width in percent")),
		mcp.WithNumber("height", mcp.Description("Box height in percent")),
	), s.createEvent)

	s.mcp.AddTool(mcp.NewTool("get_annotation_contract",
		mcp.WithDescription("Returns the canonical annotation format contract. "+
			"Call this before creating events to ensure correct structure."),
	), s.getAnnotationContract)

	// Resource: annotation format contract.
	s.mcp.AddResource(
		mcp.NewResource("shotmark://annotation-format", "Annotation Format Contract",
			mcp.WithResourceDescription("Canonical event annotation format for screenshots."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readAnnotationFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listModules(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mods, err := s.store.GetModules(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	type row struct {
		Key         string `json:"key"`
		Name        string `json:"name"`
		Screenshots int    `json:"screenshots"`
	}
	rows := make([]row, 0, len(mods))
	for _, m := range mods {
		rows = append(rows, row{Key: m.Key, Name: m.Name, Screenshots: len(m.Screenshots)})
	}
	out, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listScreenshots(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("module_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mods, err := s.store.GetModules(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	for _, m := range mods {
		if m.Key == key {
			out, _ := json.MarshalIndent(m.Screenshots, "", "  ")
			return mcp.NewToolResultText(string(out)), nil
		}
	}
	return mcp.NewToolResultError(fmt.Sprintf("module not found: %s", key)), nil
}

func (s *Server) listEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("screenshot_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	evs, err := s.store.ListEvents(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(evs, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	screenshotID, err := req.RequireString("screenshot_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	eventType, err := req.RequireString("event_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	action, err := req.RequireString("action")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ev := models.Event{
		EventType:    models.EventType(eventType),
		Name:         name,
		Category:     category,
		Action:       action,
		Value:        req.GetString("value", ""),
		Description:  req.GetString("description", ""),
		ScreenshotID: screenshotID,
		Coordinates: models.Rect{
			StartX: req.GetFloat("start_x", 0),
			StartY: req.GetFloat("start_y", 0),
			Width:  req.GetFloat("width", 0),
			Height: req.GetFloat("height", 0),
		},
	}

	created, err := s.store.CreateEvent(ctx, ev)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(created, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getAnnotationContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(AnnotationContract), nil
}

func (s *Server) readAnnotationFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "shotmark://annotation-format",
			MIMEType: "text/markdown",
			Text:     AnnotationContract,
		},
	}, nil
}
