package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winshift/winshift/internal/desktop"
	"github.com/winshift/winshift/internal/focus"
	"github.com/winshift/winshift/internal/output"
)

const (
	ServerName    = "winshift"
	ServerVersion = "0.1.0"
)

// DialFunc opens a fresh window-system session. Every tool call dials,
// queries, acts and closes: the same one-shot cycle as a CLI invocation,
// so no state can go stale between calls.
type DialFunc func() (desktop.Session, error)

// Server is the MCP server exposing focus switching as tools.
type Server struct {
	mcpServer *mcpsdk.Server
	dial      DialFunc
}

// NewServer creates a new MCP server over the given session dialer.
func NewServer(dial DialFunc) *Server {
	s := &Server{dial: dial}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_direction",
		Description: "Move input focus to the nearest window to the left or right of the currently focused window, by horizontal center comparison across all monitors. Wraps around at the edge of the layout.",
	}, s.handleFocusDirection)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_monitor",
		Description: "Move input focus to a window on the monitor with the given left-to-right index (0-based). Prefers a window that is not already focused.",
	}, s.handleFocusMonitor)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List active monitors and visible top-level windows with their geometry, monitor assignment and focus state.",
	}, s.handleListWindows)
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) handleFocusDirection(_ context.Context, _ *mcpsdk.CallToolRequest, args FocusDirectionInput) (*mcpsdk.CallToolResult, SwitchOutput, error) {
	dir, err := focus.ParseDirection(args.Direction)
	if err != nil {
		return nil, SwitchOutput{}, err
	}

	out, err := s.switchFocus(focus.DirectionCommand(dir))
	if err != nil {
		return nil, SwitchOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleFocusMonitor(_ context.Context, _ *mcpsdk.CallToolRequest, args FocusMonitorInput) (*mcpsdk.CallToolResult, SwitchOutput, error) {
	out, err := s.switchFocus(focus.MonitorCommand(args.Monitor))
	if err != nil {
		return nil, SwitchOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	sess, err := s.dial()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}
	defer sess.Close()

	monitors, windows, err := buildCatalogs(sess)
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	report := output.NewReport(monitors, windows)
	return nil, ListWindowsOutput{Monitors: report.Monitors, Windows: report.Windows}, nil
}

// switchFocus runs one query→decide→act cycle for the given command.
func (s *Server) switchFocus(cmd focus.Command) (SwitchOutput, error) {
	sess, err := s.dial()
	if err != nil {
		return SwitchOutput{}, err
	}
	defer sess.Close()

	monitors, windows, err := buildCatalogs(sess)
	if err != nil {
		return SwitchOutput{}, err
	}

	target, err := focus.Select(monitors, windows, cmd)
	if err != nil {
		return SwitchOutput{}, err
	}

	if err := sess.Activate(target.ID); err != nil {
		return SwitchOutput{}, err
	}

	return SwitchOutput{
		WindowID: target.ID,
		Title:    target.Title,
		Monitor:  target.MonitorIndex,
	}, nil
}

func buildCatalogs(sess desktop.Session) ([]desktop.Monitor, []desktop.Window, error) {
	rawMonitors, err := sess.Monitors()
	if err != nil {
		return nil, nil, err
	}
	monitors, err := desktop.BuildMonitors(rawMonitors)
	if err != nil {
		return nil, nil, err
	}

	rawWindows, err := sess.Windows()
	if err != nil {
		return nil, nil, err
	}
	windows, err := desktop.BuildWindows(rawWindows, monitors)
	if err != nil {
		return nil, nil, err
	}

	return monitors, windows, nil
}
