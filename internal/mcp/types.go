package mcp

import "github.com/winshift/winshift/internal/output"

// FocusDirectionInput is the input for the focus_direction tool.
type FocusDirectionInput struct {
	Direction string `json:"direction" jsonschema:"required,Direction to move focus: left or right"`
}

// FocusMonitorInput is the input for the focus_monitor tool.
type FocusMonitorInput struct {
	Monitor int `json:"monitor" jsonschema:"0-based monitor index, increasing left to right"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// SwitchOutput reports the window that received focus.
type SwitchOutput struct {
	WindowID uint32 `json:"window_id"`
	Title    string `json:"title"`
	Monitor  int    `json:"monitor"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Monitors []output.MonitorEntry `json:"monitors"`
	Windows  []output.WindowEntry  `json:"windows"`
}
