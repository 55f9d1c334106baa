package focus

// Command selects the switching mode: nearest window in a horizontal
// direction, or a window on the monitor with a given left-to-right index.
type Command struct {
	ByMonitor bool
	Direction Direction
	Monitor   int
}

// DirectionCommand builds a direction-mode command.
func DirectionCommand(d Direction) Command {
	return Command{Direction: d}
}

// MonitorCommand builds a monitor-index-mode command.
func MonitorCommand(index int) Command {
	return Command{ByMonitor: true, Monitor: index}
}
