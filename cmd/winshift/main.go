package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/winshift/winshift/internal/desktop"
	"github.com/winshift/winshift/internal/focus"
	"github.com/winshift/winshift/internal/output"
	"github.com/winshift/winshift/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "direction":
		os.Exit(runDirection(os.Args[2:]))
	case "monitor":
		os.Exit(runMonitor(os.Args[2:]))
	case "list":
		os.Exit(runList(os.Args[2:]))
	case "pick":
		os.Exit(runPick(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winshift <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  direction left|right   Focus the nearest window in that direction")
	fmt.Fprintln(w, "  monitor <index>        Focus a window on the monitor with that index")
	fmt.Fprintln(w, "  list                   List monitors and windows")
	fmt.Fprintln(w, "  pick                   Pick a window to focus interactively")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve              Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Monitor indices are 0-based and increase from left to right.")
	fmt.Fprintln(w, "Run 'winshift <command> --help' for command-specific options.")
}

// setupLogging installs the process-wide slog handler. Everything goes to
// stderr so command output stays clean on stdout.
func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func runDirection(args []string) int {
	fs := flag.NewFlagSet("direction", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winshift direction left|right")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Focus the nearest window strictly to the left or right of the")
		fmt.Fprintln(os.Stderr, "currently focused window, comparing window centers across all")
		fmt.Fprintln(os.Stderr, "monitors. Wraps around at the edge of the layout.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "direction takes exactly one argument: left or right")
		fs.Usage()
		return 2
	}

	dir, err := focus.ParseDirection(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	setupLogging(*debug)
	return switchFocus(focus.DirectionCommand(dir))
}

func runMonitor(args []string) int {
	fs := flag.NewFlagSet("monitor", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winshift monitor <index>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Focus a window on the monitor with the given index. Indices are")
		fmt.Fprintln(os.Stderr, "0-based and increase from left to right.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "monitor takes exactly one argument: the monitor index")
		fs.Usage()
		return 2
	}

	index, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid monitor index %q\n", fs.Arg(0))
		return 2
	}

	setupLogging(*debug)
	return switchFocus(focus.MonitorCommand(index))
}

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	format := fs.String("format", "text", "output format: text, json or yaml")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winshift list [--format text|json|yaml]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List monitors and visible windows with geometry, monitor")
		fmt.Fprintln(os.Stderr, "assignment and focus state.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "list takes no arguments")
		fs.Usage()
		return 2
	}

	outFormat, err := output.ParseFormat(*format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	setupLogging(*debug)

	conn, err := x11.Connect()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer conn.Close()

	monitors, windows, err := buildCatalogs(conn)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := output.NewReport(monitors, windows).Render(os.Stdout, outFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// switchFocus runs one query→decide→act cycle against the X server: build
// both catalogs, select the target window, activate it.
func switchFocus(cmd focus.Command) int {
	conn, err := x11.Connect()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer conn.Close()

	monitors, windows, err := buildCatalogs(conn)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	target, err := focus.Select(monitors, windows, cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	slog.Debug("activating window",
		"id", fmt.Sprintf("0x%08x", target.ID),
		"title", target.Title,
		"monitor", target.MonitorIndex)

	if err := conn.Activate(target.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
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
