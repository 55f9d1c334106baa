package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/winshift/winshift/internal/picker"
	"github.com/winshift/winshift/internal/x11"
)

func runPick(args []string) int {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winshift pick")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open an interactive picker listing all windows; the chosen window")
		fmt.Fprintln(os.Stderr, "receives focus. Cancelling takes no action.")
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
		fmt.Fprintln(os.Stderr, "pick takes no arguments")
		fs.Usage()
		return 2
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "pick requires an interactive terminal")
		return 1
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

	target, ok, err := picker.Run(monitors, windows)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !ok {
		return 0
	}

	if err := conn.Activate(target.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
