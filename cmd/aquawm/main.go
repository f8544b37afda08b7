package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/config"
	"github.com/1broseidon/aquawm/internal/ipc"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runWM(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "clients":
		os.Exit(runClients(os.Args[2:]))
	case "focus-next":
		os.Exit(runAction("focus-next", "Focus the next window.", os.Args[2:], func(c *ipc.Client) error { return c.FocusNext() }))
	case "close":
		os.Exit(runAction("close", "Ask the focused window to close.", os.Args[2:], func(c *ipc.Client) error { return c.CloseActive() }))
	case "fullscreen":
		os.Exit(runAction("fullscreen", "Toggle fullscreen on the focused window.", os.Args[2:], func(c *ipc.Client) error { return c.ToggleFullscreen() }))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
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
	fmt.Fprintln(w, "Usage: aquawm <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Start the window manager (foreground)")
	fmt.Fprintln(w, "  status              Show window manager status")
	fmt.Fprintln(w, "  clients             List managed windows")
	fmt.Fprintln(w, "  focus-next          Focus the next window")
	fmt.Fprintln(w, "  close               Close the focused window")
	fmt.Fprintln(w, "  fullscreen          Toggle fullscreen on the focused window")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'aquawm <command> --help' for command-specific options.")
}

// parseNoArgs parses a flag set for a command that takes no positional
// arguments. ok is false when the caller should exit with code.
func parseNoArgs(fs *flag.FlagSet, name string, args []string) (code int, ok bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, false
		}
		return 2, false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "%s takes no arguments\n", name)
		fs.Usage()
		return 2, false
	}
	return 0, true
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: aquawm status")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show window manager status via IPC.")
	}
	if code, ok := parseNoArgs(fs, "status", args); !ok {
		return code
	}

	status, err := ipc.NewClient().GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	writeStatus(os.Stdout, status)
	return 0
}

func writeStatus(w io.Writer, status *ipc.StatusData) {
	fmt.Fprintf(w, "daemon_running: %v\n", status.DaemonRunning)
	fmt.Fprintf(w, "clients:        %d\n", status.ClientCount)
	fmt.Fprintf(w, "docks:          %d\n", status.DockCount)
	fmt.Fprintf(w, "active_window:  0x%x\n", uint32(status.ActiveWindow))
	fmt.Fprintf(w, "phase:          %s\n", status.Phase)
	fmt.Fprintf(w, "screen:         %dx%d\n", status.Screen.Width, status.Screen.Height)
	fmt.Fprintf(w, "workarea:       %dx%d+%d+%d\n", status.Workarea.Width, status.Workarea.Height, status.Workarea.X, status.Workarea.Y)
	fmt.Fprintf(w, "uptime_seconds: %d\n", status.UptimeSeconds)
}

func runClients(args []string) int {
	fs := flag.NewFlagSet("clients", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Print JSON even on a terminal")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: aquawm clients [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List managed windows. Prints a table on a terminal and JSON otherwise.")
	}
	if code, ok := parseNoArgs(fs, "clients", args); !ok {
		return code
	}

	data, err := ipc.NewClient().ListClients()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *asJSON || !term.IsTerminal(int(os.Stdout.Fd())) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}
	writeClientsTable(os.Stdout, data.Clients)
	return 0
}

func writeClientsTable(w io.Writer, clients []client.Info) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WINDOW\tFRAME\tGEOMETRY\tFLAGS\tTITLE")
	for _, c := range clients {
		frame := "-"
		if c.Decorated {
			frame = fmt.Sprintf("0x%x", uint32(c.Frame))
		}
		g := c.Geometry
		fmt.Fprintf(tw, "0x%x\t%s\t%dx%d+%d+%d\t%s\t%s\n",
			uint32(c.Window), frame, g.Width, g.Height, g.X, g.Y, clientFlags(c), c.Title)
	}
	tw.Flush()
}

func clientFlags(c client.Info) string {
	var flags []string
	if c.Active {
		flags = append(flags, "active")
	}
	switch {
	case c.Iconic:
		flags = append(flags, "iconic")
	case !c.Mapped:
		flags = append(flags, "hidden")
	}
	if c.Maximized {
		flags = append(flags, "max")
	}
	if c.Fullscreen {
		flags = append(flags, "full")
	}
	if c.Dock {
		flags = append(flags, "dock:"+c.DockSide)
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

func runAction(name, help string, args []string, fn func(*ipc.Client) error) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aquawm %s\n", name)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, help)
	}
	if code, ok := parseNoArgs(fs, name, args); !ok {
		return code
	}

	if err := fn(ipc.NewClient()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  aquawm config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  aquawm config print [--path PATH] [--defaults]")
		return 2
	}

	defaultPath := config.DefaultConfigPath()
	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", defaultPath, "Config file path")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		res, err := config.LoadFromPath(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if res.File == "" {
			fmt.Printf("config: ok (no file at %s, using defaults)\n", *path)
			return 0
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", defaultPath, "Config file path")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		cfg := config.DefaultConfig()
		if !*printDefaults {
			res, err := config.LoadFromPath(*path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			cfg = res.Config
		}
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}
