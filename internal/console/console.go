package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"hftviz/internal/config"
	"hftviz/internal/report"
)

// Console runs the interactive menu loop. Input and output are injected so
// tests can drive the loop with scripted choices.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	service *report.Service
	paths   *config.Paths
	opener  FolderOpener
	logger  *slog.Logger
}

// New creates a console bound to the given streams.
func New(in io.Reader, out io.Writer, service *report.Service, paths *config.Paths, opener FolderOpener, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		service: service,
		paths:   paths,
		opener:  opener,
		logger:  logger,
	}
}

// Run shows the menu until the user exits or input ends. Report failures
// are printed and the loop continues; nothing here is fatal.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Trading Data Visualization Tool")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	fmt.Fprintf(c.out, "Charts will be saved in: %s\n", c.paths.PlotsDir)

	for {
		c.printMenu()
		choice, ok := c.readLine()
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.runReport(ctx, report.CmdThroughput, report.Request{})
		case "2":
			c.runReport(ctx, report.CmdOrders, report.Request{})
		case "3":
			id, ok := c.promptInstrument()
			if !ok {
				return nil
			}
			c.runReport(ctx, report.CmdPrice, report.Request{Instrument: id})
		case "4":
			c.runReport(ctx, report.CmdDashboard, report.Request{})
		case "5":
			c.runReport(ctx, report.CmdStats, report.Request{})
		case "6":
			c.printLocations()
		case "7":
			c.openPlotsFolder()
		case "8", "q", "quit", "exit":
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Menu Options:")
	fmt.Fprintln(c.out, "1. Throughput comparison chart")
	fmt.Fprintln(c.out, "2. Order history analysis")
	fmt.Fprintln(c.out, "3. Price analysis (per instrument)")
	fmt.Fprintln(c.out, "4. Comprehensive trading dashboard")
	fmt.Fprintln(c.out, "5. Statistics workbook (xlsx)")
	fmt.Fprintln(c.out, "6. Show file locations")
	fmt.Fprintln(c.out, "7. Open plots folder")
	fmt.Fprintln(c.out, "8. Exit")
	fmt.Fprint(c.out, "\nEnter your choice (1-8): ")
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptInstrument reads an instrument id; empty input means instrument 0.
func (c *Console) promptInstrument() (int, bool) {
	fmt.Fprint(c.out, "Instrument id [0]: ")
	line, ok := c.readLine()
	if !ok {
		return 0, false
	}
	if line == "" {
		return 0, true
	}
	id, err := strconv.Atoi(line)
	if err != nil || id < 0 {
		fmt.Fprintf(c.out, "Invalid instrument id %q, using 0\n", line)
		return 0, true
	}
	return id, true
}

func (c *Console) runReport(ctx context.Context, cmd report.CommandID, req report.Request) {
	result, err := c.service.Dispatch(ctx, cmd, req)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	for _, file := range result.Files {
		fmt.Fprintf(c.out, "Saved: %s\n", file)
	}
	if len(result.Stats) > 0 {
		fmt.Fprintln(c.out, "\nStatistics:")
		for _, stat := range result.Stats {
			fmt.Fprintf(c.out, "  %s: %s\n", stat.Name, stat.Value)
		}
	}
}

// printLocations lists the working directory, the plots directory, and the
// artifacts already written, with sizes.
func (c *Console) printLocations() {
	fmt.Fprintln(c.out, "\nFile Locations:")
	fmt.Fprintf(c.out, "Working directory: %s\n", c.paths.WorkDir)
	fmt.Fprintf(c.out, "Plots directory:   %s\n", c.paths.PlotsDir)

	entries, err := os.ReadDir(c.paths.PlotsDir)
	if err != nil {
		fmt.Fprintln(c.out, "Plots directory does not exist yet")
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No artifacts in plots directory")
		return
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	fmt.Fprintln(c.out, "Artifacts:")
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		fmt.Fprintf(c.out, "  %s (%d bytes)\n", entry.Name(), info.Size())
	}
}

func (c *Console) openPlotsFolder() {
	path := filepath.Clean(c.paths.PlotsDir)
	if err := c.opener.Open(path); err != nil {
		fmt.Fprintf(c.out, "Could not open folder: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Opened folder: %s\n", path)
}
