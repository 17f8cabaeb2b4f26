package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/k0kubun/go-ansi"
)

func main() {
	c, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		// The flag set has already printed its own error and usage.
		if !errors.Is(err, errBadFlags) {
			slog.Error(err.Error())
		}
		os.Exit(2)
	}

	os.Exit(run(c, ansi.NewAnsiStdout(), os.Stdin))
}

// run executes one split and returns the process exit code.
func run(c config, out io.Writer, in io.Reader) int {
	if c.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	printBanner(out)

	// Check if we're in the right directory
	if err := checkOutputDir(c.outputDir); err != nil {
		slog.Debug(err.Error())
		fmt.Fprintf(out, "❌ Error: Can't find '%s' folder!\n", c.outputDir)
		fmt.Fprintln(out, "Make sure you're running this from the project root.")
		pause(c, out, in, "\nPress Enter to exit...")
		return 1
	}

	if err := checkInputFile(c.inputPath()); err != nil {
		slog.Debug(err.Error())
		fmt.Fprintf(out, "❌ Error: Can't find %s in the %s folder!\n", c.inputFile, c.outputDir)
		pause(c, out, in, "\nPress Enter to exit...")
		return 1
	}

	created, err := splitTemplates(c, out)
	if err != nil {
		slog.Error(fmt.Sprintf("Split failed: %v", err))
		return 1
	}

	printSummary(out, c, created)
	pause(c, out, in, "\nPress Enter to exit...")
	return 0
}

// splitTemplates reads the combined input, splits it into sections and writes
// each one to the output directory. It returns the number of distinct files
// created.
func splitTemplates(c config, out io.Writer) (int, error) {
	inputPath := c.inputPath()
	fmt.Fprintf(out, "Reading %s...\n", inputPath)

	content, err := readInput(inputPath)
	if err != nil {
		return 0, err
	}

	sections := splitSections(content, c.sections)
	names := sectionNames(sections)
	warnMarkers(scanMarkers(content, c.sections), names)

	if c.dryRun {
		for _, s := range sections {
			fmt.Fprintf(out, "• Would create %s (%d bytes)\n", s.Name, len(s.Content()))
		}
		return len(names), nil
	}
	if len(sections) == 0 {
		return 0, nil
	}

	bar := newProgressBar(out, len(sections), "[cyan][1/1][reset] Writing sections...")
	for _, s := range sections {
		outputPath, err := writeSection(c.outputDir, s)
		if err != nil {
			bar.Exit()
			return 0, err
		}
		slog.Debug(fmt.Sprintf("Saved section %s to %s", s.Name, outputPath))

		bar.Clear()
		printCreated(out, s.Name)
		bar.Add(1)
	}
	bar.Finish()

	return len(names), nil
}

func warnMarkers(report markerReport, written []string) {
	if len(report.Missing) > 0 {
		slog.Warn(fmt.Sprintf("No marker found for: %s", strings.Join(report.Missing, ", ")))
	}
	if len(report.Duplicates) > 0 {
		slog.Warn(fmt.Sprintf("Markers appear more than once, the last one wins: %s", strings.Join(report.Duplicates, ", ")))
	}
	if len(report.Unknown) > 0 {
		slog.Warn(fmt.Sprintf("Markers not in the section list are kept as content: %s", strings.Join(report.Unknown, ", ")))
	}
	for _, name := range report.Found {
		if !slices.Contains(written, name) {
			slog.Warn(fmt.Sprintf("Marker for %s is not written as '<!-- %s -->' and was not split out", name, name))
		}
	}
}
