package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/ini.v1"
)

const defaultManifest = "splitter.ini"

// errBadFlags marks errors the flag set has already reported to its output.
var errBadFlags = errors.New("invalid command-line flags")

type config struct {
	outputDir string
	inputFile string
	manifest  string
	sections  []string

	dryRun  bool
	noPause bool
	verbose bool
}

func defaultConfig() config {
	return config{
		outputDir: "public",
		inputFile: "templates.html",
		manifest:  defaultManifest,
		sections:  slices.Clone(defaultSections),
	}
}

func (c config) inputPath() string {
	return filepath.Join(c.outputDir, c.inputFile)
}

// parseArgs reads command-line flags, then the manifest. Flags given
// explicitly on the command line take precedence over manifest values.
func parseArgs(args []string, output io.Writer) (config, error) {
	c := defaultConfig()

	fs := flag.NewFlagSet("template-splitter", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&c.outputDir, "output", c.outputDir, "The output/assets directory holding the input file and receiving the sections")
	fs.StringVar(&c.inputFile, "input", c.inputFile, "The name of the combined template file inside the output directory")
	fs.StringVar(&c.manifest, "manifest", c.manifest, "Path to an INI manifest overriding paths and section names (ignored if the default is absent)")
	sections := fs.String("sections", "", "A comma-separated list of section file names to split out (overrides the manifest)")
	fs.BoolVar(&c.dryRun, "dry-run", false, "Split and report without writing any files")
	fs.BoolVar(&c.noPause, "no-pause", false, "Do not wait for Enter before exiting")
	fs.BoolVar(&c.verbose, "verbose", false, "print debug/error statements")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return c, err
		}
		return c, fmt.Errorf("%w: %w", errBadFlags, err)
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	if err := loadManifest(&c, explicit); err != nil {
		return c, err
	}

	if explicit["sections"] {
		names, err := parseNameList(*sections)
		if err != nil {
			return c, fmt.Errorf("-sections: %w", err)
		}
		c.sections = names
	}
	if len(c.sections) == 0 {
		return c, fmt.Errorf("no section names configured")
	}
	return c, nil
}

// loadManifest applies an INI manifest to c. A missing default manifest is not
// an error; a missing manifest named with -manifest is.
func loadManifest(c *config, explicit map[string]bool) error {
	if _, err := os.Stat(c.manifest); err != nil {
		if !explicit["manifest"] && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("manifest %s: %w", c.manifest, err)
	}

	cfg, err := ini.Load(c.manifest)
	if err != nil {
		return fmt.Errorf("manifest %s: %w", c.manifest, err)
	}

	paths := cfg.Section("paths")
	if paths.HasKey("output_dir") && !explicit["output"] {
		c.outputDir = paths.Key("output_dir").String()
	}
	if paths.HasKey("input_file") && !explicit["input"] {
		c.inputFile = paths.Key("input_file").String()
	}

	sections := cfg.Section("sections")
	if sections.HasKey("names") {
		names, err := parseNameList(sections.Key("names").String())
		if err != nil {
			return fmt.Errorf("manifest %s: %w", c.manifest, err)
		}
		c.sections = names
	}
	return nil
}
