package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"
)

const title = "BRDC Template Splitter"

func newProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func printBanner(out io.Writer) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)
}

func printCreated(out io.Writer, name string) {
	fmt.Fprintf(out, "✓ Created %s\n", name)
}

func printSummary(out io.Writer, c config, created int) {
	if c.dryRun {
		fmt.Fprintf(out, "\nDry run: %d files would be created in %s.\n", created, c.outputDir)
		return
	}
	fmt.Fprintf(out, "\n✅ All done! %d files created successfully!\n", created)
	fmt.Fprintf(out, "\nYou can now delete %s if you want.\n", c.inputFile)
}

// pause waits for a line on in unless disabled. EOF counts as Enter.
func pause(c config, out io.Writer, in io.Reader, prompt string) {
	if c.noPause || in == nil {
		return
	}
	fmt.Fprint(out, prompt)
	bufio.NewReader(in).ReadString('\n')
}
