package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `<!DOCTYPE html>
<!-- Combined templates, split with template-splitter -->
<!-- bracket.html -->
<html><body>bracket</body></html>

<!-- register.html -->
<html><body>register</body></html>
<!-- tournament.html -->
tournament
<!-- event.html -->
event
<!-- league.html -->
league
<!-- standings.html -->
standings
<!-- schedule.html -->
schedule
<!-- live-match.html -->
<html><body>live</body></html>
`

func testConfig(t *testing.T, input string) config {
	t.Helper()
	c := defaultConfig()
	c.outputDir = t.TempDir()
	c.noPause = true
	if input != "" {
		require.NoError(t, os.WriteFile(c.inputPath(), []byte(input), 0644))
	}
	return c
}

func readOutput(t *testing.T, c config, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(c.outputDir, name))
	require.NoError(t, err)
	return string(data)
}

func TestRun_WritesAllSections(t *testing.T) {
	c := testConfig(t, fixture)
	var out bytes.Buffer

	require.Equal(t, 0, run(c, &out, nil))

	for _, name := range defaultSections {
		assert.FileExists(t, filepath.Join(c.outputDir, name))
		assert.Contains(t, out.String(), "Created "+name)
	}
	assert.Equal(t, "<html><body>bracket</body></html>", readOutput(t, c, "bracket.html"))
	assert.Equal(t, "tournament", readOutput(t, c, "tournament.html"))
	assert.Equal(t, "<html><body>live</body></html>", readOutput(t, c, "live-match.html"))
	assert.Contains(t, out.String(), "8 files created successfully")
	assert.Contains(t, out.String(), "You can now delete templates.html")
}

func TestRun_Idempotent(t *testing.T) {
	c := testConfig(t, fixture)

	require.Equal(t, 0, run(c, &bytes.Buffer{}, nil))
	first := make(map[string]string)
	for _, name := range defaultSections {
		first[name] = readOutput(t, c, name)
	}

	require.Equal(t, 0, run(c, &bytes.Buffer{}, nil))
	for _, name := range defaultSections {
		assert.Equal(t, first[name], readOutput(t, c, name))
	}
}

func TestRun_OverwritesExistingFile(t *testing.T) {
	c := testConfig(t, "<!-- bracket.html -->\nA\n<!-- register.html -->\nB\n")
	existing := filepath.Join(c.outputDir, "bracket.html")
	require.NoError(t, os.WriteFile(existing, []byte(strings.Repeat("stale ", 100)), 0644))

	require.Equal(t, 0, run(c, &bytes.Buffer{}, nil))

	assert.Equal(t, "A", readOutput(t, c, "bracket.html"))
	assert.Equal(t, "B", readOutput(t, c, "register.html"))
}

func TestRun_SingleMarker(t *testing.T) {
	c := testConfig(t, "ignored\n<!-- standings.html -->\n  table  \n")
	var out bytes.Buffer

	require.Equal(t, 0, run(c, &out, nil))

	assert.Equal(t, "table", readOutput(t, c, "standings.html"))
	for _, name := range defaultSections {
		if name != "standings.html" {
			assert.NoFileExists(t, filepath.Join(c.outputDir, name))
		}
	}
	assert.Contains(t, out.String(), "1 files created successfully")
}

func TestRun_MissingOutputDir(t *testing.T) {
	c := defaultConfig()
	c.outputDir = filepath.Join(t.TempDir(), "public")
	var out bytes.Buffer

	code := run(c, &out, strings.NewReader("\n"))

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Can't find '"+c.outputDir+"' folder")
	assert.Contains(t, out.String(), "Press Enter to exit")
	assert.NoDirExists(t, c.outputDir)
}

func TestRun_MissingInputFile(t *testing.T) {
	c := testConfig(t, "")
	var out bytes.Buffer

	code := run(c, &out, strings.NewReader(""))

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Can't find templates.html")
	entries, err := os.ReadDir(c.outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_OutputPathIsFile(t *testing.T) {
	c := testConfig(t, "")
	c.outputDir = filepath.Join(c.outputDir, "file")
	require.NoError(t, os.WriteFile(c.outputDir, nil, 0644))

	assert.Equal(t, 1, run(c, &bytes.Buffer{}, nil))
}

func TestRun_DryRun(t *testing.T) {
	c := testConfig(t, fixture)
	c.dryRun = true
	var out bytes.Buffer

	require.Equal(t, 0, run(c, &out, nil))

	for _, name := range defaultSections {
		assert.NoFileExists(t, filepath.Join(c.outputDir, name))
	}
	assert.Contains(t, out.String(), "Would create bracket.html")
	assert.Contains(t, out.String(), "Dry run: 8 files would be created")
}

func TestRun_WriteFailure(t *testing.T) {
	c := testConfig(t, "<!-- bracket.html -->A<!-- register.html -->B")
	// A directory in the way of the second section makes its write fail.
	require.NoError(t, os.Mkdir(filepath.Join(c.outputDir, "register.html"), 0755))

	assert.Equal(t, 1, run(c, &bytes.Buffer{}, nil))
	assert.Equal(t, "A", readOutput(t, c, "bracket.html"))
}

func TestRun_NoMarkers(t *testing.T) {
	c := testConfig(t, "<p>plain page</p>")
	var out bytes.Buffer

	require.Equal(t, 0, run(c, &out, nil))
	assert.Contains(t, out.String(), "0 files created successfully")
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRun_WarnsAboutMarkers(t *testing.T) {
	logs := captureLogs(t)
	c := testConfig(t, "<!--bracket.html-->A\n<!-- register.html -->B<!-- register.html -->C<!-- extra.html -->")
	c.sections = []string{"bracket.html", "register.html", "event.html"}

	require.Equal(t, 0, run(c, &bytes.Buffer{}, nil))

	out := logs.String()
	assert.Contains(t, out, "No marker found for: event.html")
	assert.Contains(t, out, "more than once, the last one wins: register.html")
	assert.Contains(t, out, "kept as content: extra.html")
	assert.Contains(t, out, "Marker for bracket.html is not written as")
	assert.NoFileExists(t, filepath.Join(c.outputDir, "bracket.html"))
	assert.Equal(t, "Cextra.html", readOutput(t, c, "register.html"))
}

func TestWarnMarkers_Quiet(t *testing.T) {
	logs := captureLogs(t)

	warnMarkers(markerReport{Found: []string{"bracket.html"}}, []string{"bracket.html"})

	assert.Empty(t, logs.String())
}

func TestRun_SectionNameCannotEscapeOutputDir(t *testing.T) {
	c := testConfig(t, "<!-- ../escaped.html -->X")
	c.sections = []string{"../escaped.html"}

	assert.Equal(t, 1, run(c, &bytes.Buffer{}, nil))
	assert.NoFileExists(t, filepath.Join(filepath.Dir(c.outputDir), "escaped.html"))
}

func TestRun_CreatedLinesArePlain(t *testing.T) {
	c := testConfig(t, "<!-- bracket.html -->A")
	var out bytes.Buffer

	require.Equal(t, 0, run(c, &out, nil))
	assert.Contains(t, out.String(), "✓ Created bracket.html\n")
}
