package main

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// One space on each side of the token, no newlines inside.
var markerPattern = regexp.MustCompile(`<!-- (.*?) -->`)

var defaultSections = []string{
	"bracket.html",
	"register.html",
	"tournament.html",
	"event.html",
	"league.html",
	"standings.html",
	"schedule.html",
	"live-match.html",
}

// splitPieces splits content on markerPattern, keeping the captured token of
// every match in place of the whole comment. The result always has an odd
// length: interstitial text at even indexes, captured tokens at odd ones.
func splitPieces(content string) []string {
	matches := markerPattern.FindAllStringSubmatchIndex(content, -1)
	pieces := make([]string, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		pieces = append(pieces, content[last:m[0]], content[m[2]:m[3]])
		last = m[1]
	}
	return append(pieces, content[last:])
}

func sectionWanted(allowList []string, piece string) (bool, string) {
	name := trimSpace(piece)
	if name == "" || !slices.Contains(allowList, name) {
		return false, ""
	}
	return true, name
}

// isSpace is unicode.IsSpace plus the ASCII separators U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// parseNameList splits a comma-separated list of section names, dropping
// blanks. Names must be bare file names inside the output directory.
func parseNameList(list string) ([]string, error) {
	var names []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(names, name) {
			continue
		}
		if name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
			return nil, fmt.Errorf("section name %q must be a plain file name", name)
		}
		names = append(names, name)
	}
	return names, nil
}
