package main

import (
	"fmt"
	"log/slog"
	"strings"
)

// section is one named block of the input, destined for its own file.
type section struct {
	Name   string
	Chunks []string
}

// Content is the joined chunks with surrounding whitespace removed.
func (s section) Content() string {
	return trimSpace(strings.Join(s.Chunks, ""))
}

// splitSections walks the marker pieces of content in order and groups the
// text following each allow-listed marker under that marker's name. Text
// before the first allow-listed marker is dropped. A section is emitted once
// it has received at least one chunk, even an empty one, so two adjacent
// markers still yield an (empty) section for the first.
func splitSections(content string, allowList []string) []section {
	var sections []section
	var current *section
	discarded := 0

	for _, piece := range splitPieces(content) {
		if wanted, name := sectionWanted(allowList, piece); wanted {
			if current != nil && len(current.Chunks) > 0 {
				sections = append(sections, *current)
			}
			current = &section{Name: name}
			continue
		}

		if current == nil {
			discarded += len(piece)
			continue
		}
		current.Chunks = append(current.Chunks, piece)
	}

	if current != nil && len(current.Chunks) > 0 {
		sections = append(sections, *current)
	}

	if discarded > 0 {
		slog.Debug(fmt.Sprintf("Dropped %d bytes before the first section marker", discarded))
	}
	return sections
}

// sectionNames returns the distinct names of sections in first-seen order.
func sectionNames(sections []section) []string {
	seen := make(map[string]bool, len(sections))
	var names []string
	for _, s := range sections {
		if !seen[s.Name] {
			seen[s.Name] = true
			names = append(names, s.Name)
		}
	}
	return names
}
