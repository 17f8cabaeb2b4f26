package main

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// markerReport summarizes the comment markers an HTML tokenizer sees in the
// input. It is used for warnings only and never affects how the input is split.
type markerReport struct {
	Found      []string
	Missing    []string
	Duplicates []string
	Unknown    []string
}

func scanMarkers(content string, allowList []string) markerReport {
	var report markerReport
	counts := make(map[string]int)

	tokenizer := html.NewTokenizer(strings.NewReader(content))

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			for _, name := range allowList {
				switch {
				case counts[name] == 0:
					report.Missing = append(report.Missing, name)
				case counts[name] > 1:
					report.Duplicates = append(report.Duplicates, name)
				}
			}
			return report
		case html.CommentToken:
			token := tokenizer.Token()
			name := strings.TrimSpace(token.Data)
			if name == "" || strings.ContainsAny(name, " \t\r\n") {
				continue
			}
			if slices.Contains(allowList, name) {
				if counts[name] == 0 {
					report.Found = append(report.Found, name)
				}
				counts[name]++
			} else if strings.HasSuffix(name, ".html") && !slices.Contains(report.Unknown, name) {
				report.Unknown = append(report.Unknown, name)
			}
		}
	}
}
