package search

import (
	"strings"

	"minigrep/internal/model"
)

type Match = model.Match

// Search returns, in order, every line of contents that contains query.
func Search(query string, contents string) []string {
	var out []string
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			out = append(out, line)
		}
	}
	return out
}

// SearchCaseInsensitive is Search with both operands lowercased first.
// The result contains every line Search would return only when query is
// valid UTF-8: ToLower replaces invalid bytes with U+FFFD.
func SearchCaseInsensitive(query string, contents string) []string {
	needle := strings.ToLower(query)

	var out []string
	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), needle) {
			out = append(out, line)
		}
	}
	return out
}

// Find is like Search but also reports where the first occurrence sits.
// Col is a 1-based byte offset into the line as compared.
func Find(query string, contents string, caseInsensitive bool) []Match {
	needle := query
	if caseInsensitive {
		needle = strings.ToLower(needle)
	}

	var out []Match
	for i, line := range Lines(contents) {
		hay := line
		if caseInsensitive {
			hay = strings.ToLower(hay)
		}

		idx := strings.Index(hay, needle)
		if idx < 0 {
			continue
		}

		out = append(out, Match{
			Line: i + 1,
			Col:  idx + 1,
			Text: line,
		})
	}
	return out
}

// Lines splits contents on "\n". A "\r" is dropped only when it precedes
// a "\n". A final newline does not start another line.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}

	body := strings.TrimSuffix(contents, "\n")
	terminated := len(body) != len(contents)

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}
