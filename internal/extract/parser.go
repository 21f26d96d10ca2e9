package extract

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	// keyPattern matches an entry line: a single-quoted numeric key, a
	// colon, and whatever value text follows on the same line.
	keyPattern = regexp.MustCompile(`^'(\d+)'\s*:\s*(.+)$`)

	// formPattern matches one ['CODE', 'NAME'] tuple. Whitespace around
	// the comma is allowed; the quoted text itself is taken literally.
	formPattern = regexp.MustCompile(`\['([^']*)'\s*,\s*'([^']*)'\]`)
)

// parseForms extracts every form tuple from the fragment, in
// left-to-right order. A fragment may contain zero, one, or many tuples.
func parseForms(text string) []FormRecord {
	matches := formPattern.FindAllStringSubmatch(text, -1)
	forms := make([]FormRecord, 0, len(matches))
	for _, m := range matches {
		forms = append(forms, FormRecord{Code: m[1], Name: m[2]})
	}
	return forms
}

// Parse walks the comment-stripped source text line by line and collects
// every recognizable entry into an EntryMap.
//
// The walk is a two-state machine: outside a block it looks for entry key
// lines, committing single-line entries immediately and opening a
// multi-line block otherwise; inside a block it accumulates form tuples
// until a line starting with ']' closes the block. Anything that matches
// neither shape is skipped rather than rejected, and a block still open
// at end of input is committed with whatever it accumulated.
func Parse(src string) EntryMap {
	entries := EntryMap{}

	inBlock := false
	currentID := ""
	var currentForms []FormRecord

	for _, rawLine := range strings.Split(StripBlockComments(src), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "export") {
			continue
		}

		if !inBlock {
			m := keyPattern.FindStringSubmatch(strings.TrimSuffix(line, ","))
			if m == nil {
				continue
			}
			key := m[1]
			rest := strings.TrimSpace(strings.TrimSuffix(m[2], ","))

			// A balanced bracket count means the whole list sits on
			// this one line; commit it without entering a block.
			if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") &&
				strings.Count(rest, "[") == strings.Count(rest, "]") {
				entries[key] = parseForms(rest)
				continue
			}

			inBlock = true
			currentID = key
			currentForms = []FormRecord{}
			if rest != "" && rest != "[" {
				currentForms = append(currentForms, parseForms(rest)...)
			}
			continue
		}

		if strings.HasPrefix(line, "]") {
			entries[currentID] = currentForms
			inBlock = false
			currentForms = nil
			continue
		}
		currentForms = append(currentForms, parseForms(line)...)
	}

	// A missing terminator must not drop the data that was accumulated.
	if inBlock {
		entries[currentID] = currentForms
	}

	return entries
}

// ParseFile reads the file at path and parses the map literal inside it.
func ParseFile(path string) (EntryMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(string(raw)), nil
}
