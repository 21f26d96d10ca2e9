package extract

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// sortedIDs returns the map's identifiers ordered by numeric value, not
// lexicographically, so "2" sorts before "10".
func sortedIDs(entries EntryMap) []string {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})
	return ids
}

// Summarize returns a one-line description of the parsed map: entry
// count, total form count, and the longest form name by character length.
// On ties the earlier name wins, since the scan only replaces on a
// strictly greater length.
func Summarize(entries EntryMap) string {
	totalForms := 0
	longest := ""
	for _, id := range sortedIDs(entries) {
		forms := entries[id]
		totalForms += len(forms)
		for _, form := range forms {
			if utf8.RuneCountInString(form.Name) > utf8.RuneCountInString(longest) {
				longest = form.Name
			}
		}
	}
	return fmt.Sprintf("pokemon entries: %d, total forms: %d, longest name: %q",
		len(entries), totalForms, longest)
}

// Sample renders the first n entries in numeric identifier order, one
// entry per line as "id: code:name, code:name". n <= 0 disables the
// sample and yields an empty string.
func Sample(entries EntryMap, n int) string {
	if n <= 0 {
		return ""
	}

	var sb strings.Builder
	for i, id := range sortedIDs(entries) {
		if i >= n {
			break
		}
		forms := entries[id]
		parts := make([]string, 0, len(forms))
		for _, form := range forms {
			parts = append(parts, form.Code+":"+form.Name)
		}
		fmt.Fprintf(&sb, "  %s: %s\n", id, strings.Join(parts, ", "))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
