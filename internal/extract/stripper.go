package extract

import "regexp"

var blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)

// StripBlockComments removes every /* ... */ span from the text,
// including spans that cross line boundaries. Matching is non-greedy, so
// each span ends at the first terminator found. Line comments are left
// alone here; the parser skips them line by line.
func StripBlockComments(text string) string {
	return blockCommentPattern.ReplaceAllString(text, "")
}
