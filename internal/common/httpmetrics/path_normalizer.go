package httpmetrics

import "regexp"

// Record identifiers would explode metric label cardinality, so they
// collapse to a placeholder.
var recordIDRegex = regexp.MustCompile(`[0-9a-fA-F]{24}`)

func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}
	return recordIDRegex.ReplaceAllString(path, "{id}")
}
