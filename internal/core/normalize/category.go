package normalize

import "strings"

// DefaultCategory is the implicit category of pages filed without one
const DefaultCategory = "_default"

const defaultPrefix = DefaultCategory + ":"

// mergeCategories rewrites every colon except the last to a dash, so
// "alpha:beta:gamma" becomes "alpha-beta:gamma"
func mergeCategories(s string) string {
	last := strings.LastIndexByte(s, ':')
	if last <= 0 || strings.IndexByte(s[:last], ':') < 0 {
		return s
	}
	return strings.ReplaceAll(s[:last], ":", "-") + s[last:]
}

// stripDefaultCategory drops an explicit "_default:" prefix
func stripDefaultCategory(s string) string {
	return strings.TrimPrefix(s, defaultPrefix)
}
