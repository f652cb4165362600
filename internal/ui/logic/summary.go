package logic

import (
	"fmt"
	"strings"
)

// NoResultsText is shown in place of the result list when it is empty
const NoResultsText = "No results found."

// SuggestionKind says how a backend suggestion should be offered
type SuggestionKind int

const (
	SuggestionNone SuggestionKind = iota
	SuggestionDidYouMean
	SuggestionSearchInstead
)

// ClassifySuggestion decides whether to show suggestion for lastQuery.
// With no results it is always offered; with results only when it differs
// from the query ignoring case.
func ClassifySuggestion(suggestion, lastQuery string, total int) SuggestionKind {
	if suggestion == "" {
		return SuggestionNone
	}
	if total == 0 {
		return SuggestionDidYouMean
	}
	if strings.ToLower(suggestion) != strings.ToLower(lastQuery) {
		return SuggestionSearchInstead
	}
	return SuggestionNone
}

// SuggestionText returns the line to display for kind, or ""
func SuggestionText(kind SuggestionKind, suggestion string) string {
	switch kind {
	case SuggestionDidYouMean:
		return fmt.Sprintf("Did you mean %s?", suggestion)
	case SuggestionSearchInstead:
		return fmt.Sprintf("Or search instead for %s", suggestion)
	default:
		return ""
	}
}

// StatsLine renders "N results found in X ms for 'q'"
func StatsLine(total int, elapsedMs int64, query string) string {
	plural := "s"
	if total == 1 {
		plural = ""
	}
	return fmt.Sprintf("%d result%s found in %d ms for '%s'", total, plural, elapsedMs, query)
}

// PageLine renders "page P of N"
func PageLine(page, pages int) string {
	return fmt.Sprintf("page %d of %d", page, pages)
}
