package logic

import (
	"strings"

	"docsearch/internal/domain"
)

// DefaultSnippetLength is how much of an abstract a card shows without a highlight
const DefaultSnippetLength = 200

const (
	emOpen  = "<em>"
	emClose = "</em>"
)

// CardTitle prefers the first highlighted title fragment over the plain title
func CardTitle(r domain.ResultSummary) string {
	if frag, ok := r.Highlight.First("title"); ok {
		return frag
	}
	return r.Source.Title
}

// CardSubtitle renders "authors — year"
func CardSubtitle(r domain.ResultSummary) string {
	return JoinAuthors(r.Source.Authors) + " — " + r.Source.YearString()
}

// CardSnippet prefers the first highlighted abstract fragment, otherwise the
// first n runes of the abstract followed by "..."
func CardSnippet(r domain.ResultSummary, n int) string {
	if frag, ok := r.Highlight.First("abstract"); ok {
		return frag
	}
	if n <= 0 {
		n = DefaultSnippetLength
	}
	return Truncate(r.Source.Abstract, n) + "..."
}

// JoinAuthors joins author names with ", "
func JoinAuthors(authors []string) string {
	return strings.Join(authors, ", ")
}

// Truncate returns at most n runes of s
func Truncate(s string, n int) string {
	if n < 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Segment is a run of fragment text, marked when it was inside <em></em>
type Segment struct {
	Text    string
	Matched bool
}

// SplitHighlight splits a highlight fragment on its <em> markers.
// An unclosed <em> marks the rest of the fragment.
func SplitHighlight(fragment string) []Segment {
	var segs []Segment
	rest := fragment
	for rest != "" {
		open := strings.Index(rest, emOpen)
		if open < 0 {
			segs = append(segs, Segment{Text: rest})
			break
		}
		if open > 0 {
			segs = append(segs, Segment{Text: rest[:open]})
		}
		rest = rest[open+len(emOpen):]

		end := strings.Index(rest, emClose)
		if end < 0 {
			if rest != "" {
				segs = append(segs, Segment{Text: rest, Matched: true})
			}
			break
		}
		if end > 0 {
			segs = append(segs, Segment{Text: rest[:end], Matched: true})
		}
		rest = rest[end+len(emClose):]
	}
	return segs
}

// StripHighlight removes <em> markers from a fragment
func StripHighlight(fragment string) string {
	var b strings.Builder
	for _, seg := range SplitHighlight(fragment) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
