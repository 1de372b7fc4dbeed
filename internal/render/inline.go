package render

import (
	"regexp"
	"strings"
)

// Span is a run of inline text. A badge span holds exactly one "Image N"
// reference; Bold applies to badges inside a bold run as well.
type Span struct {
	Text  string
	Bold  bool
	Badge bool
}

var (
	boldRun  = regexp.MustCompile(`\*\*[^*]+\*\*`)
	imageRef = regexp.MustCompile(`Image\s+\d+`)
)

// Inline splits text into plain, bold and badge spans.
func Inline(text string) []Span {
	if strings.HasSuffix(text, "**") && !strings.Contains(text[:len(text)-2], "**") {
		text = text[:len(text)-2]
	}

	var spans []Span
	last := 0
	for _, loc := range boldRun.FindAllStringIndex(text, -1) {
		spans = appendBadges(spans, text[last:loc[0]], false)
		spans = appendBadges(spans, text[loc[0]+2:loc[1]-2], true)
		last = loc[1]
	}
	return appendBadges(spans, text[last:], false)
}

func appendBadges(spans []Span, text string, bold bool) []Span {
	last := 0
	for _, loc := range imageRef.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Text: text[last:loc[0]], Bold: bold})
		}
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Bold: bold, Badge: true})
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:], Bold: bold})
	}
	return spans
}
