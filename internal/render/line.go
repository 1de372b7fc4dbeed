package render

import (
	"regexp"
	"strings"
)

// LineKind is how a content line is displayed.
type LineKind int

const (
	KindText LineKind = iota
	// KindLabel is a text line whose leading label was repaired into bold.
	KindLabel
	KindBullet
	KindNumbered
	KindSeparator
)

func (k LineKind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindBullet:
		return "bullet"
	case KindNumbered:
		return "numbered"
	case KindSeparator:
		return "separator"
	}
	return "text"
}

// Line is a classified content line. Text has list markers removed and
// label fixups applied, but inline markup is still present.
type Line struct {
	Kind   LineKind
	Marker string // "3." for numbered items
	Text   string
}

var (
	// *Label**: with the opening asterisk missing one star.
	halfOpenLabel = regexp.MustCompile(`^\*([^*\s][^*]*)\*\*`)
	// *Label: with no closing asterisks at all.
	unclosedLabel = regexp.MustCompile(`^\*\s*([^*]+?):`)
	numbered      = regexp.MustCompile(`^(\d+)\.\s+`)
	bulletMarker  = regexp.MustCompile(`^[*-]\s*`)
)

// Classify assigns a display kind to a raw content line.
func Classify(raw string) Line {
	line := strings.TrimSpace(raw)
	doubled := strings.HasPrefix(line, "**")

	switch {
	case line == "---" || line == "--":
		return Line{Kind: KindSeparator}
	case !doubled && halfOpenLabel.MatchString(line):
		return Line{Kind: KindLabel, Text: "*" + line}
	case !doubled && unclosedLabel.MatchString(line):
		return Line{Kind: KindLabel, Text: unclosedLabel.ReplaceAllString(line, "**$1:**")}
	case strings.HasPrefix(line, "-") || (strings.HasPrefix(line, "*") && !doubled):
		return Line{Kind: KindBullet, Text: bulletMarker.ReplaceAllString(line, "")}
	}
	if m := numbered.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindNumbered, Marker: m[1] + ".", Text: line[len(m[0]):]}
	}
	return Line{Kind: KindText, Text: line}
}
