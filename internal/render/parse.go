// Package render turns the provider's markdown-like answer into sections and
// display blocks. Parsing keeps lines verbatim; every cleanup happens when a
// line is classified for display.
package render

import (
	"regexp"
	"strings"
)

// Section is a top-level "# " block of the response.
type Section struct {
	Title       string
	Content     []string
	Subsections []Subsection
}

// Subsection is a "## " block inside a Section.
type Subsection struct {
	Title   string
	Content []string
}

var (
	sectionHeader    = regexp.MustCompile(`^#\s+`)
	subsectionHeader = regexp.MustCompile(`^##\s+`)
)

// Parse splits text into sections. Subsection headers and content seen before
// the first section header are dropped. Blank lines are skipped but do not
// close anything.
func Parse(text string) []Section {
	var (
		sections []Section
		current  *Section
		sub      *Subsection
	)
	closeSub := func() {
		if sub != nil && current != nil {
			current.Subsections = append(current.Subsections, *sub)
		}
		sub = nil
	}
	closeSection := func() {
		closeSub()
		if current != nil {
			sections = append(sections, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case sectionHeader.MatchString(line):
			closeSection()
			current = &Section{Title: strings.TrimSpace(sectionHeader.ReplaceAllString(line, ""))}
		case subsectionHeader.MatchString(line):
			if current == nil {
				continue
			}
			closeSub()
			sub = &Subsection{Title: strings.TrimSpace(subsectionHeader.ReplaceAllString(line, ""))}
		case strings.TrimSpace(line) == "":
		case sub != nil:
			sub.Content = append(sub.Content, line)
		case current != nil:
			current.Content = append(current.Content, line)
		}
	}
	closeSection()
	return sections
}
