package render

import "strings"

// Disclaimer is shown above every rendered diagnosis.
const Disclaimer = "This AI analysis is for informational purposes only and does not replace " +
	"professional medical advice, diagnosis, or treatment. Always consult with a qualified " +
	"healthcare provider for proper medical care. If you're experiencing a medical emergency, " +
	"call 911 immediately."

// Block is one displayable content line.
type Block struct {
	Kind   LineKind
	Marker string
	Spans  []Span
}

// SectionView is a section ready for a template.
type SectionView struct {
	Title       string
	Class       string
	Emphasis    Emphasis
	Blocks      []Block
	Subsections []SubsectionView
}

type SubsectionView struct {
	Title  string
	Blocks []Block
}

// Document parses text and prepares every section for display.
func Document(text string) []SectionView {
	sections := Parse(text)
	out := make([]SectionView, 0, len(sections))
	for _, s := range sections {
		out = append(out, View(s))
	}
	return out
}

// View classifies a section's lines, dropping separators.
func View(s Section) SectionView {
	v := SectionView{
		Title:    s.Title,
		Emphasis: EmphasisOf(s.Title),
		Blocks:   Blocks(s.Content),
	}
	switch v.Emphasis {
	case EmphasisReasoning:
		v.Class = "section-reasoning"
	case EmphasisSummary:
		v.Class = "section-summary " + DetectTier(strings.Join(s.Content, " ")).Class()
	case EmphasisEmergency:
		v.Class = "section-emergency"
	default:
		v.Class = "section-plain"
	}
	for _, sub := range s.Subsections {
		v.Subsections = append(v.Subsections, SubsectionView{Title: sub.Title, Blocks: Blocks(sub.Content)})
	}
	return v
}

// Blocks converts raw content lines into display blocks.
func Blocks(lines []string) []Block {
	var out []Block
	for _, raw := range lines {
		l := Classify(raw)
		if l.Kind == KindSeparator {
			continue
		}
		out = append(out, Block{Kind: l.Kind, Marker: l.Marker, Spans: Inline(l.Text)})
	}
	return out
}

func (b Block) IsBullet() bool   { return b.Kind == KindBullet }
func (b Block) IsNumbered() bool { return b.Kind == KindNumbered }
