package render

import "strings"

// Tier is the severity treatment picked from marker glyphs in the text.
type Tier int

const (
	TierNeutral Tier = iota
	TierMild
	TierModerate
	TierSignificant
	TierSevere
)

var tierMarkers = []struct {
	glyph string
	tier  Tier
}{
	{"🟢", TierMild},
	{"🟡", TierModerate},
	{"🟠", TierSignificant},
	{"🔴", TierSevere},
}

// DetectTier returns the tier of the first marker found, checking the
// mildest marker first.
func DetectTier(text string) Tier {
	for _, m := range tierMarkers {
		if strings.Contains(text, m.glyph) {
			return m.tier
		}
	}
	return TierNeutral
}

// Class is the CSS class carrying the tier's border and background.
func (t Tier) Class() string {
	switch t {
	case TierMild:
		return "tier-mild"
	case TierModerate:
		return "tier-moderate"
	case TierSignificant:
		return "tier-significant"
	case TierSevere:
		return "tier-severe"
	}
	return "tier-neutral"
}

// Emphasis is the special treatment some sections get.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisReasoning
	EmphasisSummary
	EmphasisEmergency
)

// EmphasisOf picks the treatment for a section title.
func EmphasisOf(title string) Emphasis {
	switch {
	case strings.Contains(title, "WHY WE THINK THIS"):
		return EmphasisReasoning
	case strings.Contains(title, "QUICK SUMMARY"):
		return EmphasisSummary
	case strings.Contains(title, "WHEN TO SEE A DOCTOR"):
		return EmphasisEmergency
	}
	return EmphasisNone
}
