package pkg

// enums.go holds the closed value sets used by the pain detail form. The
// string values are the exact labels shown to the user and stored on disk.

// View names which body diagram a region belongs to.
type View string

const (
	ViewFront View = "front"
	ViewBack  View = "back"
)

// Views lists both diagrams in display order.
var Views = []View{ViewFront, ViewBack}

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewFront, ViewBack:
		return true
	}
	return false
}

// PainType categorises the nature of the pain.
type PainType string

const (
	PainAcute    PainType = "Acute"
	PainChronic  PainType = "Chronic"
	PainNerve    PainType = "Nerve Pain"
	PainMuscle   PainType = "Muscle Pain"
	PainJoint    PainType = "Joint Pain"
	PainBone     PainType = "Bone Pain"
	PainReferred PainType = "Referred Pain"
	PainPhantom  PainType = "Phantom Pain"
)

// PainTypes is the full set in form order.
var PainTypes = []PainType{
	PainAcute, PainChronic, PainNerve, PainMuscle,
	PainJoint, PainBone, PainReferred, PainPhantom,
}

// Valid reports whether p is one of PainTypes.
func (p PainType) Valid() bool {
	switch p {
	case PainAcute, PainChronic, PainNerve, PainMuscle,
		PainJoint, PainBone, PainReferred, PainPhantom:
		return true
	}
	return false
}

// Sensation describes how the pain feels.
type Sensation string

const (
	SensationSharp     Sensation = "Sharp"
	SensationDull      Sensation = "Dull"
	SensationThrobbing Sensation = "Throbbing"
	SensationBurning   Sensation = "Burning"
	SensationTingling  Sensation = "Tingling"
	SensationNumbness  Sensation = "Numbness"
	SensationShooting  Sensation = "Shooting"
	SensationAching    Sensation = "Aching"
)

// Sensations is the full set in form order.
var Sensations = []Sensation{
	SensationSharp, SensationDull, SensationThrobbing, SensationBurning,
	SensationTingling, SensationNumbness, SensationShooting, SensationAching,
}

// Valid reports whether s is one of Sensations.
func (s Sensation) Valid() bool {
	switch s {
	case SensationSharp, SensationDull, SensationThrobbing, SensationBurning,
		SensationTingling, SensationNumbness, SensationShooting, SensationAching:
		return true
	}
	return false
}

// Duration is how long the pain has lasted, as a fixed range.
type Duration string

const (
	DurationJustStarted   Duration = "Just started (< 1 day)"
	DurationFewDays       Duration = "Few days (1-3 days)"
	DurationWeek          Duration = "A week (4-7 days)"
	DurationFewWeeks      Duration = "Few weeks (1-4 weeks)"
	DurationMonth         Duration = "A month (1-3 months)"
	DurationSeveralMonths Duration = "Several months (3-6 months)"
	DurationOverSixMonths Duration = "Over 6 months"
)

// Durations is the full set, shortest first.
var Durations = []Duration{
	DurationJustStarted, DurationFewDays, DurationWeek, DurationFewWeeks,
	DurationMonth, DurationSeveralMonths, DurationOverSixMonths,
}

// Valid reports whether d is one of Durations.
func (d Duration) Valid() bool {
	switch d {
	case DurationJustStarted, DurationFewDays, DurationWeek, DurationFewWeeks,
		DurationMonth, DurationSeveralMonths, DurationOverSixMonths:
		return true
	}
	return false
}

// Severity is the three-band classification of an intensity.
type Severity int

const (
	SeverityMild Severity = iota + 1
	SeverityModerate
	SeveritySevere
)

// SeverityOf bands an intensity: 1-3 mild, 4-6 moderate, 7-10 severe.
// Out-of-range values clamp to the nearest band.
func SeverityOf(intensity int) Severity {
	switch {
	case intensity <= 3:
		return SeverityMild
	case intensity <= 6:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityMild:
		return "Mild"
	case SeverityModerate:
		return "Moderate"
	case SeveritySevere:
		return "Severe"
	}
	return "Unknown"
}

// Color is the fill used for the band on the body map and summary badges.
func (s Severity) Color() string {
	switch s {
	case SeverityMild:
		return "#FACC15"
	case SeverityModerate:
		return "#FB923C"
	case SeveritySevere:
		return "#DC2626"
	}
	return "transparent"
}
