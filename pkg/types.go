package pkg

import "strings"

// PainPoint is a single recorded symptom tied to one body-part identifier.
// BodyPartID is the natural key: a collection never holds two points with the
// same id. JSON names match the layout kept in durable storage.
type PainPoint struct {
	BodyPartID     string    `json:"bodyPartId" validate:"required"`
	BodyPartName   string    `json:"bodyPartName"`
	View           View      `json:"view" validate:"omitempty,view"`
	SuspectedCause string    `json:"suspectedCause"`
	PainType       PainType  `json:"painType" validate:"required,paintype"`
	Intensity      int       `json:"intensity" validate:"min=1,max=10"`
	Sensation      Sensation `json:"sensation" validate:"required,sensation"`
	Duration       Duration  `json:"duration" validate:"required,duration"`
	OtherSymptoms  string    `json:"otherSymptoms"`
	// Image is an optional data URI (data:<mime>;base64,<payload>).
	Image string `json:"image,omitempty"`
}

// Severity returns the band derived from the point's intensity.
func (p PainPoint) Severity() Severity { return SeverityOf(p.Intensity) }

// HasImage reports whether an image is attached.
func (p PainPoint) HasImage() bool { return strings.TrimSpace(p.Image) != "" }

// Gender is the demographic gender selection.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Demographics holds the patient fields sent along with a diagnosis request.
// Age is kept as entered; it is optional but must be numeric when present.
type Demographics struct {
	Age    string `json:"age" validate:"omitempty,numeric"`
	Gender Gender `json:"gender" validate:"required,oneof=Male Female"`
}

// DefaultDemographics mirrors the initial form state: no age, male selected.
func DefaultDemographics() Demographics {
	return Demographics{Gender: GenderMale}
}

// ImageAttachment is one image part of an outbound diagnosis request.
type ImageAttachment struct {
	MediaType string `json:"media_type"`
	Data      string `json:"data"` // base64 payload without the data URI prefix
}
