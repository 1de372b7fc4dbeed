// Package export produces the downloadable pain report. Images are never
// included.
package export

import (
	"encoding/json"
	"strings"
	"time"

	"painmap/pkg"
)

// Report is the exported document.
type Report struct {
	ExportDate      string        `json:"exportDate"`
	Gender          pkg.Gender    `json:"gender"`
	Age             string        `json:"age"`
	TotalPainPoints int           `json:"totalPainPoints"`
	PainPoints      []ReportPoint `json:"painPoints"`
}

// ReportPoint is one pain point without its image.
type ReportPoint struct {
	BodyPart       string        `json:"bodyPart"`
	View           pkg.View      `json:"view"`
	SuspectedCause string        `json:"suspectedCause"`
	PainType       pkg.PainType  `json:"painType"`
	Intensity      int           `json:"intensity"`
	Sensation      pkg.Sensation `json:"sensation"`
	Duration       pkg.Duration  `json:"duration"`
	OtherSymptoms  string        `json:"otherSymptoms"`
}

// Build assembles a report stamped with now.
func Build(now time.Time, demo pkg.Demographics, points []pkg.PainPoint) Report {
	age := demo.Age
	if strings.TrimSpace(age) == "" {
		age = "Not specified"
	}
	r := Report{
		ExportDate:      now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Gender:          demo.Gender,
		Age:             age,
		TotalPainPoints: len(points),
		PainPoints:      make([]ReportPoint, 0, len(points)),
	}
	for _, p := range points {
		r.PainPoints = append(r.PainPoints, ReportPoint{
			BodyPart:       p.BodyPartName,
			View:           p.View,
			SuspectedCause: p.SuspectedCause,
			PainType:       p.PainType,
			Intensity:      p.Intensity,
			Sensation:      p.Sensation,
			Duration:       p.Duration,
			OtherSymptoms:  p.OtherSymptoms,
		})
	}
	return r
}

// Filename is the download name for a report exported at now.
func Filename(now time.Time) string {
	return "pain-report-" + now.UTC().Format("2006-01-02") + ".json"
}

// Marshal encodes the report with two-space indentation.
func (r Report) Marshal() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
