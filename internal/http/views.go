package http

import (
	"fmt"
	"html/template"

	"painmap/internal/bodymap"
	"painmap/internal/capture"
	"painmap/internal/core"
	"painmap/internal/llm"
	"painmap/internal/render"
	"painmap/pkg"
)

var templateFuncs = template.FuncMap{
	"coord": func(f float64) string { return fmt.Sprintf("%g", f) },
}

type bodyMapView struct {
	View    pkg.View
	ViewBox string
	Regions []bodymap.RegionState
}

func newBodyMapView(view pkg.View, points []pkg.PainPoint, selected string) (bodyMapView, bool) {
	d, ok := bodymap.DiagramFor(view)
	if !ok {
		return bodyMapView{}, false
	}
	return bodyMapView{View: view, ViewBox: d.ViewBox, Regions: bodymap.Mark(view, points, selected)}, true
}

type formView struct {
	Editing    bool
	Existing   bool
	Point      pkg.PainPoint
	PreviewURL string
	CanSave    bool
	Error      string
	PainTypes  []pkg.PainType
	Sensations []pkg.Sensation
	Durations  []pkg.Duration
}

// newFormView must be called with the session locked.
func newFormView(f *capture.Form, errMsg string) formView {
	v := formView{
		Editing:    f.State() == capture.StateEditing,
		Existing:   f.Existing(),
		Point:      f.Draft(),
		CanSave:    f.CanSave(),
		Error:      errMsg,
		PainTypes:  pkg.PainTypes,
		Sensations: pkg.Sensations,
		Durations:  pkg.Durations,
	}
	if token := f.PreviewToken(); token != "" {
		v.PreviewURL = "/previews/" + token
	}
	return v
}

type diagnosisView struct {
	State      string
	Pending    bool
	Succeeded  bool
	Failed     bool
	Sections   []render.SectionView
	Error      string
	Disclaimer string
	CanRequest bool
}

func newDiagnosisView(res core.Result, pointCount int) diagnosisView {
	v := diagnosisView{
		State:      res.State.String(),
		Pending:    res.State == core.StatePending,
		Succeeded:  res.State == core.StateSucceeded,
		Failed:     res.State == core.StateFailed,
		Disclaimer: render.Disclaimer,
		CanRequest: res.State != core.StatePending && pointCount > 0,
	}
	if v.Succeeded {
		v.Sections = render.Document(res.Text)
	}
	if v.Failed {
		v.Error = llm.UserMessage(res.Err)
	}
	return v
}

type pageView struct {
	Demographics pkg.Demographics
	Genders      []pkg.Gender
	Front        bodyMapView
	Back         bodyMapView
	Points       []pkg.PainPoint
	Form         formView
	Diagnosis    diagnosisView
}
