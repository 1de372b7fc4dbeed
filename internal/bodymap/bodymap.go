// Package bodymap is the static front/back body diagram: a fixed table of
// clickable regions keyed by body-part id, and the pure derivation of how
// each region is drawn for a given pain-point collection.
package bodymap

import (
	"fmt"

	"painmap/pkg"
)

// ShapeKind is the SVG primitive used for a region.
type ShapeKind string

const (
	KindEllipse ShapeKind = "ellipse"
	KindCircle  ShapeKind = "circle"
	KindRect    ShapeKind = "rect"
)

// Shape is the geometry of a region in diagram coordinates. Only the fields
// relevant to Kind are set.
type Shape struct {
	Kind          ShapeKind
	CX, CY        float64
	RX, RY, R     float64
	X, Y          float64
	Width, Height float64
	Corner        float64
}

// Center returns the point where the intensity label is drawn.
func (s Shape) Center() (float64, float64) {
	if s.Kind == KindRect {
		return s.X + s.Width/2, s.Y + s.Height/2
	}
	return s.CX, s.CY
}

// Region is one clickable body part.
type Region struct {
	ID    string
	Name  string
	View  pkg.View
	Shape Shape
}

// Diagram is one view of the body.
type Diagram struct {
	View    pkg.View
	ViewBox string
	Regions []Region
}

var (
	diagrams = map[pkg.View]Diagram{
		pkg.ViewFront: {View: pkg.ViewFront, ViewBox: "0 0 200 600", Regions: frontRegions},
		pkg.ViewBack:  {View: pkg.ViewBack, ViewBox: "0 0 200 450", Regions: backRegions},
	}
	byID = indexRegions()
)

func indexRegions() map[string]Region {
	m := make(map[string]Region, len(frontRegions)+len(backRegions))
	for _, rs := range [][]Region{frontRegions, backRegions} {
		for _, r := range rs {
			if _, dup := m[r.ID]; dup {
				panic(fmt.Sprintf("bodymap: duplicate region id %q", r.ID))
			}
			m[r.ID] = r
		}
	}
	return m
}

// DiagramFor returns the diagram for a view.
func DiagramFor(view pkg.View) (Diagram, bool) {
	d, ok := diagrams[view]
	return d, ok
}

// Lookup finds a region by body-part id.
func Lookup(id string) (Region, bool) {
	r, ok := byID[id]
	return r, ok
}

// ClickFunc receives the identity of a clicked region.
type ClickFunc func(id, name string, view pkg.View)

// Click resolves id and forwards it to fn. It reports false for ids that are
// not on either diagram.
func Click(id string, fn ClickFunc) bool {
	r, ok := Lookup(id)
	if !ok {
		return false
	}
	fn(r.ID, r.Name, r.View)
	return true
}

// Outline and highlight colours for unmarked and selected regions.
const (
	UnmarkedStroke = "#D1D5DB"
	SelectedStroke = "#7C3AED"
)

// RegionState is a region together with how it should be drawn.
type RegionState struct {
	Region
	Marked    bool
	Selected  bool
	Intensity int
	Severity  pkg.Severity
	Fill      string
	Stroke    string
}

// LabelX and LabelY position the intensity number inside the shape.
func (s RegionState) LabelX() float64 { x, _ := s.Shape.Center(); return x }
func (s RegionState) LabelY() float64 { _, y := s.Shape.Center(); return y + 5 }

// Mark derives the draw state of every region in view from the pain-point
// collection. selected may be empty.
func Mark(view pkg.View, points []pkg.PainPoint, selected string) []RegionState {
	d, ok := diagrams[view]
	if !ok {
		return nil
	}
	byPart := make(map[string]pkg.PainPoint, len(points))
	for _, p := range points {
		byPart[p.BodyPartID] = p
	}
	out := make([]RegionState, 0, len(d.Regions))
	for _, r := range d.Regions {
		st := RegionState{Region: r, Fill: "transparent", Stroke: UnmarkedStroke}
		if p, marked := byPart[r.ID]; marked {
			st.Marked = true
			st.Intensity = p.Intensity
			st.Severity = p.Severity()
			st.Fill = st.Severity.Color()
		}
		if selected != "" && r.ID == selected {
			st.Selected = true
			st.Stroke = SelectedStroke
		}
		out = append(out, st)
	}
	return out
}
