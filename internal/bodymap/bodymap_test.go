package bodymap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painmap/pkg"
)

func TestDiagramsAreComplete(t *testing.T) {
	front, ok := DiagramFor(pkg.ViewFront)
	require.True(t, ok)
	back, ok := DiagramFor(pkg.ViewBack)
	require.True(t, ok)
	assert.Len(t, front.Regions, 24)
	assert.Len(t, back.Regions, 22)

	for _, d := range []Diagram{front, back} {
		for _, r := range d.Regions {
			assert.True(t, strings.HasPrefix(r.ID, string(d.View)+"-"), r.ID)
			assert.Equal(t, d.View, r.View)
			assert.NotEmpty(t, r.Name)
		}
	}
	_, ok = DiagramFor("side")
	assert.False(t, ok)
}

func TestClick(t *testing.T) {
	var gotID, gotName string
	var gotView pkg.View
	ok := Click("back-lower", func(id, name string, view pkg.View) {
		gotID, gotName, gotView = id, name, view
	})
	require.True(t, ok)
	assert.Equal(t, "back-lower", gotID)
	assert.Equal(t, "Lower Back", gotName)
	assert.Equal(t, pkg.ViewBack, gotView)

	called := false
	assert.False(t, Click("front-tail", func(string, string, pkg.View) { called = true }))
	assert.False(t, called)
}

func TestMark(t *testing.T) {
	points := []pkg.PainPoint{
		{BodyPartID: "front-head", Intensity: 2},
		{BodyPartID: "front-left-knee", Intensity: 7},
		{BodyPartID: "back-lower", Intensity: 5},
	}
	states := Mark(pkg.ViewFront, points, "front-neck")
	require.Len(t, states, 24)

	byID := map[string]RegionState{}
	for _, s := range states {
		byID[s.ID] = s
	}

	head := byID["front-head"]
	assert.True(t, head.Marked)
	assert.Equal(t, pkg.SeverityMild, head.Severity)
	assert.Equal(t, pkg.SeverityMild.Color(), head.Fill)
	assert.False(t, head.Selected)

	knee := byID["front-left-knee"]
	assert.Equal(t, pkg.SeveritySevere, knee.Severity)
	assert.Equal(t, 7, knee.Intensity)

	neck := byID["front-neck"]
	assert.False(t, neck.Marked)
	assert.True(t, neck.Selected)
	assert.Equal(t, SelectedStroke, neck.Stroke)
	assert.Equal(t, "transparent", neck.Fill)

	_, onFront := byID["back-lower"]
	assert.False(t, onFront, "back points do not leak onto the front diagram")
}

func TestLabelPosition(t *testing.T) {
	r, ok := Lookup("front-neck")
	require.True(t, ok)
	st := RegionState{Region: r}
	assert.Equal(t, 100.0, st.LabelX())
	assert.Equal(t, 85.0, st.LabelY())
}
