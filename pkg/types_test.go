package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityOf(t *testing.T) {
	tests := []struct {
		intensity int
		want      Severity
	}{
		{1, SeverityMild},
		{3, SeverityMild},
		{4, SeverityModerate},
		{5, SeverityModerate},
		{6, SeverityModerate},
		{7, SeveritySevere},
		{10, SeveritySevere},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityOf(tt.intensity), "intensity %d", tt.intensity)
	}
	assert.Equal(t, "Moderate", SeverityOf(4).String())
	assert.Equal(t, "#DC2626", SeverityOf(7).Color())
}

func validPoint() PainPoint {
	return PainPoint{
		BodyPartID:   "front-left-knee",
		BodyPartName: "Left knee",
		View:         ViewFront,
		PainType:     PainJoint,
		Intensity:    6,
		Sensation:    SensationAching,
		Duration:     DurationFewWeeks,
	}
}

func TestPainPointValidate(t *testing.T) {
	require.NoError(t, validPoint().Validate())

	tests := []struct {
		name   string
		mutate func(*PainPoint)
		field  string
	}{
		{"missing pain type", func(p *PainPoint) { p.PainType = "" }, "PainType"},
		{"missing sensation", func(p *PainPoint) { p.Sensation = "" }, "Sensation"},
		{"missing duration", func(p *PainPoint) { p.Duration = "" }, "Duration"},
		{"unknown pain type", func(p *PainPoint) { p.PainType = "Itchy" }, "PainType"},
		{"intensity too low", func(p *PainPoint) { p.Intensity = 0 }, "Intensity"},
		{"intensity too high", func(p *PainPoint) { p.Intensity = 11 }, "Intensity"},
		{"bad view", func(p *PainPoint) { p.View = "side" }, "View"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPoint()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tt.field), "fields: %v", verr.Fields)
		})
	}
}

func TestDemographicsValidate(t *testing.T) {
	assert.NoError(t, DefaultDemographics().Validate())
	assert.NoError(t, Demographics{Age: "42", Gender: GenderFemale}.Validate())
	assert.Error(t, Demographics{Age: "forty", Gender: GenderMale}.Validate())
	assert.Error(t, Demographics{Gender: "Other"}.Validate())
}

func TestEnumsAreClosed(t *testing.T) {
	assert.Len(t, PainTypes, 8)
	assert.Len(t, Sensations, 8)
	assert.Len(t, Durations, 7)
	for _, p := range PainTypes {
		assert.True(t, p.Valid())
	}
	assert.False(t, Sensation("Itchy").Valid())
	assert.False(t, Duration("forever").Valid())
}
