package core

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painmap/internal/llm"
	"painmap/pkg"
)

type fakeClient struct {
	mu      sync.Mutex
	calls   int
	prompt  string
	images  []pkg.ImageAttachment
	text    string
	err     error
	release chan struct{}
}

func (f *fakeClient) Name() string { return "fake" }

func (f *fakeClient) Diagnose(ctx context.Context, prompt string, images []pkg.ImageAttachment) (string, error) {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompt = prompt
	f.images = images
	return f.text, f.err
}

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func (r *recordingObserver) DiagnosisFinished(o Outcome, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func point(id, name string, intensity int) pkg.PainPoint {
	return pkg.PainPoint{
		BodyPartID:   id,
		BodyPartName: name,
		View:         pkg.ViewFront,
		PainType:     pkg.PainMuscle,
		Intensity:    intensity,
		Sensation:    pkg.SensationDull,
		Duration:     pkg.DurationWeek,
	}
}

func TestBuildRequestRefusesEmptyCollection(t *testing.T) {
	_, err := BuildRequest(pkg.DefaultDemographics(), nil)
	assert.ErrorIs(t, err, ErrNoPainPoints)
}

func TestBuildRequestIncludesEveryField(t *testing.T) {
	p := point("front-upper-chest", "Chest", 7)
	p.SuspectedCause = "Lifting boxes"
	p.OtherSymptoms = "Shortness of breath"

	req, err := BuildRequest(pkg.Demographics{Age: "34", Gender: pkg.GenderFemale}, []pkg.PainPoint{p})
	require.NoError(t, err)

	for _, want := range []string{
		"- Age: 34", "- Gender: Female",
		"1. Location: Chest (front view)",
		"- Suspected Cause: Lifting boxes",
		"- Pain Type: Muscle Pain",
		"- Intensity: 7/10",
		"- Sensation: Dull",
		"- Duration: A week (4-7 days)",
		"- Other Symptoms: Shortness of breath",
		"- Image: Not provided",
	} {
		assert.Contains(t, req.Prompt, want)
	}
	assert.NotContains(t, req.Prompt, "IMAGES PROVIDED")
	assert.Empty(t, req.Images)
	assert.True(t, strings.HasSuffix(req.Prompt, ResponseFormat))
}

func TestBuildRequestPlaceholders(t *testing.T) {
	req, err := BuildRequest(pkg.DefaultDemographics(), []pkg.PainPoint{point("front-head", "Head", 2)})
	require.NoError(t, err)
	assert.Contains(t, req.Prompt, "- Age: Not specified")
	assert.Contains(t, req.Prompt, "- Suspected Cause: Not specified")
	assert.Contains(t, req.Prompt, "- Other Symptoms: None specified")
}

func TestBuildRequestImageOrdinalsFollowAttachmentOrder(t *testing.T) {
	a := point("front-head", "Head", 3)
	b := point("front-upper-chest", "Chest", 5)
	b.Image = pkg.EncodeDataURI("image/png", []byte("png-bytes"))
	c := point("front-left-knee", "Left knee", 8)
	c.Image = pkg.EncodeDataURI("image/jpeg", []byte("jpeg-bytes"))

	req, err := BuildRequest(pkg.DefaultDemographics(), []pkg.PainPoint{a, b, c})
	require.NoError(t, err)

	require.Len(t, req.Images, 2)
	assert.Equal(t, "image/png", req.Images[0].MediaType)
	assert.Equal(t, "image/jpeg", req.Images[1].MediaType)

	head := strings.Index(req.Prompt, "Location: Head")
	img1 := strings.Index(req.Prompt, "Included (Image 1)")
	img2 := strings.Index(req.Prompt, "Included (Image 2)")
	assert.True(t, head < img1 && img1 < img2, "ordinals appear in collection order")
	assert.Contains(t, req.Prompt, "I have included 2 image(s)")
}

func TestDiagnoseNormalisesErrors(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewDiagnosisService(&fakeClient{err: errors.New("weird")}, nil, obs)

	_, err := svc.Diagnose(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)
	assert.Equal(t, llm.CategoryUnknown, llm.CategoryOf(err))
	assert.Equal(t, []Outcome{Outcome(llm.CategoryUnknown)}, obs.outcomes)
}

func TestStartWithoutPointsMakesNoCall(t *testing.T) {
	client := &fakeClient{text: "ok"}
	svc := NewDiagnosisService(client, nil, nil)
	var tr Tracker

	err := svc.Start(context.Background(), &tr, pkg.DefaultDemographics(), nil)
	assert.ErrorIs(t, err, ErrNoPainPoints)
	assert.Equal(t, StateIdle, tr.Snapshot().State)
	assert.Zero(t, client.calls)
}

func TestTrackerLifecycle(t *testing.T) {
	client := &fakeClient{text: "# QUICK SUMMARY\nok", release: make(chan struct{})}
	obs := &recordingObserver{}
	svc := NewDiagnosisService(client, nil, obs)
	var tr Tracker
	points := []pkg.PainPoint{point("front-head", "Head", 4)}

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, svc.Start(ctx, &tr, pkg.DefaultDemographics(), points))
	cancel()
	assert.Equal(t, StatePending, tr.Snapshot().State)
	assert.ErrorIs(t, svc.Start(context.Background(), &tr, pkg.DefaultDemographics(), points), ErrAlreadyPending)

	close(client.release)
	tr.Wait()
	res := tr.Snapshot()
	assert.Equal(t, StateSucceeded, res.State)
	assert.Equal(t, "# QUICK SUMMARY\nok", res.Text)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, []Outcome{OutcomeSuccess}, obs.outcomes)

	client.release = nil
	client.err = llm.FromStatus(429, "slow down", nil)
	require.NoError(t, svc.Start(context.Background(), &tr, pkg.DefaultDemographics(), points))
	tr.Wait()
	res = tr.Snapshot()
	assert.Equal(t, StateFailed, res.State)
	assert.Equal(t, llm.CategoryRateLimit, llm.CategoryOf(res.Err))
	assert.Empty(t, res.Text)
}
