package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painmap/pkg"
)

var exportTime = time.Date(2025, 3, 9, 14, 5, 7, 0, time.UTC)

func TestBuildReport(t *testing.T) {
	points := []pkg.PainPoint{{
		BodyPartID:     "back-lower",
		BodyPartName:   "Lower back",
		View:           pkg.ViewBack,
		SuspectedCause: "Gardening",
		PainType:       pkg.PainChronic,
		Intensity:      6,
		Sensation:      pkg.SensationAching,
		Duration:       pkg.DurationMonth,
		Image:          pkg.EncodeDataURI("image/png", []byte("secret")),
	}}

	r := Build(exportTime, pkg.DefaultDemographics(), points)
	assert.Equal(t, "2025-03-09T14:05:07.000Z", r.ExportDate)
	assert.Equal(t, "Not specified", r.Age)
	assert.Equal(t, pkg.GenderMale, r.Gender)
	assert.Equal(t, 1, r.TotalPainPoints)

	raw, err := r.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "base64")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	p := decoded["painPoints"].([]any)[0].(map[string]any)
	assert.Equal(t, "Lower back", p["bodyPart"])
	assert.Equal(t, "back", p["view"])
	assert.EqualValues(t, 6, p["intensity"])
	assert.NotContains(t, p, "image")
}

func TestBuildEmptyReport(t *testing.T) {
	r := Build(exportTime, pkg.Demographics{Age: "51", Gender: pkg.GenderFemale}, nil)
	raw, err := r.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"painPoints": []`)
	assert.Equal(t, "51", r.Age)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "pain-report-2025-03-09.json", Filename(exportTime))
}

type fakeS3 struct {
	key  string
	body []byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.key = *in.Key
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) PresignGetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return &v4.PresignedHTTPRequest{URL: "https://bucket.example/" + *in.Key + "?sig=1"}, nil
}

func TestS3Archiver(t *testing.T) {
	fake := &fakeS3{}
	a := &S3Archiver{Bucket: "reports", client: fake, presigner: fake}

	url, err := a.Archive(context.Background(), "profile-1", "pain-report-2025-03-09.json", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "reports/profile-1/pain-report-2025-03-09.json", fake.key)
	assert.Equal(t, []byte(`{}`), fake.body)
	assert.Contains(t, url, fake.key)

	fake.err = errors.New("access denied")
	_, err = a.Archive(context.Background(), "profile-1", "x.json", nil)
	assert.ErrorContains(t, err, "access denied")
}
