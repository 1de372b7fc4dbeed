// Package capture is the pain detail form: it edits one pain-point record
// for the selected body part, enforces the required fields and the image
// rules, and hands complete records to the store.
package capture

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"painmap/pkg"
)

// DefaultMaxImageBytes is the upload ceiling for a pain-point image.
const DefaultMaxImageBytes = 5 * 1024 * 1024

// DefaultIntensity is the slider position of a fresh form.
const DefaultIntensity = 5

var (
	ErrNoSelection          = errors.New("no body part selected")
	ErrMissingRequired      = errors.New("pain type, sensation and duration are required")
	ErrImageTooLarge        = errors.New("image size exceeds the upload limit")
	ErrNotAnImage           = errors.New("please upload an image file")
	ErrConfirmationRequired = errors.New("deleting a pain point requires confirmation")
)

// Target is where completed records go.
type Target interface {
	Upsert(ctx context.Context, p pkg.PainPoint)
	Remove(ctx context.Context, bodyPartID string)
}

// State is the form's position in its lifecycle.
type State int

const (
	StateUnselected State = iota
	StateEditing
)

// Fields are the user-editable attributes of a pain point.
type Fields struct {
	SuspectedCause string
	PainType       pkg.PainType
	Intensity      int
	Sensation      pkg.Sensation
	Duration       pkg.Duration
	OtherSymptoms  string
}

// Form edits a single pain point. It is not safe for concurrent use.
type Form struct {
	state         State
	existing      bool
	draft         pkg.PainPoint
	previewToken  string
	previews      *PreviewRegistry
	maxImageBytes int64
}

// NewForm returns an unselected form. maxImageBytes <= 0 selects the default.
func NewForm(previews *PreviewRegistry, maxImageBytes int64) *Form {
	if maxImageBytes <= 0 {
		maxImageBytes = DefaultMaxImageBytes
	}
	if previews == nil {
		previews = NewPreviewRegistry(0)
	}
	return &Form{previews: previews, maxImageBytes: maxImageBytes}
}

func (f *Form) State() State { return f.state }

// Existing reports whether the form was pre-filled from a saved record.
func (f *Form) Existing() bool { return f.existing }

// Draft returns the record as currently edited.
func (f *Form) Draft() pkg.PainPoint { return f.draft }

// Selected returns the body part id being edited, or "".
func (f *Form) Selected() string {
	if f.state != StateEditing {
		return ""
	}
	return f.draft.BodyPartID
}

// PreviewToken addresses the transient preview of the attached image. The
// preview is registered on first use and re-registered if it has expired.
func (f *Form) PreviewToken() string {
	if f.state != StateEditing || !f.draft.HasImage() {
		return ""
	}
	if f.previewToken != "" && f.previews.Live(f.previewToken) {
		return f.previewToken
	}
	mediaType, payload, ok := pkg.ParseDataURI(f.draft.Image)
	if !ok {
		return ""
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ""
	}
	f.previews.Revoke(f.previewToken)
	f.previewToken = f.previews.Register(mediaType, data)
	return f.previewToken
}

// Select opens the form for a body part. When existing is non-nil the form is
// pre-filled from it; otherwise it starts from defaults.
func (f *Form) Select(id, name string, view pkg.View, existing *pkg.PainPoint) {
	f.release()
	f.state = StateEditing
	if existing != nil {
		f.existing = true
		f.draft = *existing
		return
	}
	f.existing = false
	f.draft = pkg.PainPoint{
		BodyPartID:   id,
		BodyPartName: name,
		View:         view,
		Intensity:    DefaultIntensity,
	}
}

// SetFields replaces the editable attributes of the draft.
func (f *Form) SetFields(in Fields) error {
	if f.state != StateEditing {
		return ErrNoSelection
	}
	f.draft.SuspectedCause = strings.TrimSpace(in.SuspectedCause)
	f.draft.PainType = in.PainType
	f.draft.Intensity = in.Intensity
	f.draft.Sensation = in.Sensation
	f.draft.Duration = in.Duration
	f.draft.OtherSymptoms = strings.TrimSpace(in.OtherSymptoms)
	return nil
}

// CanSave reports whether every required field is filled.
func (f *Form) CanSave() bool {
	return f.state == StateEditing &&
		f.draft.PainType != "" &&
		f.draft.Sensation != "" &&
		f.draft.Duration != ""
}

// CheckImage validates an upload against the size and type rules without
// touching the draft, and returns the media type it would be stored as.
func (f *Form) CheckImage(contentType string, data []byte) (string, error) {
	if f.state != StateEditing {
		return "", ErrNoSelection
	}
	if int64(len(data)) > f.maxImageBytes {
		return "", ErrImageTooLarge
	}
	return imageMediaType(contentType, data)
}

// AttachImage validates and stores an image on the draft, replacing any
// previous one.
func (f *Form) AttachImage(contentType string, data []byte) error {
	mediaType, err := f.CheckImage(contentType, data)
	if err != nil {
		return err
	}
	f.release()
	f.draft.Image = pkg.EncodeDataURI(mediaType, data)
	return nil
}

// RemoveImage drops the attached image and revokes its preview.
func (f *Form) RemoveImage() {
	f.release()
	f.draft.Image = ""
}

// Save validates the draft, hands the complete record to target and returns
// the form to the unselected state.
func (f *Form) Save(ctx context.Context, target Target) (pkg.PainPoint, error) {
	if f.state != StateEditing {
		return pkg.PainPoint{}, ErrNoSelection
	}
	if !f.CanSave() {
		return pkg.PainPoint{}, ErrMissingRequired
	}
	if err := f.draft.Validate(); err != nil {
		return pkg.PainPoint{}, fmt.Errorf("invalid pain details: %w", err)
	}
	saved := f.draft
	target.Upsert(ctx, saved)
	f.reset()
	return saved, nil
}

// Cancel discards the draft.
func (f *Form) Cancel() { f.reset() }

// Delete removes the selected record once the user has confirmed, and
// clears the selection.
func (f *Form) Delete(ctx context.Context, target Target, confirmed bool) error {
	if f.state != StateEditing {
		return ErrNoSelection
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	target.Remove(ctx, f.draft.BodyPartID)
	f.reset()
	return nil
}

func (f *Form) reset() {
	f.release()
	f.state = StateUnselected
	f.existing = false
	f.draft = pkg.PainPoint{}
}

func (f *Form) release() {
	f.previews.Revoke(f.previewToken)
	f.previewToken = ""
}

// imageMediaType checks the declared type and the sniffed content. Content
// that sniffs as a non-image type is rejected even if declared as an image.
func imageMediaType(declared string, data []byte) (string, error) {
	declared = strings.ToLower(strings.TrimSpace(strings.SplitN(declared, ";", 2)[0]))
	if !strings.HasPrefix(declared, "image/") {
		return "", ErrNotAnImage
	}
	sniffed := http.DetectContentType(data)
	switch {
	case strings.HasPrefix(sniffed, "image/"):
		return sniffed, nil
	case sniffed == "application/octet-stream":
		return declared, nil
	default:
		return "", ErrNotAnImage
	}
}
