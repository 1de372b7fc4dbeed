package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"painmap/internal/llm"
	"painmap/pkg"
)

// ErrNoPainPoints is returned when a diagnosis is requested for an empty
// collection. No provider call is made.
var ErrNoPainPoints = errors.New("at least one pain point is required for a diagnosis")

// Request is the single outbound payload: the assembled prompt and the image
// attachments in the order they are referenced as "Image N".
type Request struct {
	Prompt string
	Images []pkg.ImageAttachment
}

// BuildRequest assembles the prompt for demo and points. Images are numbered
// by their position among the points that carry a decodable image.
func BuildRequest(demo pkg.Demographics, points []pkg.PainPoint) (Request, error) {
	if len(points) == 0 {
		return Request{}, ErrNoPainPoints
	}

	var req Request
	var list strings.Builder
	for i, p := range points {
		image := notProvided
		if att, ok := p.Attachment(); ok {
			req.Images = append(req.Images, att)
			image = fmt.Sprintf("Included (Image %d)", len(req.Images))
		}
		fmt.Fprintf(&list, "\n%d. Location: %s (%s view)\n", i+1, p.BodyPartName, p.View)
		fmt.Fprintf(&list, "   - Suspected Cause: %s\n", orPlaceholder(p.SuspectedCause, notSpecified))
		fmt.Fprintf(&list, "   - Pain Type: %s\n", p.PainType)
		fmt.Fprintf(&list, "   - Intensity: %d/10\n", p.Intensity)
		fmt.Fprintf(&list, "   - Sensation: %s\n", p.Sensation)
		fmt.Fprintf(&list, "   - Duration: %s\n", p.Duration)
		fmt.Fprintf(&list, "   - Other Symptoms: %s\n", orPlaceholder(p.OtherSymptoms, noneSpecified))
		fmt.Fprintf(&list, "   - Image: %s\n", image)
	}

	var sb strings.Builder
	sb.WriteString(PromptIntro)
	sb.WriteString("\n\nPATIENT INFORMATION:\n")
	fmt.Fprintf(&sb, "- Age: %s\n", orPlaceholder(demo.Age, notSpecified))
	fmt.Fprintf(&sb, "- Gender: %s\n", demo.Gender)
	sb.WriteString("\nPAIN POINTS:\n")
	sb.WriteString(list.String())
	sb.WriteString("\n")
	if len(req.Images) > 0 {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, ImageInstructions, len(req.Images))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(ResponseFormat)

	req.Prompt = sb.String()
	return req, nil
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// Outcome labels a finished diagnosis for observers: "success" or the
// error category.
type Outcome string

const OutcomeSuccess Outcome = "success"

// Observer is notified once per finished diagnosis.
type Observer interface {
	DiagnosisFinished(outcome Outcome, elapsed time.Duration)
}

// DiagnosisService sends diagnosis requests to the configured provider.
type DiagnosisService struct {
	LLM      llm.Client
	Logger   *zap.Logger
	Observer Observer
}

// NewDiagnosisService constructs a DiagnosisService. A nil logger is
// replaced by a no-op logger.
func NewDiagnosisService(client llm.Client, logger *zap.Logger, obs Observer) *DiagnosisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiagnosisService{LLM: client, Logger: logger, Observer: obs}
}

// Diagnose performs one provider call. Errors are always *llm.Error except
// for ErrNoPainPoints.
func (s *DiagnosisService) Diagnose(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	text, err := s.LLM.Diagnose(ctx, req.Prompt, req.Images)
	outcome := OutcomeSuccess
	if err != nil {
		var lerr *llm.Error
		if !errors.As(err, &lerr) {
			lerr = &llm.Error{Category: llm.CategoryUnknown, Message: err.Error(), Cause: err}
		}
		err = lerr
		outcome = Outcome(lerr.Category)
		s.Logger.Error("diagnosis request failed",
			zap.String("provider", s.LLM.Name()),
			zap.String("category", string(lerr.Category)),
			zap.Int("status", lerr.StatusCode),
			zap.String("message", lerr.Message))
	} else {
		s.Logger.Info("diagnosis request completed",
			zap.String("provider", s.LLM.Name()),
			zap.Int("images", len(req.Images)),
			zap.Int("response_chars", len(text)))
	}
	if s.Observer != nil {
		s.Observer.DiagnosisFinished(outcome, time.Since(start))
	}
	return text, err
}

// Start builds the request and, when that succeeds, runs it on t in the
// background. The call is detached from ctx cancellation.
func (s *DiagnosisService) Start(ctx context.Context, t *Tracker, demo pkg.Demographics, points []pkg.PainPoint) error {
	req, err := BuildRequest(demo, points)
	if err != nil {
		return err
	}
	return t.Run(func() (string, error) {
		return s.Diagnose(context.WithoutCancel(ctx), req)
	})
}
