package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"painmap/internal/bodymap"
	"painmap/internal/capture"
	"painmap/internal/core"
	"painmap/internal/export"
	"painmap/internal/store"
	"painmap/pkg"
)

// ReportURLHeader carries the presigned link of an archived report.
const ReportURLHeader = "X-Report-URL"

// changedTrigger tells HTMX listeners to refresh the body maps and summary.
const changedTrigger = "painpoints-changed"

// multipartOverhead is allowed on top of the image ceiling for the other
// form fields.
const multipartOverhead = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePage renders the whole application page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	points := sess.Store.All()

	sess.Lock()
	selected := sess.Form.Selected()
	data := pageView{
		Demographics: sess.Demographics,
		Genders:      []pkg.Gender{pkg.GenderMale, pkg.GenderFemale},
		Points:       points,
		Form:         newFormView(sess.Form, ""),
	}
	sess.Unlock()

	data.Front, _ = newBodyMapView(pkg.ViewFront, points, selected)
	data.Back, _ = newBodyMapView(pkg.ViewBack, points, selected)
	data.Diagnosis = newDiagnosisView(sess.Tracker.Snapshot(), len(points))
	s.render(w, http.StatusOK, "page.html", data)
}

// handleBodyMap renders one diagram with its marked and selected regions.
func (s *Server) handleBodyMap(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	selected := sess.Form.Selected()
	sess.Unlock()

	v, ok := newBodyMapView(pkg.View(chi.URLParam(r, "view")), sess.Store.All(), selected)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.render(w, http.StatusOK, "bodymap", v)
}

func (s *Server) handleListPainPoints(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if r.Header.Get("HX-Request") == "true" {
		s.render(w, http.StatusOK, "summary", sess.Store.All())
		return
	}
	writeJSON(w, http.StatusOK, sess.Store.All())
}

// handleSelect opens the detail form for a clicked region.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	ok = bodymap.Click(chi.URLParam(r, "id"), func(id, name string, view pkg.View) {
		var existing *pkg.PainPoint
		if p, found := sess.Store.Get(id); found {
			existing = &p
		}
		sess.Form.Select(id, name, view, existing)
	})
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("HX-Trigger", changedTrigger)
	s.render(w, http.StatusOK, "form", newFormView(sess.Form, ""))
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	sess.Form.Cancel()
	w.Header().Set("HX-Trigger", changedTrigger)
	s.render(w, http.StatusOK, "form", newFormView(sess.Form, ""))
}

// handleSavePainPoint applies the submitted fields and optional image to the
// active form and saves it.
func (s *Server) handleSavePainPoint(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	r.Body = http.MaxBytesReader(w, r.Body, s.MaxImageBytes+multipartOverhead)
	if err := r.ParseMultipartForm(s.MaxImageBytes + multipartOverhead); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.formError(w, sess, http.StatusRequestEntityTooLarge, capture.ErrImageTooLarge)
			return
		}
		s.formError(w, sess, http.StatusBadRequest, err)
		return
	}

	// The upload is checked before anything is applied so a rejected image
	// leaves the draft as it was.
	var upload []byte
	var uploadType string
	if file, header, err := r.FormFile("image"); err == nil {
		data, readErr := io.ReadAll(io.LimitReader(file, s.MaxImageBytes+1))
		file.Close()
		if readErr != nil {
			s.formError(w, sess, http.StatusBadRequest, readErr)
			return
		}
		if _, err := sess.Form.CheckImage(header.Header.Get("Content-Type"), data); err != nil {
			s.formError(w, sess, imageErrorStatus(err), err)
			return
		}
		upload, uploadType = data, header.Header.Get("Content-Type")
	}

	intensity, _ := strconv.Atoi(r.FormValue("intensity"))
	err := sess.Form.SetFields(capture.Fields{
		SuspectedCause: r.FormValue("suspectedCause"),
		PainType:       pkg.PainType(r.FormValue("painType")),
		Intensity:      intensity,
		Sensation:      pkg.Sensation(r.FormValue("sensation")),
		Duration:       pkg.Duration(r.FormValue("duration")),
		OtherSymptoms:  r.FormValue("otherSymptoms"),
	})
	if err != nil {
		s.formError(w, sess, http.StatusConflict, err)
		return
	}
	if r.FormValue("removeImage") == "true" {
		sess.Form.RemoveImage()
	}
	if upload != nil {
		if err := sess.Form.AttachImage(uploadType, upload); err != nil {
			s.formError(w, sess, imageErrorStatus(err), err)
			return
		}
	}

	saved, err := sess.Form.Save(r.Context(), sess.Store)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, capture.ErrNoSelection) {
			status = http.StatusConflict
		}
		s.formError(w, sess, status, err)
		return
	}
	s.Logger.Debug("pain point saved",
		zap.String("profile", sess.ProfileID),
		zap.String("bodyPartId", saved.BodyPartID),
		zap.Bool("image", saved.HasImage()))
	w.Header().Set("HX-Trigger", changedTrigger)
	s.render(w, http.StatusOK, "form", newFormView(sess.Form, ""))
}

func imageErrorStatus(err error) int {
	switch {
	case errors.Is(err, capture.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, capture.ErrNotAnImage):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, capture.ErrNoSelection):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// formError re-renders the form with err. The session must be locked.
func (s *Server) formError(w http.ResponseWriter, sess *Session, status int, err error) {
	s.render(w, status, "form", newFormView(sess.Form, err.Error()))
}

// handleDelete removes one pain point. Deleting the record open in the form
// also closes the form.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	confirmed := confirmedQuery(r)

	sess.Lock()
	defer sess.Unlock()

	if _, ok := sess.Store.Get(id); !ok {
		http.NotFound(w, r)
		return
	}
	if sess.Form.Selected() == id {
		if err := sess.Form.Delete(r.Context(), sess.Store, confirmed); err != nil {
			s.formError(w, sess, http.StatusPreconditionRequired, err)
			return
		}
	} else {
		if !confirmed {
			http.Error(w, capture.ErrConfirmationRequired.Error(), http.StatusPreconditionRequired)
			return
		}
		sess.Store.Remove(r.Context(), id)
	}
	w.Header().Set("HX-Trigger", changedTrigger)
	s.render(w, http.StatusOK, "form", newFormView(sess.Form, ""))
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := sess.Store.Clear(r.Context(), confirmedQuery(r)); err != nil {
		if errors.Is(err, store.ErrConfirmationRequired) {
			http.Error(w, err.Error(), http.StatusPreconditionRequired)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sess.Lock()
	sess.Form.Cancel()
	sess.Unlock()

	w.Header().Set("HX-Trigger", changedTrigger)
	s.render(w, http.StatusOK, "summary", []pkg.PainPoint{})
}

func confirmedQuery(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}

// handlePreview serves a transient image preview.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	mediaType, data, ok := s.Previews.Open(chi.URLParam(r, "token"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

func (s *Server) handleDemographics(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	demo := pkg.Demographics{
		Age:    strings.TrimSpace(r.FormValue("age")),
		Gender: pkg.Gender(r.FormValue("gender")),
	}
	if err := demo.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	sess.Lock()
	sess.Demographics = demo
	sess.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// handleRequestDiagnosis starts the single outstanding diagnosis request.
func (s *Server) handleRequestDiagnosis(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	points := sess.Store.All()
	sess.Lock()
	demo := sess.Demographics
	sess.Unlock()

	err := s.Diagnosis.Start(r.Context(), &sess.Tracker, demo, points)
	switch {
	case errors.Is(err, core.ErrNoPainPoints):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case errors.Is(err, core.ErrAlreadyPending):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.Logger.Info("diagnosis requested",
		zap.String("profile", sess.ProfileID),
		zap.Int("painPoints", len(points)))
	s.render(w, http.StatusAccepted, "diagnosis", newDiagnosisView(sess.Tracker.Snapshot(), len(points)))
}

func (s *Server) handleDiagnosis(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.render(w, http.StatusOK, "diagnosis", newDiagnosisView(sess.Tracker.Snapshot(), sess.Store.Len()))
}

// handlePrint renders the results as a standalone printable page.
func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	v := newDiagnosisView(sess.Tracker.Snapshot(), sess.Store.Len())
	status := http.StatusOK
	if !v.Succeeded {
		status = http.StatusNotFound
	}
	s.render(w, status, "print.html", v)
}

// handleExport downloads the pain report, archiving a copy when an archiver
// is configured.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	demo := sess.Demographics
	sess.Unlock()

	now := s.now()
	report := export.Build(now, demo, sess.Store.All())
	body, err := report.Marshal()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	filename := export.Filename(now)

	if s.Archiver != nil {
		url, err := s.Archiver.Archive(r.Context(), sess.ProfileID, filename, body)
		if err != nil {
			s.Logger.Warn("failed to archive report", zap.String("profile", sess.ProfileID), zap.Error(err))
		} else {
			w.Header().Set(ReportURLHeader, url)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
