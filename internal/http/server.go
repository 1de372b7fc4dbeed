// Package http is the web surface: a server-rendered page whose fragments
// are swapped in with HTMX, scoped per browser profile by a cookie.
package http

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"painmap/internal/capture"
	"painmap/internal/core"
	"painmap/internal/export"
	"painmap/internal/metrics"
	"painmap/internal/store"
	"painmap/pkg"
)

// sessionLoadTimeout bounds the first read of a profile's stored points.
const sessionLoadTimeout = 10 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

// Options are the dependencies of a Server. Archiver, Metrics and
// CORSOrigins are optional.
type Options struct {
	Storage       store.Storage
	Diagnosis     *core.DiagnosisService
	Archiver      export.Archiver
	Metrics       *metrics.Collector
	Logger        *zap.Logger
	MaxImageBytes int64
	CORSOrigins   []string
}

// Server bundles together the dependencies required by HTTP handlers. It
// implements http.Handler so it can be passed to http.ListenAndServe.
type Server struct {
	Storage       store.Storage
	Diagnosis     *core.DiagnosisService
	Archiver      export.Archiver
	Metrics       *metrics.Collector
	Logger        *zap.Logger
	Templates     *template.Template
	Previews      *capture.PreviewRegistry
	MaxImageBytes int64

	sessions *sessionRegistry
	router   http.Handler
	now      func() time.Time
}

// NewServer constructs a Server and its routes. Templates are embedded in
// the binary.
func NewServer(opts Options) (*Server, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.MaxImageBytes <= 0 {
		opts.MaxImageBytes = capture.DefaultMaxImageBytes
	}
	s := &Server{
		Storage:       opts.Storage,
		Diagnosis:     opts.Diagnosis,
		Archiver:      opts.Archiver,
		Metrics:       opts.Metrics,
		Logger:        opts.Logger,
		Templates:     tmpl,
		Previews:      capture.NewPreviewRegistry(0),
		MaxImageBytes: opts.MaxImageBytes,
		now:           time.Now,
	}
	s.sessions = newSessionRegistry(s.openSession)
	s.router = s.routes(opts.CORSOrigins)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.Logger))
	if s.Metrics != nil {
		r.Use(requestCounter(s.Metrics))
	}
	if len(corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "HX-Request", "HX-Target", "HX-Current-URL"},
			ExposedHeaders:   []string{"X-Request-ID", "HX-Trigger", ReportURLHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handlePage)
	r.Get("/bodymap/{view}", s.handleBodyMap)

	r.Route("/painpoints", func(r chi.Router) {
		r.Get("/", s.handleListPainPoints)
		r.Post("/", s.handleSavePainPoint)
		r.Post("/cancel", s.handleCancel)
		r.Post("/clear", s.handleClear)
		r.Get("/{id}/form", s.handleSelect)
		r.Delete("/{id}", s.handleDelete)
	})

	r.Get("/previews/{token}", s.handlePreview)
	r.Put("/demographics", s.handleDemographics)

	r.Post("/diagnosis", s.handleRequestDiagnosis)
	r.Get("/diagnosis", s.handleDiagnosis)
	r.Get("/diagnosis/print", s.handlePrint)

	r.Get("/export", s.handleExport)

	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}
	return r
}

// openSession loads a profile's pain points from durable storage. The read
// is detached from the request so a disconnecting client cannot cut it short.
func (s *Server) openSession(ctx context.Context, profileID string) (*Session, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sessionLoadTimeout)
	defer cancel()

	logger := s.Logger.With(zap.String("profile", profileID))
	opts := []store.Option{store.WithLogger(logger)}
	if s.Metrics != nil {
		opts = append(opts, store.WithObserver(s.Metrics))
	}
	st, err := store.Load(ctx, s.Storage, store.Key(profileID), opts...)
	if err != nil {
		return nil, err
	}
	return &Session{
		ProfileID:    profileID,
		Store:        st,
		Form:         capture.NewForm(s.Previews, s.MaxImageBytes),
		Demographics: pkg.DefaultDemographics(),
	}, nil
}

// session returns the caller's session, creating the profile cookie on the
// first visit. When the stored collection cannot be read it answers 503 and
// reports false.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := profileID(w, r)
	sess, err := s.sessions.get(r.Context(), id)
	if err != nil {
		s.Logger.Error("failed to load session", zap.String("profile", id), zap.Error(err))
		http.Error(w, "stored pain points are temporarily unavailable, please retry", http.StatusServiceUnavailable)
		return nil, false
	}
	return sess, true
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		s.Logger.Error("failed to render template", zap.String("template", name), zap.Error(err))
	}
}
