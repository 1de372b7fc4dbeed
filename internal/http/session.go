package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"painmap/internal/capture"
	"painmap/internal/core"
	"painmap/internal/store"
	"painmap/pkg"
)

// ProfileCookie identifies the browser a session belongs to.
const ProfileCookie = "painmap_profile"

const profileMaxAge = 365 * 24 * 60 * 60

// Session is the page state of one browser profile. The store is loaded once
// when the session is first seen; mu guards Form and Demographics.
type Session struct {
	ProfileID string
	Store     *store.Store
	Tracker   core.Tracker

	mu           sync.Mutex
	Form         *capture.Form
	Demographics pkg.Demographics
}

// Lock serialises edits to the form and demographics.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	open     func(ctx context.Context, profileID string) (*Session, error)
}

func newSessionRegistry(open func(ctx context.Context, profileID string) (*Session, error)) *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*Session), open: open}
}

// get returns the session for profileID, loading it on first use. A session
// that failed to load is not cached, so the next request retries. The load
// runs outside the registry lock; when two requests race, the first stored
// session wins.
func (r *sessionRegistry) get(ctx context.Context, profileID string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[profileID]
	r.mu.Unlock()
	if ok {
		return s, nil
	}

	loaded, err := r.open(ctx, profileID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[profileID]; ok {
		return s, nil
	}
	r.sessions[profileID] = loaded
	return loaded, nil
}

// profileID reads the profile cookie, issuing a new id when it is missing
// or malformed.
func profileID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(ProfileCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     ProfileCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   profileMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
