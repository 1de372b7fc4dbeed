package capture

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultPreviewTTL is how long an unused preview stays addressable.
const DefaultPreviewTTL = 15 * time.Minute

type preview struct {
	mediaType string
	data      []byte
	expires   time.Time
}

// PreviewRegistry holds transient image previews addressed by an opaque
// token. A revoked or expired token no longer resolves; expired entries are
// swept whenever the registry is used, so previews of abandoned forms do not
// pin their image bytes.
type PreviewRegistry struct {
	mu    sync.Mutex
	items map[string]preview
	ttl   time.Duration
	now   func() time.Time
}

// NewPreviewRegistry returns an empty registry. ttl <= 0 selects
// DefaultPreviewTTL.
func NewPreviewRegistry(ttl time.Duration) *PreviewRegistry {
	if ttl <= 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewRegistry{items: make(map[string]preview), ttl: ttl, now: time.Now}
}

// Register stores an image and returns its token.
func (r *PreviewRegistry) Register(mediaType string, data []byte) string {
	token := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.sweep(now)
	r.items[token] = preview{mediaType: mediaType, data: data, expires: now.Add(r.ttl)}
	return token
}

// Open returns the image behind token and extends its lifetime.
func (r *PreviewRegistry) Open(token string) (mediaType string, data []byte, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.sweep(now)
	p, ok := r.items[token]
	if !ok {
		return "", nil, false
	}
	p.expires = now.Add(r.ttl)
	r.items[token] = p
	return p.mediaType, p.data, true
}

// Live reports whether token still resolves.
func (r *PreviewRegistry) Live(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[token]
	return ok && r.now().Before(p.expires)
}

// Revoke releases token. Unknown tokens are ignored.
func (r *PreviewRegistry) Revoke(token string) {
	if token == "" {
		return
	}
	r.mu.Lock()
	delete(r.items, token)
	r.mu.Unlock()
}

// Len reports how many previews are held, expired ones included until the
// next sweep.
func (r *PreviewRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// sweep drops expired entries. r.mu must be held.
func (r *PreviewRegistry) sweep(now time.Time) {
	for token, p := range r.items {
		if !now.Before(p.expires) {
			delete(r.items, token)
		}
	}
}
