// Package store holds the ordered pain-point collection for one profile and
// mirrors it into durable key-value storage. It is the only component that
// reads or writes the storage entry.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"painmap/pkg"
)

// KeyPrefix is prepended to the profile id to form the storage key.
const KeyPrefix = "painPoints"

// ErrConfirmationRequired is returned by Clear when the caller has not
// confirmed the destructive action.
var ErrConfirmationRequired = errors.New("clearing all pain points requires confirmation")

// Storage is a durable string-keyed blob store. Get reports found=false
// when the key is absent.
type Storage interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Observer receives mutation events, e.g. for metrics.
type Observer interface {
	StoreMutation(op string)
	StoreWriteFailed()
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for degraded reads and failed writes.
func WithLogger(l *zap.Logger) Option { return func(s *Store) { s.logger = l } }

// WithObserver registers an observer for mutations.
func WithObserver(o Observer) Option { return func(s *Store) { s.observer = o } }

// Store is an insertion-ordered collection of pain points keyed by body part
// id. Every mutation rewrites the whole collection to storage.
type Store struct {
	mu       sync.RWMutex
	storage  Storage
	key      string
	points   []pkg.PainPoint
	logger   *zap.Logger
	observer Observer
}

// Key returns the storage key for a profile.
func Key(profileID string) string {
	if profileID == "" {
		return KeyPrefix
	}
	return KeyPrefix + ":" + profileID
}

// Load reads the collection stored under key. Absent or malformed data
// yields an empty store. A failed read is returned so the caller can retry
// instead of overwriting the stored entry with an empty collection.
func Load(ctx context.Context, storage Storage, key string, opts ...Option) (*Store, error) {
	s := &Store{storage: storage, key: key, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	raw, found, err := storage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read pain points for %s: %w", key, err)
	}
	if !found || len(raw) == 0 {
		return s, nil
	}
	var stored []pkg.PainPoint
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.logger.Warn("stored pain points are malformed, starting empty",
			zap.String("key", key), zap.Error(err))
		return s, nil
	}
	for _, p := range stored {
		if p.BodyPartID == "" {
			continue
		}
		s.put(p)
	}
	return s, nil
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []pkg.PainPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]pkg.PainPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of pain points.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.points)
}

// Get returns the pain point for a body part id.
func (s *Store) Get(bodyPartID string) (pkg.PainPoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(bodyPartID); i >= 0 {
		return s.points[i], true
	}
	return pkg.PainPoint{}, false
}

// Upsert inserts p, or replaces the existing record with the same id
// entirely, then persists the collection.
func (s *Store) Upsert(ctx context.Context, p pkg.PainPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(p)
	s.persist(ctx, "upsert")
}

// Remove deletes the record with the given id if present, then persists.
func (s *Store) Remove(ctx context.Context, bodyPartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(bodyPartID); i >= 0 {
		s.points = append(s.points[:i], s.points[i+1:]...)
	}
	s.persist(ctx, "remove")
}

// Clear empties the collection and deletes the storage entry. The caller must
// pass confirmed=true once the user has acknowledged the action.
func (s *Store) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = nil
	s.notify("clear")
	if err := s.storage.Delete(ctx, s.key); err != nil {
		s.writeFailed(err)
	}
	return nil
}

func (s *Store) put(p pkg.PainPoint) {
	if i := s.index(p.BodyPartID); i >= 0 {
		s.points[i] = p
		return
	}
	s.points = append(s.points, p)
}

func (s *Store) index(bodyPartID string) int {
	for i := range s.points {
		if s.points[i].BodyPartID == bodyPartID {
			return i
		}
	}
	return -1
}

// persist writes the full collection. Failures are logged and counted but not
// returned.
func (s *Store) persist(ctx context.Context, op string) {
	s.notify(op)
	points := s.points
	if points == nil {
		points = []pkg.PainPoint{}
	}
	raw, err := json.Marshal(points)
	if err != nil {
		s.writeFailed(err)
		return
	}
	if err := s.storage.Put(ctx, s.key, raw); err != nil {
		s.writeFailed(err)
	}
}

func (s *Store) notify(op string) {
	if s.observer != nil {
		s.observer.StoreMutation(op)
	}
}

func (s *Store) writeFailed(err error) {
	s.logger.Error("failed to persist pain points", zap.String("key", s.key), zap.Error(err))
	if s.observer != nil {
		s.observer.StoreWriteFailed()
	}
}
