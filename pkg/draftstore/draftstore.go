package draftstore

import (
	"context"
	"encoding/json"
	"sync"

	"formly.backend/pkg/logger"
	"go.uber.org/zap"
)

// Backend is the raw key-value layer a Store persists drafts into.
// Implementations must treat a missing key as ErrKeyNotFound, not as a failure.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// Store persists partially-filled drafts under string namespaces.
//
// Saves are shallow merges: keys in the partial record win over previously
// stored keys, untouched keys survive. Every operation is best-effort and
// never returns an error; a draft that fails to persist is recoverable by the
// user re-entering data, so storage failures must never propagate.
type Store struct {
	mu      sync.Mutex
	backend Backend
}

// New creates a draft store over the given backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load returns the draft stored under ns, or an empty record when the
// namespace is absent, unreadable or corrupt.
func (s *Store) Load(ctx context.Context, ns string) map[string]json.RawMessage {
	if s == nil || s.backend == nil {
		return map[string]json.RawMessage{}
	}

	raw, err := s.backend.Get(ctx, ns)
	if err != nil {
		if err != ErrKeyNotFound {
			logger.Debug(ctx, "draft load failed", zap.String("namespace", ns), zap.Error(err))
		}
		return map[string]json.RawMessage{}
	}

	record := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		logger.Debug(ctx, "draft record corrupt", zap.String("namespace", ns), zap.Error(err))
		return map[string]json.RawMessage{}
	}
	return record
}

// Save shallow-merges partial over the stored record and writes the result
// back. The load-merge-write runs under the store mutex so in-process readers
// never observe a half-merged record.
func (s *Store) Save(ctx context.Context, ns string, partial map[string]json.RawMessage) {
	if s == nil || s.backend == nil || len(partial) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.Load(ctx, ns)
	for k, v := range partial {
		merged[k] = v
	}

	data, err := json.Marshal(merged)
	if err != nil {
		logger.Debug(ctx, "draft serialize failed", zap.String("namespace", ns), zap.Error(err))
		return
	}
	if err := s.backend.Set(ctx, ns, string(data)); err != nil {
		logger.Debug(ctx, "draft save failed", zap.String("namespace", ns), zap.Error(err))
	}
}

// Clear removes the draft stored under ns.
func (s *Store) Clear(ctx context.Context, ns string) {
	if s == nil || s.backend == nil {
		return
	}
	if err := s.backend.Del(ctx, ns); err != nil && err != ErrKeyNotFound {
		logger.Debug(ctx, "draft clear failed", zap.String("namespace", ns), zap.Error(err))
	}
}

// LoadJSON unmarshals the whole record stored under ns into v.
func (s *Store) LoadJSON(ctx context.Context, ns string, v interface{}) {
	record := s.Load(ctx, ns)
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Debug(ctx, "draft decode failed", zap.String("namespace", ns), zap.Error(err))
	}
}

// SaveJSON marshals partial (a struct or map) through the record form and
// shallow-merges it, so only its top-level keys are replaced.
func (s *Store) SaveJSON(ctx context.Context, ns string, partial interface{}) {
	data, err := json.Marshal(partial)
	if err != nil {
		logger.Debug(ctx, "draft serialize failed", zap.String("namespace", ns), zap.Error(err))
		return
	}
	record := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &record); err != nil {
		logger.Debug(ctx, "draft partial not a record", zap.String("namespace", ns), zap.Error(err))
		return
	}
	s.Save(ctx, ns, record)
}

// Flag reads a boolean marker stored under its own key (no merging).
func (s *Store) Flag(ctx context.Context, key string) bool {
	if s == nil || s.backend == nil {
		return false
	}
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		return false
	}
	return raw == "true"
}

// SetFlag writes a boolean marker under its own key.
func (s *Store) SetFlag(ctx context.Context, key string, value bool) {
	if s == nil || s.backend == nil {
		return
	}
	v := "false"
	if value {
		v = "true"
	}
	if err := s.backend.Set(ctx, key, v); err != nil {
		logger.Debug(ctx, "flag save failed", zap.String("key", key), zap.Error(err))
	}
}
