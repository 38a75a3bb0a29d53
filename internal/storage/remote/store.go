package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/kanban-board/internal/model"
)

// RequestTimeout bounds each backend call.
const RequestTimeout = 10 * time.Second

// Store loads and saves the document as one remote record. A Store without
// a backend is unconfigured: loads find nothing and saves do nothing.
type Store struct {
	backend Backend
	id      string
	logger  *zap.Logger
}

func NewStore(backend Backend, id string, logger *zap.Logger) *Store {
	if id == "" {
		id = DefaultID
	}
	return &Store{backend: backend, id: id, logger: logger}
}

func (s *Store) Configured() bool {
	return s.backend != nil
}

// Load returns the remote document, or nil when the backend is unconfigured,
// the record is absent or null, or anything goes wrong. Errors are only logged.
func (s *Store) Load(ctx context.Context) *model.Document {
	if s.backend == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	data, err := s.backend.Get(ctx, s.id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Error("failed to load remote state", zap.String("id", s.id), zap.Error(err))
		return nil
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("failed to decode remote state", zap.String("id", s.id), zap.Error(err))
		return nil
	}
	return &doc
}

// Save upserts the record with no dirty check or conflict detection.
func (s *Store) Save(ctx context.Context, doc model.Document) {
	if s.backend == nil {
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error("failed to encode remote state", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	if err := s.backend.Put(ctx, s.id, data); err != nil {
		s.logger.Error("failed to save remote state", zap.String("id", s.id), zap.Error(err))
	}
}
