// Package local keeps the document in a single named slot of a local
// key/value byte store.
package local

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/kanban-board/internal/model"
)

// DefaultKey is the slot the document lives in.
const DefaultKey = "kanban-app-state"

// KV is the byte store the document is written to.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

type Store struct {
	kv     KV
	key    string
	logger *zap.Logger
}

func NewStore(kv KV, key string, logger *zap.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: kv, key: key, logger: logger}
}

// Load reads the slot and decodes it over the default document, so fields
// missing from the stored JSON keep their defaults. A missing slot or an
// undecodable value reports false.
func (s *Store) Load() (model.Document, bool) {
	data, err := s.kv.Get(s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("failed to read local state", zap.String("key", s.key), zap.Error(err))
		}
		return model.Document{}, false
	}

	doc := model.DefaultDocument()
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("discarding unreadable local state", zap.String("key", s.key), zap.Error(err))
		return model.Document{}, false
	}
	return doc, true
}

// Save writes the document. Failures are logged, never returned.
func (s *Store) Save(_ context.Context, doc model.Document) {
	data, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error("failed to encode state", zap.Error(err))
		return
	}
	if err := s.kv.Set(s.key, data); err != nil {
		s.logger.Error("failed to save state", zap.String("key", s.key), zap.Error(err))
	}
}
