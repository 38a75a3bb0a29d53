package state

import (
	"sync"

	"github.com/BuzzLyutic/kanban-board/internal/model"
)

// Store owns the document. All changes go through Dispatch.
type Store struct {
	mu      sync.Mutex
	doc     model.Document
	reducer *Reducer

	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(model.Document)
}

func NewStore(initial model.Document, reducer *Reducer) *Store {
	return &Store{doc: initial, reducer: reducer}
}

// Snapshot returns the current document. The returned value shares its
// slices with the store and must be treated as read-only.
func (s *Store) Snapshot() model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Dispatch applies the action and returns the resulting document.
// Subscribers run in subscription order before Dispatch returns, and only
// for recognised actions. They must not call back into the store.
func (s *Store) Dispatch(action Action) model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.reducer.Reduce(s.doc, action)
	if !ok {
		return s.doc
	}
	s.doc = next
	for _, sub := range s.subs {
		sub.fn(next)
	}
	return next
}

// Subscribe registers fn for every future transition.
func (s *Store) Subscribe(fn func(model.Document)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscribeLocked(fn)
}

// Watch is Subscribe that also returns the document fn's first call will
// follow, with no transition slipping in between.
func (s *Store) Watch(fn func(model.Document)) (current model.Document, unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc, s.subscribeLocked(fn)
}

func (s *Store) subscribeLocked(fn func(model.Document)) func() {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			subs := make([]subscriber, 0, len(s.subs))
			for _, sub := range s.subs {
				if sub.id != id {
					subs = append(subs, sub)
				}
			}
			s.subs = subs
		})
	}
}
