package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/kanban-board/internal/model"
	"github.com/BuzzLyutic/kanban-board/internal/state"
	"github.com/BuzzLyutic/kanban-board/internal/transfer"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrOutOfBounds = errors.New("no column in that direction")
)

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// RemoteLoader fetches the remote document. nil means nothing to apply.
type RemoteLoader interface {
	Load(ctx context.Context) *model.Document
}

type BoardService struct {
	store  *state.Store
	remote RemoteLoader
	logger *zap.Logger
	now    func() time.Time

	closed atomic.Bool
	wg     sync.WaitGroup
}

func NewBoardService(store *state.Store, remote RemoteLoader, logger *zap.Logger) *BoardService {
	return &BoardService{
		store:  store,
		remote: remote,
		logger: logger,
		now:    time.Now,
	}
}

func (s *BoardService) Dispatch(action state.Action) model.Document {
	return s.store.Dispatch(action)
}

func (s *BoardService) Snapshot() model.Document {
	return s.store.Snapshot()
}

// VisibleTasks lists the board's unarchived tasks matching filter. An empty
// filter falls back to the document's current one.
func (s *BoardService) VisibleTasks(boardID, filter string) ([]model.Task, error) {
	doc := s.store.Snapshot()
	board, ok := doc.Board(boardID)
	if !ok {
		return nil, ErrNotFound
	}
	if filter == "" {
		filter = doc.Filter
	}
	return board.VisibleTasks(filter), nil
}

// MoveTask shifts a task one column left or right.
func (s *BoardService) MoveTask(boardID, taskID string, dir Direction) (model.Document, error) {
	board, task, err := s.lookup(boardID, taskID)
	if err != nil {
		return model.Document{}, err
	}

	var step int
	switch dir {
	case DirectionLeft:
		step = -1
	case DirectionRight:
		step = 1
	default:
		return model.Document{}, ErrValidation
	}

	target := board.ColumnIndex(task.ColumnID) + step
	if target < 0 || target >= len(board.Columns) {
		return model.Document{}, ErrOutOfBounds
	}

	return s.store.Dispatch(state.MoveTask{
		BoardID:        boardID,
		TaskID:         taskID,
		TargetColumnID: board.Columns[target].ID,
	}), nil
}

// CompleteTask moves a task to the board's last column.
func (s *BoardService) CompleteTask(boardID, taskID string) (model.Document, error) {
	board, _, err := s.lookup(boardID, taskID)
	if err != nil {
		return model.Document{}, err
	}
	if len(board.Columns) == 0 {
		return model.Document{}, ErrOutOfBounds
	}

	return s.store.Dispatch(state.MoveTask{
		BoardID:        boardID,
		TaskID:         taskID,
		TargetColumnID: board.Columns[len(board.Columns)-1].ID,
	}), nil
}

func (s *BoardService) lookup(boardID, taskID string) (model.Board, model.Task, error) {
	board, ok := s.store.Snapshot().Board(boardID)
	if !ok {
		return model.Board{}, model.Task{}, ErrNotFound
	}
	task, ok := board.Task(taskID)
	if !ok {
		return model.Board{}, model.Task{}, ErrNotFound
	}
	return board, task, nil
}

// Hydrate loads the remote document in the background and imports it when
// it arrives. The returned channel closes once the load has finished.
// After Close the result is still fetched but no longer applied.
func (s *BoardService) Hydrate(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	if s.remote == nil {
		close(done)
		return done
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(done)

		doc := s.remote.Load(ctx)
		if doc == nil {
			return
		}
		if s.closed.Load() {
			s.logger.Debug("dropping remote state, service closed")
			return
		}
		s.store.Dispatch(state.ImportState{Document: *doc})
		s.logger.Info("remote state applied", zap.Int("boards", len(doc.Boards)))
	}()
	return done
}

// Close stops pending hydrations from applying and waits for them to return.
func (s *BoardService) Close() {
	s.closed.Store(true)
	s.wg.Wait()
}

// Import replaces the boards with those read from r. Nothing changes when
// the input is rejected.
func (s *BoardService) Import(r io.Reader) (model.Document, error) {
	doc, err := transfer.Import(r)
	if err != nil {
		return model.Document{}, err
	}
	return s.store.Dispatch(state.ImportState{Document: doc}), nil
}

func (s *BoardService) Export(w io.Writer) error {
	return transfer.Export(w, s.store.Snapshot())
}

// ExportFileName is today's backup file name.
func (s *BoardService) ExportFileName() string {
	return transfer.FileName(s.now())
}
