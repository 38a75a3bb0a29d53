package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/kanban-board/internal/model"
	"github.com/BuzzLyutic/kanban-board/internal/service"
	"github.com/BuzzLyutic/kanban-board/internal/state"
	"github.com/BuzzLyutic/kanban-board/pkg/respond"
)

// MaxImportSize caps backup uploads.
const MaxImportSize = 10 << 20

type BoardHandler struct {
	service *service.BoardService
	users   []string
	logger  *zap.Logger
}

// Options is the payload of GET /api/options.
type Options struct {
	Users       []string      `json:"users"`
	Filters     []string      `json:"filters"`
	BoardColors []string      `json:"boardColors"`
	Themes      []model.Theme `json:"themes"`
}

func NewBoardHandler(srv *service.BoardService, users []string, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{
		service: srv,
		users:   users,
		logger:  logger,
	}
}

func (h *BoardHandler) State(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, h.service.Snapshot())
}

func (h *BoardHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "failed to read body")
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	action, err := state.DecodeAction(body)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	doc := h.service.Dispatch(action)
	h.logger.Debug("action dispatched", zap.String("type", action.Type()))
	respond.JSON(w, r, http.StatusOK, doc)
}

func (h *BoardHandler) Options(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, Options{
		Users:       model.Users(h.users),
		Filters:     model.FilterOptions(h.users),
		BoardColors: model.BoardColors,
		Themes:      []model.Theme{model.ThemeDark, model.ThemeLight},
	})
}

func (h *BoardHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.VisibleTasks(chi.URLParam(r, "boardID"), r.URL.Query().Get("filter"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *BoardHandler) Move(w http.ResponseWriter, r *http.Request) {
	dir := service.Direction(r.URL.Query().Get("direction"))

	doc, err := h.service.MoveTask(chi.URLParam(r, "boardID"), chi.URLParam(r, "taskID"), dir)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, doc)
}

func (h *BoardHandler) Complete(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.CompleteTask(chi.URLParam(r, "boardID"), chi.URLParam(r, "taskID"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, doc)
}

func (h *BoardHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.Export(&buf); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Attachment(w, r, h.service.ExportFileName(), buf.Bytes())
}

// Import accepts either a raw JSON body or a multipart form with a "file" part.
func (h *BoardHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxImportSize)

	var src io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("Import failed: %v", err))
			return
		}
		defer file.Close()
		src = file
	}

	doc, err := h.service.Import(src)
	if err != nil {
		h.logger.Warn("import rejected", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("Import failed: %v", err))
		return
	}
	respond.JSON(w, r, http.StatusOK, doc)
}

func (h *BoardHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respond.Error(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrOutOfBounds):
		respond.Error(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, "validation error")
	case errors.Is(err, state.ErrMalformedAction):
		respond.Error(w, r, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
