package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BuzzLyutic/kanban-board/internal/model"
)

var ErrMalformedAction = errors.New("malformed action")

// Envelope is the wire form of an action: {"type": "...", "payload": ...}.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DecodeAction parses an envelope. Unrecognised types decode to Unknown,
// which the reducer treats as a no-op.
func DecodeAction(data []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAction, err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedAction)
	}

	switch env.Type {
	case TypeToggleTheme:
		return ToggleTheme{}, nil
	case TypeSetFilter:
		var filter string
		if err := decodePayload(env, &filter); err != nil {
			return nil, err
		}
		return SetFilter{Filter: filter}, nil
	case TypeDeleteBoard:
		var id string
		if err := decodePayload(env, &id); err != nil {
			return nil, err
		}
		return DeleteBoard{ID: id}, nil
	case TypeSetActiveBoard:
		var id string
		if err := decodePayload(env, &id); err != nil {
			return nil, err
		}
		return SetActiveBoard{ID: id}, nil
	case TypeAddBoard:
		return decodeInto[AddBoard](env)
	case TypeUpdateBoard:
		return decodeInto[UpdateBoard](env)
	case TypeAddColumn:
		return decodeInto[AddColumn](env)
	case TypeRenameColumn:
		return decodeInto[RenameColumn](env)
	case TypeDeleteColumn:
		return decodeInto[DeleteColumn](env)
	case TypeReorderColumns:
		return decodeInto[ReorderColumns](env)
	case TypeAddTask:
		return decodeInto[AddTask](env)
	case TypeUpdateTask:
		return decodeInto[UpdateTask](env)
	case TypeDeleteTask:
		return decodeInto[DeleteTask](env)
	case TypeMoveTask:
		return decodeInto[MoveTask](env)
	case TypeArchiveTask:
		return decodeInto[ArchiveTask](env)
	case TypeImportState:
		var doc model.Document
		if err := decodePayload(env, &doc); err != nil {
			return nil, err
		}
		return ImportState{Document: doc}, nil
	default:
		return Unknown{Name: env.Type}, nil
	}
}

func decodeInto[T Action](env Envelope) (Action, error) {
	var a T
	if err := decodePayload(env, &a); err != nil {
		return nil, err
	}
	return a, nil
}

func decodePayload(env Envelope, v any) error {
	if len(env.Payload) == 0 {
		return fmt.Errorf("%w: %s: missing payload", ErrMalformedAction, env.Type)
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedAction, env.Type, err)
	}
	return nil
}
