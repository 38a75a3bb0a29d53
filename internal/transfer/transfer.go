// Package transfer moves whole documents in and out as JSON backup files.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/BuzzLyutic/kanban-board/internal/model"
)

var (
	ErrInvalidJSON   = errors.New("invalid JSON file")
	ErrInvalidFormat = errors.New("invalid data format")
	ErrRead          = errors.New("failed to read file")
)

// FileName is the backup name for the UTC date of now.
func FileName(now time.Time) string {
	return fmt.Sprintf("kanban-backup-%s.json", now.UTC().Format("2006-01-02"))
}

// Marshal renders doc as 2-space indented JSON.
func Marshal(doc model.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Export writes the indented document to w.
func Export(w io.Writer, doc model.Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("transfer.Export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("transfer.Export: %w", err)
	}
	return nil
}

// Import reads a backup. The input must be a JSON object whose "boards"
// field is present and truthy; nested fields are not validated beyond what
// decoding into the document shape requires.
func Import(r io.Reader) (model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Document{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Parse(data)
}

// Parse is Import for an in-memory payload.
func Parse(data []byte) (model.Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Document{}, ErrInvalidJSON
	}

	obj, ok := raw.(map[string]any)
	if !ok || !truthy(obj["boards"]) {
		return model.Document{}, ErrInvalidFormat
	}

	var doc model.Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return model.Document{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return doc, nil
}

// truthy mirrors how a loosely typed caller tests a value for presence.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
