package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/solairajan18/solai-gateway/internal/model/chat"
)

// sessionDocument is the persisted file layout: one JSON document per
// session, pretty-printed for manual inspection.
type sessionDocument struct {
	SessionID string      `json:"session_id"`
	History   []chat.Turn `json:"history"`
}

// FileBackend stores each session as session_<id>.json under a directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the history directory if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history dir %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

// Load reads a session's persisted history. A missing file is an empty
// history, not an error.
func (b *FileBackend) Load(id string) ([]chat.Turn, error) {
	path, err := b.path(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var doc sessionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	return doc.History, nil
}

// Save overwrites the session's file with the full history.
func (b *FileBackend) Save(id string, history []chat.Turn) error {
	path, err := b.path(id)
	if err != nil {
		return err
	}

	if history == nil {
		history = []chat.Turn{}
	}
	data, err := json.MarshalIndent(sessionDocument{SessionID: id, History: history}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// path derives the session's file name. Client-supplied ids must not be able
// to escape the history directory.
func (b *FileBackend) path(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return "", fmt.Errorf("invalid session id %q", id)
	}
	return filepath.Join(b.dir, "session_"+id+".json"), nil
}
