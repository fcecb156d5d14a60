package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/engine"
)

// resultIndent matches the layout of the reports produced so far.
const resultIndent = "   "

// JSONPersister writes analysis results as indented UTF-8 JSON.
type JSONPersister struct {
	// FileMode of the written file; 0644 when zero.
	FileMode os.FileMode
}

// Encode renders the result. Non-ASCII characters are kept literal and
// HTML-sensitive characters are not escaped.
func Encode(result *engine.AnalysisResult) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", resultIndent)
	if err := enc.Encode(result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Persist implements engine.PersisterFunc. The file is written to a temporary
// sibling first and renamed, so a failed write leaves no output behind.
func (w *JSONPersister) Persist(ctx context.Context, result *engine.AnalysisResult, path string) error {
	data, err := Encode(result)
	if err != nil {
		return &engine.PersistError{Path: path, Err: err}
	}

	mode := w.FileMode
	if mode == 0 {
		mode = 0644
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &engine.PersistError{Path: path, Err: err}
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, mode); err != nil {
		os.Remove(tmpPath)
		return &engine.PersistError{Path: path, Err: err}
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &engine.PersistError{Path: path, Err: err}
	}
	return nil
}
