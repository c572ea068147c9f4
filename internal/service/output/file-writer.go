package output

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"icon-active-addresses/internal/model"
)

// FileWriter writes the document as indented JSON into Dir, replacing any file of the same name.
type FileWriter struct {
	Dir   string
	Range model.TimeRange
	Style model.NameStyle
}

func (w *FileWriter) Path() string {
	return filepath.Join(w.Dir, FileName(w.Range, w.Style))
}

func (w *FileWriter) Write(ctx context.Context, doc *model.OutputDocument) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode output: %w", err)
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := w.Path()
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
