package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ekaya-inc/genie-spaces/pkg/models"
)

// Write encodes an export as an indented document and writes it to w with a
// trailing newline.
func Write(w io.Writer, export *models.SpaceExport) error {
	doc, err := Encode(export)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(doc, '\n')); err != nil {
		return fmt.Errorf("failed to write export document: %w", err)
	}
	return nil
}

// Read decodes an export document from r.
func Read(r io.Reader) (*models.SpaceExport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read export document: %w", err)
	}
	return Decode(data)
}

// WriteFile writes an export document to path, creating parent directories
// as needed.
func WriteFile(path string, export *models.SpaceExport) error {
	doc, err := Encode(export)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(doc, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadFile reads and decodes an export document from path.
func ReadFile(path string) (*models.SpaceExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(data)
}
