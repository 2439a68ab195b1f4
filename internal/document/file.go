// Package document reads and writes resume documents as standalone JSON files,
// the format used by import and JSON export.
package document

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jonathan/resume-builder/internal/persistence"
	"github.com/jonathan/resume-builder/internal/types"
)

// Load reads a document file, checks it against the document schema and
// normalizes it for editing.
func Load(fs afero.Fs, path string) (types.ResumeDocument, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return types.ResumeDocument{}, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	doc, err := persistence.DecodeDocument(string(content))
	if err != nil {
		return types.ResumeDocument{}, &LoadError{
			Message: fmt.Sprintf("%s is not a resume document", path),
			Cause:   err,
		}
	}

	Normalize(&doc)
	return doc, nil
}

// Encode returns the indented JSON encoding of doc.
func Encode(doc types.ResumeDocument) ([]byte, error) {
	doc = doc.Clone()
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, &WriteError{Message: "failed to marshal document", Cause: err}
	}
	return append(data, '\n'), nil
}

// Write encodes doc to path, creating parent directories.
func Write(fs afero.Fs, path string, doc types.ResumeDocument) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Message: fmt.Sprintf("failed to create directory for %s", path), Cause: err}
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return &WriteError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return nil
}
