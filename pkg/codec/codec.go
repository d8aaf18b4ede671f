// Package codec converts between SpaceExport values and the canonical JSON
// export document, plus the serialized_space string envelope used at the
// transport boundary. Field order in the document follows struct declaration
// order and empty sections are omitted entirely, so two semantically-similar
// exports diff minimally.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ekaya-inc/genie-spaces/pkg/apperrors"
	"github.com/ekaya-inc/genie-spaces/pkg/models"
)

// Encode serializes a validated export as an indented canonical JSON
// document, the form written to files and version control.
func Encode(export *models.SpaceExport) ([]byte, error) {
	return encode(export, true)
}

// EncodeCompact serializes a validated export without indentation.
func EncodeCompact(export *models.SpaceExport) ([]byte, error) {
	return encode(export, false)
}

func encode(export *models.SpaceExport, indent bool) ([]byte, error) {
	if export == nil {
		return nil, apperrors.NewSchemaValidationError("", "cannot encode a nil export")
	}
	if err := export.Validate(); err != nil {
		return nil, err
	}
	if indent {
		return json.MarshalIndent(export, "", "  ")
	}
	return json.Marshal(export)
}

// Decode parses a canonical JSON document into a SpaceExport. Structural
// problems (invalid JSON, a wrong type at a field, a missing or unknown
// top-level version) yield a *apperrors.MalformedExportError carrying the
// offending field path; invalid field values yield a
// *apperrors.SchemaValidationError.
func Decode(data []byte) (*models.SpaceExport, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &apperrors.MalformedExportError{Message: "document is empty"}
	}

	var export models.SpaceExport
	if err := json.Unmarshal(data, &export); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &apperrors.MalformedExportError{
				Path:    typeErr.Field,
				Message: fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value),
				Cause:   err,
			}
		}
		return nil, &apperrors.MalformedExportError{Message: "invalid JSON", Cause: err}
	}

	if export.Version == 0 {
		return nil, &apperrors.MalformedExportError{Path: "version", Message: "missing required field"}
	}
	if export.Version != models.SupportedVersion {
		return nil, &apperrors.MalformedExportError{
			Path:    "version",
			Message: fmt.Sprintf("unknown export version %d (supported: %d)", export.Version, models.SupportedVersion),
		}
	}

	if err := export.Validate(); err != nil {
		return nil, err
	}
	return &export, nil
}

// Wrap produces the serialized_space envelope: the compact JSON document as
// a plain string. The remote API always nests the document as a JSON-encoded
// string inside the request object, never as a nested object.
func Wrap(export *models.SpaceExport) (string, error) {
	doc, err := EncodeCompact(export)
	if err != nil {
		return "", err
	}
	return string(doc), nil
}

// Unwrap parses a serialized_space envelope back into a SpaceExport.
func Unwrap(serialized string) (*models.SpaceExport, error) {
	if serialized == "" {
		return nil, &apperrors.MalformedExportError{Message: "serialized_space is empty"}
	}
	return Decode([]byte(serialized))
}
