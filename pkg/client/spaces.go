package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/ekaya-inc/genie-spaces/pkg/apperrors"
	"github.com/ekaya-inc/genie-spaces/pkg/codec"
	"github.com/ekaya-inc/genie-spaces/pkg/models"
)

// ExportSpace reads a space with its serialized configuration inline.
func (c *Client) ExportSpace(ctx context.Context, spaceID string) (*Space, error) {
	query := url.Values{"include_serialized_space": {"true"}}

	body, err := c.do(ctx, http.MethodGet, c.spaceURL(spaceID, query), nil)
	if err != nil {
		return nil, err
	}

	var space Space
	if err := json.Unmarshal(body, &space); err != nil {
		return nil, fmt.Errorf("failed to parse space response: %w", err)
	}

	c.logger.Debug("Exported space",
		zap.String("space_id", space.SpaceID),
		zap.String("title", space.Title))

	return &space, nil
}

// ImportRequest describes a new space to create. Exactly one of Export and
// Serialized must be set: Export is encoded (and therefore validated)
// locally before any request is sent, while Serialized is passed through to
// the workspace verbatim.
type ImportRequest struct {
	WarehouseID string
	ParentPath  string
	Export      *models.SpaceExport
	Serialized  string
	Title       string
	Description string
}

// importPayload is the create-request wire shape.
type importPayload struct {
	WarehouseID     string `json:"warehouse_id"`
	ParentPath      string `json:"parent_path"`
	SerializedSpace string `json:"serialized_space"`
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`
}

// ImportSpace creates a new space from a configuration. A configuration that
// fails to encode is rejected with *apperrors.ValidationError before any
// network call.
func (c *Client) ImportSpace(ctx context.Context, req ImportRequest) (*Space, error) {
	if req.WarehouseID == "" {
		return nil, &apperrors.ValidationError{Message: "warehouse id is required for import"}
	}
	if req.ParentPath == "" {
		return nil, &apperrors.ValidationError{Message: "parent path is required for import"}
	}

	serialized, err := resolveSerialized(req.Export, req.Serialized)
	if err != nil {
		return nil, err
	}

	payload := importPayload{
		WarehouseID:     req.WarehouseID,
		ParentPath:      req.ParentPath,
		SerializedSpace: serialized,
		Title:           req.Title,
		Description:     req.Description,
	}

	body, err := c.do(ctx, http.MethodPost, c.host+basePath, payload)
	if err != nil {
		return nil, err
	}

	var space Space
	if err := json.Unmarshal(body, &space); err != nil {
		return nil, fmt.Errorf("failed to parse space response: %w", err)
	}

	c.logger.Info("Imported space",
		zap.String("space_id", space.SpaceID),
		zap.String("title", space.Title),
		zap.String("warehouse_id", req.WarehouseID))

	return &space, nil
}

// UpdateRequest describes a partial update. Empty fields are omitted from
// the request body entirely (never sent as null); at least one field must be
// supplied.
type UpdateRequest struct {
	Export      *models.SpaceExport
	Serialized  string
	Title       string
	Description string
	WarehouseID string
	ParentPath  string
}

func (r UpdateRequest) empty() bool {
	return r.Export == nil && r.Serialized == "" && r.Title == "" &&
		r.Description == "" && r.WarehouseID == "" && r.ParentPath == ""
}

// updatePayload is the partial-update wire shape; absent fields are omitted.
type updatePayload struct {
	SerializedSpace string `json:"serialized_space,omitempty"`
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"`
	WarehouseID     string `json:"warehouse_id,omitempty"`
	ParentPath      string `json:"parent_path,omitempty"`
}

// UpdateSpace applies a partial update to an existing space. An empty
// request is rejected with *apperrors.ValidationError before any network
// call.
func (c *Client) UpdateSpace(ctx context.Context, spaceID string, req UpdateRequest) (*Space, error) {
	if req.empty() {
		return nil, &apperrors.ValidationError{Message: "no fields to update: supply a configuration, title, description, warehouse id, or parent path"}
	}

	payload := updatePayload{
		Title:       req.Title,
		Description: req.Description,
		WarehouseID: req.WarehouseID,
		ParentPath:  req.ParentPath,
	}

	if req.Export != nil || req.Serialized != "" {
		serialized, err := resolveSerialized(req.Export, req.Serialized)
		if err != nil {
			return nil, err
		}
		payload.SerializedSpace = serialized
	}

	body, err := c.do(ctx, http.MethodPatch, c.spaceURL(spaceID, nil), payload)
	if err != nil {
		return nil, err
	}

	var space Space
	if err := json.Unmarshal(body, &space); err != nil {
		return nil, fmt.Errorf("failed to parse space response: %w", err)
	}

	c.logger.Info("Updated space",
		zap.String("space_id", space.SpaceID),
		zap.String("title", space.Title))

	return &space, nil
}

// CloneRequest describes where a cloned space lands and what it is called.
// Title and Description default to the source space's values.
type CloneRequest struct {
	WarehouseID string
	ParentPath  string
	Title       string
	Description string
}

// CloneSpace exports the source space and imports the result as a new
// space. The serialized configuration is passed through byte-for-byte; the
// two round-trips are sequential and not atomic. The source space is never
// mutated, so a failed import leaves nothing to roll back.
func (c *Client) CloneSpace(ctx context.Context, sourceSpaceID string, req CloneRequest) (*Space, error) {
	source, err := c.ExportSpace(ctx, sourceSpaceID)
	if err != nil {
		return nil, err
	}
	if source.SerializedSpace == "" {
		return nil, &apperrors.MalformedExportError{Message: "source space returned no serialized configuration"}
	}

	title := req.Title
	if title == "" {
		title = source.Title
	}
	description := req.Description
	if description == "" {
		description = source.Description
	}

	return c.ImportSpace(ctx, ImportRequest{
		WarehouseID: req.WarehouseID,
		ParentPath:  req.ParentPath,
		Serialized:  source.SerializedSpace,
		Title:       title,
		Description: description,
	})
}

// ValidateDocument is a purely local operation: it decodes a document and
// returns its structural summary. No request is issued.
func (c *Client) ValidateDocument(data []byte) (models.Summary, error) {
	export, err := codec.Decode(data)
	if err != nil {
		return models.Summary{}, err
	}
	return models.Summarize(export), nil
}

// resolveSerialized turns an import/update configuration into the envelope
// string. A local encoding failure is a precondition failure, so it is
// wrapped as *apperrors.ValidationError.
func resolveSerialized(export *models.SpaceExport, serialized string) (string, error) {
	switch {
	case export != nil && serialized != "":
		return "", &apperrors.ValidationError{Message: "supply either a configuration or a pre-serialized document, not both"}
	case export != nil:
		wrapped, err := codec.Wrap(export)
		if err != nil {
			return "", &apperrors.ValidationError{Message: "configuration failed to encode", Cause: err}
		}
		return wrapped, nil
	case serialized != "":
		return serialized, nil
	default:
		return "", &apperrors.ValidationError{Message: "a configuration is required"}
	}
}
