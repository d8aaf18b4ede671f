package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/ekaya-inc/genie-spaces/pkg/codec"
	"github.com/ekaya-inc/genie-spaces/pkg/models"
)

// ExportSpaceToFile exports a space and writes its configuration document to
// path, creating parent directories as needed. It returns the decoded
// export.
func (c *Client) ExportSpaceToFile(ctx context.Context, spaceID, path string) (*models.SpaceExport, error) {
	space, err := c.ExportSpace(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	export, err := space.GetExport()
	if err != nil {
		return nil, err
	}
	if err := codec.WriteFile(path, export); err != nil {
		return nil, err
	}

	c.logger.Info("Wrote space export",
		zap.String("space_id", space.SpaceID),
		zap.String("path", path))

	return export, nil
}

// ImportSpaceFromFile creates a new space from a configuration document on
// disk. Any Export or Serialized already present in req is replaced by the
// file contents.
func (c *Client) ImportSpaceFromFile(ctx context.Context, path string, req ImportRequest) (*Space, error) {
	export, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	req.Export = export
	req.Serialized = ""
	return c.ImportSpace(ctx, req)
}

// UpdateSpaceFromFile updates a space's configuration from a document on
// disk, alongside any metadata fields already set in req.
func (c *Client) UpdateSpaceFromFile(ctx context.Context, spaceID, path string, req UpdateRequest) (*Space, error) {
	export, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	req.Export = export
	req.Serialized = ""
	return c.UpdateSpace(ctx, spaceID, req)
}
