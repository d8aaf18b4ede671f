package client

import (
	"github.com/ekaya-inc/genie-spaces/pkg/apperrors"
	"github.com/ekaya-inc/genie-spaces/pkg/codec"
	"github.com/ekaya-inc/genie-spaces/pkg/models"
)

// Space is the metadata the workspace returns for a space, plus the
// serialized configuration when one was requested. The configuration is
// decoded lazily by GetExport.
type Space struct {
	SpaceID         string `json:"space_id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	WarehouseID     string `json:"warehouse_id,omitempty"`
	SerializedSpace string `json:"serialized_space,omitempty"`

	export *models.SpaceExport
}

// GetExport decodes SerializedSpace into a SpaceExport. The result is cached
// on first call. A response without serialized content (info-only reads)
// yields a *apperrors.MalformedExportError.
func (s *Space) GetExport() (*models.SpaceExport, error) {
	if s.export != nil {
		return s.export, nil
	}
	if s.SerializedSpace == "" {
		return nil, &apperrors.MalformedExportError{Message: "space response carries no serialized configuration"}
	}
	export, err := codec.Unwrap(s.SerializedSpace)
	if err != nil {
		return nil, err
	}
	s.export = export
	return export, nil
}
