package contracts

import (
	"context"
	"healthease-client/internal/app/models"
)

type MapMarker struct {
	Position models.Coordinates `json:"position"`
	Title    string             `json:"title"`
	Kind     string             `json:"kind"`
}

// MapRenderer is the interactive map engine: it only accepts a center point
// and a list of markers.
type MapRenderer interface {
	Render(ctx context.Context, center models.Coordinates, markers []MapMarker) error
}

type FacilityMap interface {
	RenderFacilities(ctx context.Context, center models.Coordinates, facilities []models.Facility) error
}
