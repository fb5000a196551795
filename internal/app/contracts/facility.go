package contracts

import (
	"context"
	"healthease-client/internal/app/models"
)

type FacilitySync interface {
	Fetch(ctx context.Context, coords models.Coordinates, category string) ([]models.Facility, error)
	Refresh(ctx context.Context, category string) error
	Facilities() []models.Facility
	Category() string
	Reset()
}
