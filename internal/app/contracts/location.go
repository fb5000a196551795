package contracts

import (
	"context"
	"healthease-client/internal/app/models"
)

// Geolocator is the platform location primitive. It may fail for any reason
// (denied, timeout, unsupported).
type Geolocator interface {
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}

type LocationService interface {
	Resolve(ctx context.Context) models.Coordinates
	Current(ctx context.Context) models.Coordinates
	Last() (models.Coordinates, bool)
	Reset()
}
