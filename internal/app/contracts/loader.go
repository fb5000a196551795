package contracts

import (
	"context"
	"healthease-client/internal/app/models"
)

type Collection string

const (
	CollectionProfile      Collection = "profile"
	CollectionReports      Collection = "reports"
	CollectionDoctors      Collection = "doctors"
	CollectionAppointments Collection = "appointments"
	CollectionFacilities   Collection = "facilities"
)

// DataLoader keeps the eagerly loaded collections.
type DataLoader interface {
	LoadAll(ctx context.Context) error
	Refresh(ctx context.Context, collection Collection) error
	Snapshot() models.Snapshot
	Reset()
}
