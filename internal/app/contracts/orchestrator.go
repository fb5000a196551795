package contracts

import (
	"context"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/dto/responses"
)

// Orchestrator is what a UI shell drives: every user action and the state
// to render.
type Orchestrator interface {
	State(ctx context.Context) responses.State
	Navigate(ctx context.Context, view string) error
	Logout(ctx context.Context) error

	Collections() models.Snapshot
	RefreshCollection(ctx context.Context, collection string) error
	GetReport(ctx context.Context, reportID string) (*models.Report, error)
	UploadReports(ctx context.Context, request *requests.UploadReports) ([]models.UploadResult, error)
	UploadProgress() responses.UploadProgress
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error)

	NearbyFacilities() ([]models.Facility, string)
	FilterFacilities(ctx context.Context, category string) ([]models.Facility, error)
	RenderMap(ctx context.Context) error

	BeginProfileEdit(ctx context.Context) (*models.UserRecord, error)
	UpdateProfileDraft(ctx context.Context, patch *requests.ProfileDraftPatch) (*models.UserRecord, error)
	CommitProfile(ctx context.Context) (*models.UserRecord, error)
	CancelProfileEdit(ctx context.Context)

	TriggerSOS(ctx context.Context, request *requests.TriggerSOS) (*models.SOSAlert, error)
	SearchMedicines(ctx context.Context, query string) ([]models.Medicine, error)
}
