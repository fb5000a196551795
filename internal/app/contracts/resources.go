package contracts

import (
	"context"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/dto/responses"
)

type ProfileService interface {
	Get(ctx context.Context) (*models.UserRecord, error)
	Update(ctx context.Context, request *requests.UpdateProfile) error
}

type ReportService interface {
	List(ctx context.Context) ([]models.Report, error)
	FindByID(ctx context.Context, reportID string) (*models.Report, error)
}

type DoctorService interface {
	List(ctx context.Context) ([]models.Doctor, error)
}

type AppointmentService interface {
	List(ctx context.Context) ([]models.Appointment, error)
	Book(ctx context.Context, patientID string, request *requests.BookAppointment) (*models.Appointment, error)
}

type EmergencyService interface {
	TriggerSOS(ctx context.Context, patientID string, location models.Coordinates, request *requests.TriggerSOS) (*models.SOSAlert, error)
}

type MedicineService interface {
	Search(ctx context.Context, query string) ([]models.Medicine, error)
}

type HealthService interface {
	Check(ctx context.Context) (*responses.Health, error)
}
