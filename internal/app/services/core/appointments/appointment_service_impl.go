package appointments

import (
	"context"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/dto/responses"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentService struct {
	Gateway contracts.APIGateway
	Log     *zap.Logger
}

func NewAppointmentService(gateway contracts.APIGateway, logger *zap.Logger) contracts.AppointmentService {
	return &appointmentService{
		Gateway: gateway,
		Log:     logger,
	}
}

func (s *appointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("appointmentService.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var response responses.AppointmentList
	if err := s.Gateway.Get(ctx, constvars.EndpointAppointments, nil, &response); err != nil {
		s.Log.Error("appointmentService.List error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointments := response.Appointments
	if appointments == nil {
		appointments = []models.Appointment{}
	}

	s.Log.Info("appointmentService.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointments)),
	)
	return appointments, nil
}

// Book validates the selection and posts it for patientID. Refetching the
// appointment list is left to the caller.
func (s *appointmentService) Book(ctx context.Context, patientID string, request *requests.BookAppointment) (*models.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("appointmentService.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	if patientID == "" {
		return nil, exceptions.ErrNoSession()
	}

	if err := utils.ValidateStruct(request); err != nil {
		s.Log.Error("appointmentService.Book validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := &requests.AppointmentPayload{
		DoctorID:  request.DoctorID,
		PatientID: patientID,
		Date:      request.Date,
		Time:      request.Time,
		Type:      request.Type,
		Notes:     request.Notes,
	}

	var response responses.BookAppointment
	if err := s.Gateway.Post(ctx, constvars.EndpointAppointments, payload, &response); err != nil {
		s.Log.Error("appointmentService.Book error booking appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment := response.Appointment
	if appointment.AppointmentID == "" {
		appointment.AppointmentID = response.AppointmentID
	}

	s.Log.Info("appointmentService.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.AppointmentID),
	)
	return &appointment, nil
}
