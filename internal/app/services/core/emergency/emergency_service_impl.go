package emergency

import (
	"context"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type emergencyService struct {
	Gateway contracts.APIGateway
	Log     *zap.Logger
}

func NewEmergencyService(gateway contracts.APIGateway, logger *zap.Logger) contracts.EmergencyService {
	return &emergencyService{
		Gateway: gateway,
		Log:     logger,
	}
}

func (s *emergencyService) TriggerSOS(ctx context.Context, patientID string, location models.Coordinates, request *requests.TriggerSOS) (*models.SOSAlert, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("emergencyService.TriggerSOS called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmergencyTypeKey, request.EmergencyType),
		zap.Float64(constvars.LoggingLatitudeKey, location.Lat),
		zap.Float64(constvars.LoggingLongitudeKey, location.Lng),
	)

	if patientID == "" {
		return nil, exceptions.ErrNoSession()
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := &requests.SOSPayload{
		PatientID:     patientID,
		Location:      location,
		EmergencyType: request.EmergencyType,
		Notes:         request.Notes,
	}

	alert := new(models.SOSAlert)
	if err := s.Gateway.Post(ctx, constvars.EndpointSOS, payload, alert); err != nil {
		s.Log.Error("emergencyService.TriggerSOS error triggering alert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	s.Log.Info("emergencyService.TriggerSOS succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSOSIDKey, alert.SOSID),
	)
	return alert, nil
}
